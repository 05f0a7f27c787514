package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"price_checker/internal/domain"
	"price_checker/internal/domain/entity"
	"price_checker/internal/domain/value"
	"price_checker/pkg/errcodes"
	"price_checker/pkg/httpx"
)

const (
	ProviderName = "yahoo"

	itemSearchPath = "/ShoppingWebService/V3/itemSearch"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

type Config struct {
	BaseURL  string
	ClientID string
	Timeout  time.Duration
}

// Client calls the Yahoo! Shopping item search.
type Client struct {
	baseURL    string
	enabled    bool
	httpClient *http.Client
}

func NewClient(cfg Config, transport http.RoundTripper) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		enabled: cfg.ClientID != "",
		httpClient: &http.Client{
			Transport: httpx.NewQueryCredentialRoundTripper(transport, "appid", cfg.ClientID),
			Timeout:   cfg.Timeout,
		},
	}
}

func (c *Client) Name() string {
	return ProviderName
}

func (c *Client) Search(ctx context.Context, keyword value.Keyword) (entity.Lookup, error) {
	if !c.enabled || keyword.IsEmpty() {
		return entity.Absent(), nil
	}

	query := url.Values{}
	query.Set("query", keyword.String())
	query.Set("results", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+itemSearchPath+"?"+query.Encode(), nil)
	if err != nil {
		return entity.Lookup{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Lookup{}, domain.WrapError(err, errcodes.UpstreamUnavailable, "yahoo request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)

		return entity.Lookup{}, domain.NewError(
			errcodes.UpstreamUnavailable,
			fmt.Sprintf("yahoo responded with status %d", resp.StatusCode),
		)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.Lookup{}, domain.WrapError(err, errcodes.UpstreamMalformed, "yahoo response is malformed")
	}

	if len(body.Hits) == 0 {
		return entity.Absent(), nil
	}

	return entity.Found(body.Hits[0].toHit()), nil
}
