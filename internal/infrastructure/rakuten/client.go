package rakuten

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
	ProviderName = "rakuten"

	searchPath = "/services/api/IchibaItem/Search/20170706"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

type Config struct {
	BaseURL       string
	ApplicationID string
	AffiliateID   string
	Timeout       time.Duration
}

// Client searches Rakuten Ichiba for the top ranked item.
type Client struct {
	baseURL     string
	enabled     bool
	affiliateID string
	httpClient  *http.Client
}

func NewClient(cfg Config, transport http.RoundTripper) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}

	transport = httpx.NewQueryCredentialRoundTripper(transport, "applicationId", cfg.ApplicationID)

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		enabled:     cfg.ApplicationID != "",
		affiliateID: cfg.AffiliateID,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
}

func (c *Client) Name() string {
	return ProviderName
}

// Search returns an absent lookup without calling out when no application id is
// configured.
func (c *Client) Search(ctx context.Context, keyword value.Keyword) (entity.Lookup, error) {
	if !c.enabled || keyword.IsEmpty() {
		return entity.Absent(), nil
	}

	query := url.Values{}
	query.Set("format", "json")
	query.Set("keyword", keyword.String())
	query.Set("hits", "1")

	if c.affiliateID != "" {
		query.Set("affiliateId", c.affiliateID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+query.Encode(), nil)
	if err != nil {
		return entity.Lookup{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Lookup{}, domain.WrapError(err, errcodes.UpstreamUnavailable, "rakuten request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)

		return entity.Lookup{}, domain.NewError(
			errcodes.UpstreamUnavailable,
			fmt.Sprintf("rakuten responded with status %d", resp.StatusCode),
		)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.Lookup{}, domain.WrapError(err, errcodes.UpstreamMalformed, "rakuten response is malformed")
	}

	if len(body.Items) == 0 {
		return entity.Absent(), nil
	}

	return entity.Found(body.Items[0].Item.toHit(c.affiliateID != "")), nil
}
