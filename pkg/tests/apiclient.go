// Package tests holds helpers for exercising the HTTP API end to end.
package tests

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// APIClient calls a running server and logs every exchange to the test log.
type APIClient struct {
	tb         testing.TB
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(tb testing.TB, baseURL string) APIClient {
	tb.Helper()

	return APIClient{
		tb:         tb,
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// Get decodes a 2xx body into dest and any other body into errDest. Either may
// be nil. The returned response body is already closed.
func (a APIClient) Get(
	ctx context.Context,
	endpoint string,
	dest any,
	errDest any,
) (*http.Response, error) {
	a.tb.Helper()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	a.tb.Logf("request: %s %s", req.Method, req.URL)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		a.tb.Logf("response: %s", dump)
	}

	if err = parseResponse(resp, dest, errDest); err != nil {
		return nil, fmt.Errorf("parseResponse: %w", err)
	}

	return resp, nil
}

func parseResponse(r *http.Response, dest, errDest any) error {
	if r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices {
		if dest == nil {
			return nil
		}

		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return fmt.Errorf("json.Decode(success destination): %w", err)
		}

		return nil
	}

	if errDest == nil {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(errDest); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("json.Decode(err destination): %w", err)
	}

	return nil
}
