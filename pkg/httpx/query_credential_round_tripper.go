package httpx

import (
	"fmt"
	"net/http"
)

// QueryCredentialRoundTripper adds an API credential as a query parameter to every
// outgoing request. Rakuten and Yahoo both authenticate this way.
type QueryCredentialRoundTripper struct {
	next  http.RoundTripper
	param string
	value string
}

func NewQueryCredentialRoundTripper(
	next http.RoundTripper,
	param string,
	value string,
) QueryCredentialRoundTripper {
	return QueryCredentialRoundTripper{
		next:  next,
		param: param,
		value: value,
	}
}

func (rt QueryCredentialRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrip must not modify the caller's request.
	req = req.Clone(req.Context())

	query := req.URL.Query()
	query.Set(rt.param, rt.value)
	req.URL.RawQuery = query.Encode()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
