package rakuten_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"price_checker/internal/domain"
	"price_checker/internal/domain/entity"
	"price_checker/internal/domain/value"
	"price_checker/internal/infrastructure/rakuten"
	"price_checker/pkg/errcodes"
)

const searchBody = `{
  "count": 1,
  "Items": [
    {
      "Item": {
        "itemName": "iPhone 15 128GB",
        "itemPrice": 120000,
        "itemUrl": "https://item.rakuten.co.jp/shop/iphone15/",
        "mediumImageUrls": [{"imageUrl": "https://thumbnail.image.rakuten.co.jp/iphone15.jpg"}]
      }
    }
  ]
}`

func TestClientSearch(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		status      int
		body        string
		affiliateID string
		wantQuery   url.Values
		wantLookup  entity.Lookup
		wantCode    failure.ErrorCode
	}{
		{
			name:   "Found",
			status: http.StatusOK,
			body:   searchBody,
			wantQuery: url.Values{
				"applicationId": {"app-1"},
				"format":        {"json"},
				"hits":          {"1"},
				"keyword":       {"iPhone 15"},
			},
			wantLookup: entity.Found(entity.Hit{
				Title:    "iPhone 15 128GB",
				Price:    120000,
				URL:      "https://item.rakuten.co.jp/shop/iphone15/",
				ImageURL: "https://thumbnail.image.rakuten.co.jp/iphone15.jpg",
			}),
		},
		{
			name:        "Affiliate link",
			status:      http.StatusOK,
			affiliateID: "aff-9",
			body:        `{"Items":[{"Item":{"itemName":"TV","itemPrice":50000,"itemUrl":"https://item","affiliateUrl":"https://hb.afl.rakuten.co.jp/tv"}}]}`,
			wantQuery: url.Values{
				"affiliateId":   {"aff-9"},
				"applicationId": {"app-1"},
				"format":        {"json"},
				"hits":          {"1"},
				"keyword":       {"iPhone 15"},
			},
			wantLookup: entity.Found(entity.Hit{Title: "TV", Price: 50000, URL: "https://hb.afl.rakuten.co.jp/tv"}),
		},
		{
			name:   "Affiliate link ignored without affiliate id",
			status: http.StatusOK,
			body:   `{"Items":[{"Item":{"itemName":"TV","itemPrice":50000,"itemUrl":"https://item","affiliateUrl":"https://hb.afl.rakuten.co.jp/tv"}}]}`,
			wantQuery: url.Values{
				"applicationId": {"app-1"},
				"format":        {"json"},
				"hits":          {"1"},
				"keyword":       {"iPhone 15"},
			},
			wantLookup: entity.Found(entity.Hit{Title: "TV", Price: 50000, URL: "https://item"}),
		},
		{
			name:       "No items",
			status:     http.StatusOK,
			body:       `{"count":0,"Items":[]}`,
			wantLookup: entity.Absent(),
		},
		{
			name:     "Upstream error status",
			status:   http.StatusServiceUnavailable,
			body:     `{"error":"service_unavailable"}`,
			wantCode: errcodes.UpstreamUnavailable,
		},
		{
			name:     "Malformed body",
			status:   http.StatusOK,
			body:     `{"Items": [`,
			wantCode: errcodes.UpstreamMalformed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var gotQuery url.Values

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				rq.Equal("/services/api/IchibaItem/Search/20170706", r.URL.Path)
				gotQuery = r.URL.Query()

				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := rakuten.NewClient(rakuten.Config{
				BaseURL:       server.URL + "/",
				ApplicationID: "app-1",
				AffiliateID:   tc.affiliateID,
				Timeout:       time.Second,
			}, nil)

			lookup, err := client.Search(context.Background(), value.NewKeyword("iPhone 15"))

			if tc.wantCode != "" {
				rq.Error(err)

				code, ok := domain.GetCode(err)
				rq.True(ok)
				rq.Equal(tc.wantCode, code)

				return
			}

			rq.NoError(err)
			rq.Equal(tc.wantLookup, lookup)

			if tc.wantQuery != nil {
				rq.Equal(tc.wantQuery, gotQuery)
			}
		})
	}
}

func TestClientSearchWithoutApplicationID(t *testing.T) {
	rq := require.New(t)

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := rakuten.NewClient(rakuten.Config{BaseURL: server.URL}, nil)

	lookup, err := client.Search(context.Background(), value.NewKeyword("iPhone 15"))
	rq.NoError(err)
	rq.Equal(entity.Absent(), lookup)
	rq.Zero(calls)
	rq.Equal(rakuten.ProviderName, client.Name())
}
