package server_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"price_checker/internal/domain/entity"
	"price_checker/internal/domain/service/comparison"
	"price_checker/internal/domain/value"
	"price_checker/internal/server"
	"price_checker/pkg/errcodes"
	"price_checker/pkg/middlewarex"
	"price_checker/pkg/rest"
	"price_checker/pkg/tests"
)

type providerStub struct {
	name   string
	lookup entity.Lookup
	err    error
	calls  int
}

func (p *providerStub) Name() string {
	return p.name
}

func (p *providerStub) Search(context.Context, value.Keyword) (entity.Lookup, error) {
	p.calls++
	return p.lookup, p.err
}

type historyStub struct {
	records []entity.SearchRecord
	limit   int
}

func (h *historyStub) List(_ context.Context, limit int) ([]entity.SearchRecord, error) {
	h.limit = limit
	return h.records, nil
}

type fixture struct {
	primary   *providerStub
	secondary *providerStub
	client    tests.APIClient
	baseURL   string
}

func newFixture(t *testing.T, mode comparison.FailureMode, history *historyStub) fixture {
	t.Helper()

	primary := &providerStub{
		name:   "rakuten",
		lookup: entity.Found(entity.Hit{Title: "iPhone 15 128GB", Price: 120000, URL: "https://x", ImageURL: "https://img"}),
	}
	secondary := &providerStub{name: "yahoo"}

	svc := comparison.NewService(primary, secondary, comparison.Config{FailureMode: mode})

	var historyServer server.HistoryServer
	if history != nil {
		historyServer = server.NewHistoryServer(history)
	}

	srv := server.NewServer(
		server.NewSearchServer(svc),
		historyServer,
		server.NewPageServer(svc),
	)

	router := chi.NewRouter()
	router.Use(middlewarex.TraceID)
	srv.RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	t.Cleanup(httpServer.Close)

	return fixture{
		primary:   primary,
		secondary: secondary,
		client:    tests.NewAPIClient(t, httpServer.URL),
		baseURL:   httpServer.URL,
	}
}

func TestGetAPISearch(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	f := newFixture(t, comparison.FailureModeIsolated, nil)

	var entries []rest.ComparisonEntry

	resp, err := f.client.Get(ctx, "/api/search?q="+url.QueryEscape("iPhone 15"), &entries, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Len(entries, 3)
	rq.Equal("Amazon", entries[0].Platform)
	rq.Equal(int64(114000), entries[0].Price)
	rq.Contains(entries[0].URL, "iPhone%2015")
	rq.Equal("https://img", entries[0].Image)

	rq.Equal("RakutenStore", entries[1].Platform)
	rq.Equal("iPhone 15 128GB", entries[1].Name)
	rq.Equal(int64(120000), entries[1].Price)
	rq.Equal("https://x", entries[1].URL)

	rq.Equal("Yahoo", entries[2].Platform)
	rq.Equal(int64(122400), entries[2].Price)
	rq.Equal("https://shopping.yahoo.co.jp/search?p=iPhone%2015", entries[2].URL)
}

func TestGetAPISearchEmptyKeyword(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	f := newFixture(t, comparison.FailureModeIsolated, nil)

	endpoints := []string{
		"/api/search",
		"/api/search?q=",
		"/api/search?q=%20%20",
		"/api/search?q=" + strings.Repeat("%20", 300),
	}

	for _, endpoint := range endpoints {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+endpoint, http.NoBody)
		rq.NoError(err)

		resp, err := http.DefaultClient.Do(req)
		rq.NoError(err)

		body, err := io.ReadAll(resp.Body)
		rq.NoError(err)
		rq.NoError(resp.Body.Close())

		rq.Equal(http.StatusOK, resp.StatusCode)
		rq.JSONEq(`[]`, string(body))
	}

	rq.Zero(f.primary.calls)
	rq.Zero(f.secondary.calls)
}

func TestGetAPISearchErrors(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	t.Run("Keyword too long", func(*testing.T) {
		f := newFixture(t, comparison.FailureModeIsolated, nil)

		var apiErr rest.Error

		resp, err := f.client.Get(ctx, "/api/search?q="+strings.Repeat("a", 257), nil, &apiErr)
		rq.NoError(err)
		rq.Equal(http.StatusBadRequest, resp.StatusCode)
		rq.Equal(rest.ErrorCode(errcodes.InvalidKeyword), apiErr.Code)
		rq.Equal("keyword must be at most 256 characters", apiErr.Error)
		rq.Zero(f.primary.calls)
	})

	t.Run("Longest keyword after trimming", func(*testing.T) {
		f := newFixture(t, comparison.FailureModeIsolated, nil)

		var entries []rest.ComparisonEntry

		resp, err := f.client.Get(ctx, "/api/search?q=%20%20"+strings.Repeat("a", 256)+"%20", &entries, nil)
		rq.NoError(err)
		rq.Equal(http.StatusOK, resp.StatusCode)
		rq.Len(entries, 3)
		rq.Equal(1, f.primary.calls)
	})

	t.Run("Upstream failure, all or nothing", func(*testing.T) {
		f := newFixture(t, comparison.FailureModeAllOrNothing, nil)
		f.secondary.err = errors.New("connection reset")

		var apiErr rest.Error

		resp, err := f.client.Get(ctx, "/api/search?q=tv", nil, &apiErr)
		rq.NoError(err)
		rq.Equal(http.StatusInternalServerError, resp.StatusCode)
		rq.Equal("failed to fetch data", apiErr.Error)
		rq.Equal(rest.ErrorCode(errcodes.UpstreamUnavailable), apiErr.Code)
		rq.NotEmpty(apiErr.SupportID)
	})

	t.Run("Upstream failure, isolated", func(*testing.T) {
		f := newFixture(t, comparison.FailureModeIsolated, nil)
		f.secondary.err = errors.New("connection reset")

		var entries []rest.ComparisonEntry

		resp, err := f.client.Get(ctx, "/api/search?q=tv", &entries, nil)
		rq.NoError(err)
		rq.Equal(http.StatusOK, resp.StatusCode)
		rq.Len(entries, 3)
		rq.Equal(int64(120000), entries[1].Price)
	})
}

func TestGetAPIHistory(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	t.Run("Disabled", func(*testing.T) {
		f := newFixture(t, comparison.FailureModeIsolated, nil)

		var apiErr rest.Error

		resp, err := f.client.Get(ctx, "/api/history", nil, &apiErr)
		rq.NoError(err)
		rq.Equal(http.StatusNotFound, resp.StatusCode)
		rq.Equal(rest.ErrorCode(errcodes.HistoryDisabled), apiErr.Code)
	})

	t.Run("List", func(*testing.T) {
		history := &historyStub{records: []entity.SearchRecord{{
			Keyword:          "iPhone 15",
			CheapestPlatform: entity.PlatformAmazon,
			MinPrice:         114000,
			SearchedAt:       time.Date(2026, 10, 1, 21, 0, 0, 0, time.FixedZone("JST", 9*60*60)),
		}}}
		f := newFixture(t, comparison.FailureModeIsolated, history)

		var records []rest.HistoryRecord

		resp, err := f.client.Get(ctx, "/api/history?limit=5", &records, nil)
		rq.NoError(err)
		rq.Equal(http.StatusOK, resp.StatusCode)
		rq.Equal(5, history.limit)
		rq.Equal([]rest.HistoryRecord{{
			Keyword:          "iPhone 15",
			CheapestPlatform: "Amazon",
			MinPrice:         114000,
			SearchedAt:       "2026-10-01T12:00:00Z",
		}}, records)

		_, err = f.client.Get(ctx, "/api/history", &records, nil)
		rq.NoError(err)
		rq.Equal(20, history.limit)
	})

	t.Run("Invalid limit", func(*testing.T) {
		f := newFixture(t, comparison.FailureModeIsolated, &historyStub{})

		for _, limit := range []string{"0", "101", "abc"} {
			var apiErr rest.Error

			resp, err := f.client.Get(ctx, "/api/history?limit="+limit, nil, &apiErr)
			rq.NoError(err)
			rq.Equal(http.StatusBadRequest, resp.StatusCode)
			rq.Equal(rest.ErrorCode(errcodes.InvalidPaging), apiErr.Code)
		}
	})
}

func TestGetPage(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	f := newFixture(t, comparison.FailureModeIsolated, nil)

	get := func(endpoint string) string {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+endpoint, http.NoBody)
		rq.NoError(err)

		resp, err := http.DefaultClient.Do(req)
		rq.NoError(err)
		defer resp.Body.Close()

		rq.Equal(http.StatusOK, resp.StatusCode)
		rq.Equal("text/html; charset=utf-8", resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(resp.Body)
		rq.NoError(err)

		return string(body)
	}

	form := get("/")
	rq.Contains(form, `name="q"`)
	rq.NotContains(form, `target="_blank"`)
	rq.Zero(f.primary.calls)

	results := get("/?q=" + url.QueryEscape("iPhone 15"))
	rq.Equal(3, strings.Count(results, `target="_blank"`))
	rq.Equal(1, strings.Count(results, `data-cheapest="true"`))
	rq.Contains(results, "¥114,000")
}

func TestRateLimit(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := comparison.NewService(nil, nil, comparison.Config{})
	srv := server.NewServer(server.NewSearchServer(svc), server.HistoryServer{}, server.NewPageServer(svc)).
		WithRateLimit(middlewarex.RateLimit(middlewarex.NewRateLimiter(0, 1)))

	router := chi.NewRouter()
	srv.RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	defer httpServer.Close()

	client := tests.NewAPIClient(t, httpServer.URL)

	resp, err := client.Get(ctx, "/api/search?q=tv", nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	resp, err = client.Get(ctx, "/api/search?q=tv", nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusTooManyRequests, resp.StatusCode)

	// History is not limited.
	resp, err = client.Get(ctx, "/api/history", nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
}
