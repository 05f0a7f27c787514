package lookupcache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"price_checker/internal/domain/entity"
	"price_checker/internal/domain/service/comparison"
	"price_checker/internal/domain/value"
	"price_checker/pkg/contextx"
	"price_checker/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// ErrMiss is returned by a Backend that has no value for the key.
var ErrMiss = errors.New("lookup cache miss")

// Backend stores provider outcomes by key.
type Backend interface {
	Get(ctx context.Context, key string) (Entry, error)
	Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error
}

// Entry is a cacheable lookup: found with a hit, or absent.
type Entry struct {
	Found bool       `json:"found"`
	Hit   entity.Hit `json:"hit"`
}

func entryOf(lookup entity.Lookup) Entry {
	hit, found := lookup.Hit()
	return Entry{Found: found, Hit: hit}
}

func (e Entry) lookup() entity.Lookup {
	if !e.Found {
		return entity.Absent()
	}

	return entity.Found(e.Hit)
}

// Provider caches the outcomes of another provider. Failures pass through and are
// never stored.
type Provider struct {
	next    comparison.Provider
	backend Backend
	ttl     time.Duration
}

func New(next comparison.Provider, backend Backend, ttl time.Duration) *Provider {
	return &Provider{
		next:    next,
		backend: backend,
		ttl:     ttl,
	}
}

func (p *Provider) Name() string {
	return p.next.Name()
}

func (p *Provider) Search(ctx context.Context, keyword value.Keyword) (entity.Lookup, error) {
	key := Key(p.next.Name(), keyword)

	entry, err := p.backend.Get(ctx, key)
	if err == nil {
		return entry.lookup(), nil
	}

	if !errors.Is(err, ErrMiss) {
		logger(ctx).Warn("backend.Get", slog.String(logx.FieldProvider, p.next.Name()), logx.Error(err))
	}

	lookup, err := p.next.Search(ctx, keyword)
	if err != nil {
		return lookup, err //nolint:wrapcheck
	}

	if err := p.backend.Set(ctx, key, entryOf(lookup), p.ttl); err != nil {
		logger(ctx).Warn("backend.Set", slog.String(logx.FieldProvider, p.next.Name()), logx.Error(err))
	}

	return lookup, nil
}

func Key(provider string, keyword value.Keyword) string {
	return "lookup:" + provider + ":" + keyword.String()
}
