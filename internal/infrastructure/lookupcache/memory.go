package lookupcache

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Memory keeps entries in process.
type Memory struct {
	cache *cache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (m *Memory) Get(_ context.Context, key string) (Entry, error) {
	value, ok := m.cache.Get(key)
	if !ok {
		return Entry{}, ErrMiss
	}

	entry, ok := value.(Entry)
	if !ok {
		return Entry{}, ErrMiss
	}

	return entry, nil
}

func (m *Memory) Set(_ context.Context, key string, entry Entry, ttl time.Duration) error {
	m.cache.Set(key, entry, ttl)
	return nil
}
