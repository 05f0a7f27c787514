package presenter

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"price_checker/pkg/contextx"
	"price_checker/pkg/logx"
	"price_checker/pkg/rest"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Searcher interface {
	Search(ctx context.Context, keyword string) ([]rest.ComparisonEntry, error)
}

// State is what a session currently displays.
type State struct {
	Keyword string
	Loading bool
	Entries []rest.ComparisonEntry
}

func (s State) Cards() []Card {
	return Cards(s.Entries)
}

// Session drives searches for one user. Only the response to the latest submission
// is applied; answers to older submissions are dropped.
type Session struct {
	searcher Searcher
	observer func(State)

	mu    sync.Mutex
	seq   uint64
	state State
}

func NewSession(searcher Searcher) *Session {
	return &Session{searcher: searcher}
}

// WithObserver registers a callback invoked after every state change.
func (s *Session) WithObserver(observer func(State)) *Session {
	s.observer = observer
	return s
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Submit searches keyword and returns the state after the response was applied.
// A blank keyword does nothing. A failed search keeps the previous entries.
func (s *Session) Submit(ctx context.Context, keyword string) State {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.State()
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state.Keyword = keyword
	s.state.Loading = true
	loading := s.state
	s.mu.Unlock()

	s.notify(loading)

	entries, err := s.searcher.Search(ctx, keyword)

	s.mu.Lock()
	if seq != s.seq {
		current := s.state
		s.mu.Unlock()

		logger(ctx).Debug("stale search response dropped", slog.String(logx.FieldKeyword, keyword))

		return current
	}

	s.state.Loading = false

	if err != nil {
		logger(ctx).Warn("searcher.Search", slog.String(logx.FieldKeyword, keyword), logx.Error(err))
	} else {
		s.state.Entries = entries
	}

	done := s.state
	s.mu.Unlock()

	s.notify(done)

	return done
}

func (s *Session) notify(state State) {
	if s.observer != nil {
		s.observer(state)
	}
}
