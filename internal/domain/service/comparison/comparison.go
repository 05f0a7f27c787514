package comparison

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"price_checker/internal/domain"
	"price_checker/internal/domain/entity"
	"price_checker/internal/domain/value"
	"price_checker/pkg/contextx"
	"price_checker/pkg/errcodes"
	"price_checker/pkg/logx"
	"price_checker/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// FailureMode decides what a failed provider lookup does to the whole search.
type FailureMode string

const (
	// FailureModeIsolated degrades only the entries that depend on the failed provider.
	FailureModeIsolated FailureMode = "isolated"
	// FailureModeAllOrNothing aborts the search on the first failed lookup.
	FailureModeAllOrNothing FailureMode = "all-or-nothing"
)

// Provider looks up the top ranked item for a keyword. A provider without a
// credential returns an absent lookup without calling out.
type Provider interface {
	Name() string
	Search(ctx context.Context, keyword value.Keyword) (entity.Lookup, error)
}

type HistoryRecorder interface {
	Record(ctx context.Context, record entity.SearchRecord) error
}

type Config struct {
	AmazonTag   string
	FailureMode FailureMode
}

type Service struct {
	primary     Provider
	secondary   Provider
	links       Links
	failureMode FailureMode
	recorder    HistoryRecorder
	now         func() time.Time
}

func NewService(primary, secondary Provider, cfg Config) *Service {
	failureMode := cfg.FailureMode
	if failureMode == "" {
		failureMode = FailureModeIsolated
	}

	return &Service{
		primary:     primary,
		secondary:   secondary,
		links:       Links{AmazonTag: cfg.AmazonTag},
		failureMode: failureMode,
		now:         time.Now,
	}
}

func (s *Service) WithHistoryRecorder(recorder HistoryRecorder) *Service {
	s.recorder = recorder
	return s
}

// Compare queries the primary then the secondary provider and derives the three
// entries. An empty keyword yields an empty comparison without any lookup.
func (s *Service) Compare(ctx context.Context, keyword value.Keyword) (entity.Comparison, error) {
	if keyword.IsEmpty() {
		metrics.RecordSearch("empty")
		return entity.Comparison{}, nil
	}

	primary := s.lookup(ctx, s.primary, keyword)
	if err := s.abortOn(primary); err != nil {
		metrics.RecordSearch("failed")
		return entity.Comparison{}, err
	}

	secondary := s.lookup(ctx, s.secondary, keyword)
	if err := s.abortOn(secondary); err != nil {
		metrics.RecordSearch("failed")
		return entity.Comparison{}, err
	}

	comparison := Derive(keyword, primary, secondary, s.links)

	metrics.RecordSearch("ok")
	s.record(ctx, keyword, comparison)

	return comparison, nil
}

func (s *Service) lookup(ctx context.Context, provider Provider, keyword value.Keyword) entity.Lookup {
	if provider == nil {
		return entity.Absent()
	}

	start := time.Now()

	lookup, err := provider.Search(ctx, keyword)
	if err != nil {
		lookup = entity.Failed(fmt.Errorf("%s.Search: %w", provider.Name(), err))

		logger(ctx).Warn(
			"provider lookup failed",
			slog.String(logx.FieldProvider, provider.Name()),
			slog.String(logx.FieldKeyword, keyword.String()),
			logx.Elapsed(start),
			logx.Error(err),
		)
	}

	metrics.RecordUpstreamRequest(provider.Name(), lookup.Outcome(), time.Since(start))

	return lookup
}

func (s *Service) abortOn(lookup entity.Lookup) error {
	if lookup.Err() == nil || s.failureMode != FailureModeAllOrNothing {
		return nil
	}

	return domain.WrapError(lookup.Err(), errcodes.UpstreamUnavailable, "failed to fetch data")
}

// record stores the search in the history. A history failure never fails the search.
func (s *Service) record(ctx context.Context, keyword value.Keyword, comparison entity.Comparison) {
	if s.recorder == nil {
		return
	}

	traceID, _ := contextx.TraceIDFromContext(ctx)
	record := entity.NewSearchRecord(keyword.String(), comparison, traceID.String(), s.now())

	if err := s.recorder.Record(ctx, record); err != nil {
		logger(ctx).Error("recorder.Record", slog.String(logx.FieldKeyword, keyword.String()), logx.Error(err))
	}
}
