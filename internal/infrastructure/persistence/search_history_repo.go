package persistence

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"price_checker/internal/domain"
	"price_checker/internal/domain/entity"
	"price_checker/pkg/errcodes"
)

type SearchHistoryRepository struct {
	db *sqlx.DB
}

func NewSearchHistoryRepository(db *sqlx.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{db: db}
}

// Record stores one search. A zero SearchedAt is replaced with the current time.
func (r *SearchHistoryRepository) Record(ctx context.Context, record entity.SearchRecord) error {
	schema := newSearchRecordSchema(record)
	if schema.SearchedAt.IsZero() {
		schema.SearchedAt = time.Now()
	}

	query := `
		INSERT INTO search_history (keyword, cheapest_platform, min_price, trace_id, searched_at)
		VALUES (:keyword, :cheapest_platform, :min_price, :trace_id, :searched_at)`

	if _, err := r.db.NamedExecContext(ctx, query, schema); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to record search")
	}

	return nil
}

// List returns the newest searches first.
func (r *SearchHistoryRepository) List(ctx context.Context, limit int) ([]entity.SearchRecord, error) {
	query := `
		SELECT id, keyword, cheapest_platform, min_price, trace_id, searched_at
		FROM search_history
		ORDER BY searched_at DESC, id DESC
		LIMIT $1`

	var schemas []searchRecordSchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list searches")
	}

	return lo.Map(schemas, func(s searchRecordSchema, _ int) entity.SearchRecord {
		return s.toDomain()
	}), nil
}
