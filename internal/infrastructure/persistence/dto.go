package persistence

import (
	"time"

	"price_checker/internal/domain/entity"
)

// searchRecordSchema maps a search_history row.
type searchRecordSchema struct {
	ID               int64     `db:"id"`
	Keyword          string    `db:"keyword"`
	CheapestPlatform string    `db:"cheapest_platform"`
	MinPrice         int64     `db:"min_price"`
	TraceID          string    `db:"trace_id"`
	SearchedAt       time.Time `db:"searched_at"`
}

func newSearchRecordSchema(record entity.SearchRecord) searchRecordSchema {
	return searchRecordSchema{
		Keyword:          record.Keyword,
		CheapestPlatform: string(record.CheapestPlatform),
		MinPrice:         record.MinPrice,
		TraceID:          record.TraceID,
		SearchedAt:       record.SearchedAt,
	}
}

func (s searchRecordSchema) toDomain() entity.SearchRecord {
	return entity.SearchRecord{
		Keyword:          s.Keyword,
		CheapestPlatform: entity.Platform(s.CheapestPlatform),
		MinPrice:         s.MinPrice,
		TraceID:          s.TraceID,
		SearchedAt:       s.SearchedAt,
	}
}
