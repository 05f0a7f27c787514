package server

import (
	"time"

	"github.com/samber/lo"

	"price_checker/internal/domain/entity"
	"price_checker/pkg/rest"
)

func newRESTHistory(records []entity.SearchRecord) []rest.HistoryRecord {
	return lo.Map(records, func(r entity.SearchRecord, _ int) rest.HistoryRecord {
		return rest.HistoryRecord{
			Keyword:          r.Keyword,
			CheapestPlatform: string(r.CheapestPlatform),
			MinPrice:         r.MinPrice,
			SearchedAt:       r.SearchedAt.UTC().Format(time.RFC3339),
		}
	})
}
