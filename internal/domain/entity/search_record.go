package entity

import "time"

// SearchRecord is what the search history keeps about a search. Entries themselves
// are not stored.
type SearchRecord struct {
	Keyword          string    `json:"keyword"`
	CheapestPlatform Platform  `json:"cheapestPlatform,omitempty"`
	MinPrice         int64     `json:"minPrice"`
	TraceID          string    `json:"traceId,omitempty"`
	SearchedAt       time.Time `json:"searchedAt"`
}

func NewSearchRecord(keyword string, comparison Comparison, traceID string, at time.Time) SearchRecord {
	record := SearchRecord{
		Keyword:    keyword,
		TraceID:    traceID,
		SearchedAt: at,
	}

	if cheapest, ok := comparison.Cheapest(); ok {
		record.CheapestPlatform = cheapest.Platform
		record.MinPrice = cheapest.Price
	}

	return record
}
