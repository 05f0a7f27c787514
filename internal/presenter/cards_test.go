package presenter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"price_checker/internal/domain/entity"
	"price_checker/internal/presenter"
	"price_checker/pkg/rest"
)

func entries(prices ...int64) []rest.ComparisonEntry {
	platforms := []string{"Amazon", "RakutenStore", "Yahoo"}

	result := make([]rest.ComparisonEntry, 0, len(prices))
	for i, price := range prices {
		result = append(result, rest.ComparisonEntry{Platform: platforms[i%len(platforms)], Price: price})
	}

	return result
}

func TestCards(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name         string
		entries      []rest.ComparisonEntry
		wantMin      int64
		wantOK       bool
		wantCheapest []bool
	}{
		{
			name:         "Lowest positive price",
			entries:      entries(114000, 120000, 122400),
			wantMin:      114000,
			wantOK:       true,
			wantCheapest: []bool{true, false, false},
		},
		{
			name:         "Zero prices are ignored",
			entries:      entries(0, 120000, 0),
			wantMin:      120000,
			wantOK:       true,
			wantCheapest: []bool{false, true, false},
		},
		{
			name:         "All zero",
			entries:      entries(0, 0, 0),
			wantCheapest: []bool{false, false, false},
		},
		{
			name:         "Ties are all flagged",
			entries:      entries(5000, 5000, 7000),
			wantMin:      5000,
			wantOK:       true,
			wantCheapest: []bool{true, true, false},
		},
		{
			name:         "Empty",
			entries:      nil,
			wantCheapest: []bool{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			minPrice, ok := presenter.MinPrice(tc.entries)
			rq.Equal(tc.wantOK, ok)
			rq.Equal(tc.wantMin, minPrice)

			cards := presenter.Cards(tc.entries)
			rq.Len(cards, len(tc.entries))

			cheapest := make([]bool, 0, len(cards))
			for i, card := range cards {
				rq.Equal(tc.entries[i], card.ComparisonEntry)
				cheapest = append(cheapest, card.Cheapest)
			}

			rq.Equal(tc.wantCheapest, cheapest)
		})
	}
}

func TestPriceLabel(t *testing.T) {
	rq := require.New(t)

	rq.Equal("¥120,000", presenter.PriceLabel(120000))
	rq.Equal("¥999", presenter.PriceLabel(999))
	rq.Equal("No price info", presenter.PriceLabel(0))
}

func TestEntriesOf(t *testing.T) {
	rq := require.New(t)

	empty := presenter.EntriesOf(entity.Comparison{})
	rq.NotNil(empty)
	rq.Empty(empty)

	got := presenter.EntriesOf(entity.Comparison{Entries: []entity.Entry{{
		Platform: entity.PlatformYahoo,
		Name:     "tv",
		Price:    5100,
		URL:      "https://shopping.yahoo.co.jp/search?p=tv",
		Benefit:  "b",
		Color:    "bg-red-500",
	}}})
	rq.Equal([]rest.ComparisonEntry{{
		Platform: "Yahoo",
		Name:     "tv",
		Price:    5100,
		URL:      "https://shopping.yahoo.co.jp/search?p=tv",
		Benefit:  "b",
		Color:    "bg-red-500",
	}}, got)
}
