package presenter

import (
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"price_checker/pkg/rest"
)

const noPriceLabel = "No price info"

var yen = message.NewPrinter(language.Japanese) //nolint:gochecknoglobals

// Card is one entry prepared for display.
type Card struct {
	rest.ComparisonEntry

	Cheapest   bool
	PriceLabel string
}

// MinPrice returns the lowest price above zero. There is no minimum when every
// price is zero.
func MinPrice(entries []rest.ComparisonEntry) (int64, bool) {
	prices := lo.FilterMap(entries, func(e rest.ComparisonEntry, _ int) (int64, bool) {
		return e.Price, e.Price > 0
	})

	if len(prices) == 0 {
		return 0, false
	}

	return lo.Min(prices), true
}

// Cards keeps the entry order and flags every entry priced at the minimum.
func Cards(entries []rest.ComparisonEntry) []Card {
	minPrice, ok := MinPrice(entries)

	return lo.Map(entries, func(e rest.ComparisonEntry, _ int) Card {
		return Card{
			ComparisonEntry: e,
			Cheapest:        ok && e.Price == minPrice,
			PriceLabel:      PriceLabel(e.Price),
		}
	})
}

func PriceLabel(price int64) string {
	if price <= 0 {
		return noPriceLabel
	}

	return yen.Sprintf("¥%d", price)
}
