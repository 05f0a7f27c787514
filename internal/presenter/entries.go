package presenter

import (
	"github.com/samber/lo"

	"price_checker/internal/domain/entity"
	"price_checker/pkg/rest"
)

// EntriesOf converts an in-process comparison to the wire entries. An empty
// comparison gives an empty, non-nil slice.
func EntriesOf(comparison entity.Comparison) []rest.ComparisonEntry {
	return lo.Map(comparison.Entries, func(e entity.Entry, _ int) rest.ComparisonEntry {
		return rest.ComparisonEntry{
			Platform: string(e.Platform),
			Name:     e.Name,
			Price:    e.Price,
			URL:      e.URL,
			Image:    e.Image,
			Benefit:  e.Benefit,
			Color:    e.Color,
		}
	})
}
