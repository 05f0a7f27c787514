package comparison

import (
	"cmp"
	"fmt"

	"github.com/shopspring/decimal"

	"price_checker/internal/domain/entity"
	"price_checker/internal/domain/value"
)

const notFoundName = "Item not found"

var (
	amazonFactor = decimal.RequireFromString("0.95") //nolint:gochecknoglobals
	yahooFactor  = decimal.RequireFromString("1.02") //nolint:gochecknoglobals
)

type input struct {
	keyword   value.Keyword
	primary   entity.Lookup
	secondary entity.Lookup
	links     Links
}

type rule struct {
	platform entity.Platform
	benefit  string
	color    string
	derive   func(in input) entity.Entry
}

// rules is the closed set of platforms in result order.
var rules = []rule{ //nolint:gochecknoglobals
	{
		platform: entity.PlatformAmazon,
		benefit:  "Fast, dependable delivery",
		color:    "bg-orange-500",
		derive:   deriveAmazon,
	},
	{
		platform: entity.PlatformRakuten,
		benefit:  "Big point rewards during shopping marathons",
		color:    "bg-red-600",
		derive:   deriveRakuten,
	},
	{
		platform: entity.PlatformYahoo,
		benefit:  "The place to collect PayPay points",
		color:    "bg-red-500",
		derive:   deriveYahoo,
	},
}

// Derive builds the three entries of a comparison from the two provider lookups.
// A failed lookup counts as absent.
func Derive(keyword value.Keyword, primary, secondary entity.Lookup, links Links) entity.Comparison {
	in := input{
		keyword:   keyword,
		primary:   primary,
		secondary: secondary,
		links:     links,
	}

	entries := make([]entity.Entry, 0, len(rules))

	for _, r := range rules {
		e := r.derive(in)
		e.Platform = r.platform
		e.Benefit = r.benefit
		e.Color = r.color
		e.Price = max(e.Price, 0)

		entries = append(entries, e)
	}

	return entity.Comparison{Entries: entries}
}

// Amazon has no API: everything comes from the primary hit.
func deriveAmazon(in input) entity.Entry {
	e := entity.Entry{
		Name: lookupName(in.keyword, entity.PlatformAmazon),
		URL:  in.links.Amazon(in.keyword),
	}

	if hit, ok := in.primary.Hit(); ok {
		e.Price = scale(hit.Price, amazonFactor)
		e.Image = hit.ImageURL
	}

	return e
}

func deriveRakuten(in input) entity.Entry {
	hit, _ := in.primary.Hit()

	return entity.Entry{
		Name:  cmp.Or(hit.Title, notFoundName),
		Price: hit.Price,
		URL:   cmp.Or(hit.URL, in.links.Rakuten(in.keyword)),
		Image: hit.ImageURL,
	}
}

// Yahoo uses its own hit field by field and falls back to the primary hit.
func deriveYahoo(in input) entity.Entry {
	primary, primaryOK := in.primary.Hit()
	secondary, _ := in.secondary.Hit()

	price := secondary.Price
	if price <= 0 && primaryOK {
		price = scale(primary.Price, yahooFactor)
	}

	return entity.Entry{
		Name:  cmp.Or(secondary.Title, lookupName(in.keyword, entity.PlatformYahoo)),
		Price: price,
		URL:   cmp.Or(secondary.URL, in.links.Yahoo(in.keyword)),
		Image: cmp.Or(secondary.ImageURL, primary.ImageURL),
	}
}

func lookupName(keyword value.Keyword, platform entity.Platform) string {
	return fmt.Sprintf("%s (%s lookup)", keyword, platform)
}

// scale multiplies a yen price by factor and rounds down.
func scale(price int64, factor decimal.Decimal) int64 {
	return decimal.NewFromInt(price).Mul(factor).Floor().IntPart()
}
