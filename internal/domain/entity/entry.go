package entity

// Platform is one of the three storefronts a search is compared across.
type Platform string

const (
	PlatformAmazon  Platform = "Amazon"
	PlatformRakuten Platform = "RakutenStore"
	PlatformYahoo   Platform = "Yahoo"
)

// Platforms lists every platform in result order.
var Platforms = []Platform{PlatformAmazon, PlatformRakuten, PlatformYahoo} //nolint:gochecknoglobals

func (p Platform) String() string {
	return string(p)
}

// Entry is one row of a comparison. Price is in yen, 0 means unknown.
type Entry struct {
	Platform Platform
	Name     string
	Price    int64
	URL      string
	Image    string
	Benefit  string
	Color    string
}

// Comparison is the result of one search, always one entry per platform in
// Platforms order. An empty comparison is the answer to an empty keyword.
type Comparison struct {
	Entries []Entry
}

func (c Comparison) IsEmpty() bool {
	return len(c.Entries) == 0
}

// Cheapest returns the entry with the lowest positive price. The first one wins a tie.
func (c Comparison) Cheapest() (Entry, bool) {
	var (
		cheapest Entry
		found    bool
	)

	for _, e := range c.Entries {
		if e.Price <= 0 {
			continue
		}

		if !found || e.Price < cheapest.Price {
			cheapest = e
			found = true
		}
	}

	return cheapest, found
}
