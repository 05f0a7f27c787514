package comparison

import (
	"net/url"
	"strings"

	"price_checker/internal/domain/value"
)

const (
	amazonSearchURL  = "https://www.amazon.co.jp/s"
	rakutenSearchURL = "https://search.rakuten.co.jp/search/mall/"
	yahooSearchURL   = "https://shopping.yahoo.co.jp/search"
)

// Links builds storefront search pages for a keyword. They are used whenever a
// platform has no direct item link.
type Links struct {
	AmazonTag string
}

func (l Links) Amazon(keyword value.Keyword) string {
	link := amazonSearchURL + "?k=" + encodeComponent(keyword.String())
	if l.AmazonTag != "" {
		link += "&tag=" + encodeComponent(l.AmazonTag)
	}

	return link
}

func (l Links) Rakuten(keyword value.Keyword) string {
	return rakutenSearchURL + encodeComponent(keyword.String()) + "/"
}

func (l Links) Yahoo(keyword value.Keyword) string {
	return yahooSearchURL + "?p=" + encodeComponent(keyword.String())
}

// componentUnescaper undoes what url.QueryEscape does beyond encodeURIComponent.
var componentUnescaper = strings.NewReplacer( //nolint:gochecknoglobals
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes like encodeURIComponent: spaces become %20 and !'()* are
// kept as is.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
