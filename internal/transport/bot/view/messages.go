package view

import (
	"fmt"
	"html"
	"strings"

	"price_checker/internal/presenter"
)

const (
	StartMessage = "🔎 <b>Price Checker</b>\n\n" +
		"Send /search <code>keyword</code> to compare Amazon, Rakuten and Yahoo! Shopping.\n\n" +
		"Example: /search iPhone 15"
	SearchUsage    = "❌ Usage: /search <code>keyword</code>"
	KeywordTooLong = "❌ The keyword is too long, use at most 256 characters."
	SearchFailed   = "⚠️ Prices could not be fetched. Please try again later."
	Searching      = "⏳ Checking prices on every shop..."
)

// SearchResult lists the cards in order, the cheapest marked with a trophy.
func SearchResult(keyword string, cards []presenter.Card) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🛒 <b>%s</b>\n", html.EscapeString(keyword))

	for _, card := range cards {
		sb.WriteString("\n")

		if card.Cheapest {
			sb.WriteString("🏆 <b>Cheapest!</b>\n")
		}

		fmt.Fprintf(&sb, "<b>%s</b>: %s\n", html.EscapeString(card.Platform), html.EscapeString(card.PriceLabel))
		fmt.Fprintf(&sb, "%s\n", html.EscapeString(card.Name))
		fmt.Fprintf(&sb, "<i>%s</i>\n", html.EscapeString(card.Benefit))
		fmt.Fprintf(&sb, "<a href=\"%s\">Go to shop</a>\n", html.EscapeString(card.URL))
	}

	return sb.String()
}
