package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"price_checker/internal/domain/value"
	"price_checker/internal/transport/bot/view"
)

func TestCommandArgument(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		text string
		want string
	}{
		{text: "/search iPhone 15", want: "iPhone 15"},
		{text: "/search@price_bot  tv ", want: " tv"},
		{text: "/search", want: ""},
		{text: "  /search   ", want: ""},
	}

	for _, tc := range testCases {
		rq.Equal(tc.want, commandArgument(tc.text), tc.text)
	}
}

func TestSearchKeyword(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		keyword   value.Keyword
		rejection string
	}{
		{name: "keyword", text: "/search iPhone 15", keyword: "iPhone 15"},
		{name: "no argument", text: "/search", rejection: view.SearchUsage},
		{name: "long whitespace only", text: "/search " + strings.Repeat(" ", 300), rejection: view.SearchUsage},
		{name: "longest", text: "/search " + strings.Repeat("a", value.MaxKeywordLen), keyword: value.Keyword(strings.Repeat("a", value.MaxKeywordLen))},
		{name: "too long", text: "/search " + strings.Repeat("a", value.MaxKeywordLen+1), rejection: view.KeywordTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			keyword, rejection := searchKeyword(tc.text)
			rq.Equal(tc.keyword, keyword)
			rq.Equal(tc.rejection, rejection)
		})
	}
}
