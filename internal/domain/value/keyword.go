package value

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxKeywordLen is the longest accepted keyword in characters, counted after trimming.
const MaxKeywordLen = 256

var ErrKeywordTooLong = errors.New("keyword must be at most 256 characters")

// Keyword is a trimmed search keyword. The zero value means "no search".
type Keyword string

func NewKeyword(raw string) Keyword {
	return Keyword(strings.TrimSpace(raw))
}

// ParseKeyword trims raw and rejects keywords over MaxKeywordLen. Whitespace only
// input is an empty keyword, never an error.
func ParseKeyword(raw string) (Keyword, error) {
	keyword := NewKeyword(raw)
	if utf8.RuneCountInString(keyword.String()) > MaxKeywordLen {
		return "", ErrKeywordTooLong
	}

	return keyword, nil
}

func (k Keyword) IsEmpty() bool {
	return k == ""
}

func (k Keyword) String() string {
	return string(k)
}
