package domain

import (
	"strings"
)

// NormalizeChainText prepares a title or author for chain matching:
// surrounding whitespace is trimmed and the result is lower-cased.
// The database compares against lower(title) / lower(author), and stored
// values are always trimmed, so both sides agree.
func NormalizeChainText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
