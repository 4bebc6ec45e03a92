package split

import (
	"strings"
	"unicode"
)

// Splitter segments text into tokens.
type Splitter interface {
	// Split returns the tokens of text in order. An empty or all-separator
	// text yields an empty slice.
	Split(text string) []string
}

// Whitespace splits on any run of Unicode whitespace.
type Whitespace struct{}

// NewWhitespace creates a whitespace splitter.
func NewWhitespace() Whitespace { return Whitespace{} }

// Split returns the whitespace-separated fields of text.
func (Whitespace) Split(text string) []string {
	return strings.Fields(text)
}

// Chars emits one token per rune, skipping whitespace.
type Chars struct{}

// NewChars creates a character splitter.
func NewChars() Chars { return Chars{} }

// Split returns each non-whitespace rune of text as its own token.
func (Chars) Split(text string) []string {
	tokens := make([]string, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, string(r))
	}
	return tokens
}
