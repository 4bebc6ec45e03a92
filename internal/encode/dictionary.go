package encode

import "fmt"

// Dictionary is an append-only mapping from tokens to integer indices.
//
// Indices are assigned in first-seen order and are dense and contiguous from
// the base: after n distinct tokens the assigned set is exactly
// {base, ..., base+n-1}. An index is never reused or renumbered, so matrices
// encoded across multiple batches with the same Dictionary stay compatible.
//
// Dictionary is not safe for concurrent use: index assignment depends on how
// many distinct tokens were seen before, which makes it inherently
// sequential.
type Dictionary struct {
	index  map[string]int
	tokens []string
	base   int
}

// NewDictionary creates an empty dictionary with index base 0.
func NewDictionary() *Dictionary {
	return NewDictionaryWithBase(0)
}

// NewDictionaryWithBase creates an empty dictionary whose first token gets
// index base. Panics if base is negative.
func NewDictionaryWithBase(base int) *Dictionary {
	if base < 0 {
		panic(fmt.Sprintf("encode: negative dictionary base %d", base))
	}
	return &Dictionary{
		index: make(map[string]int),
		base:  base,
	}
}

// GetOrAssign returns the index of token, assigning the next contiguous
// index if the token was not seen before.
func (d *Dictionary) GetOrAssign(token string) int {
	if idx, ok := d.index[token]; ok {
		return idx
	}
	idx := d.base + len(d.tokens)
	d.index[token] = idx
	d.tokens = append(d.tokens, token)
	return idx
}

// Lookup returns the index of token without assigning one.
func (d *Dictionary) Lookup(token string) (int, bool) {
	idx, ok := d.index[token]
	return idx, ok
}

// Size returns the number of distinct tokens seen so far.
func (d *Dictionary) Size() int { return len(d.tokens) }

// Base returns the index of the first assigned token.
func (d *Dictionary) Base() int { return d.base }

// TokenAt returns the token assigned to index.
// Returns an error wrapping ErrIndexNotFound if index was never assigned.
func (d *Dictionary) TokenAt(index int) (string, error) {
	pos := index - d.base
	if pos < 0 || pos >= len(d.tokens) {
		return "", fmt.Errorf("%w: %d", ErrIndexNotFound, index)
	}
	return d.tokens[pos], nil
}

// Tokens returns all tokens in index order. The slice is a copy.
func (d *Dictionary) Tokens() []string {
	out := make([]string, len(d.tokens))
	copy(out, d.tokens)
	return out
}
