package split

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TikToken segments text into BPE piece strings using an OpenAI tiktoken
// encoding. Each piece is decoded back to its surface form, so the encoding
// engine assigns its own dictionary indices rather than inheriting
// tiktoken's ids — splitters segment, the engine numbers.
type TikToken struct {
	enc *tiktoken.Tiktoken
}

// NewTikToken creates a BPE splitter for the named encoding, e.g.
// "cl100k_base" or "p50k_base".
func NewTikToken(encodingName string) (*TikToken, error) {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", encodingName, err)
	}
	return &TikToken{enc: enc}, nil
}

// Split returns the BPE pieces of text in order.
func (t *TikToken) Split(text string) []string {
	ids := t.enc.Encode(text, nil, nil)
	pieces := make([]string, len(ids))
	for i, id := range ids {
		pieces[i] = t.enc.Decode([]int{id})
	}
	return pieces
}
