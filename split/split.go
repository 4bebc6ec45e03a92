// Copyright 2025 Strenc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package split provides the public API for turning raw text into token
// sequences for the encoding engine.
//
// Example:
//
//	sp := split.NewWhitespace()
//	tokens := sp.Split("the quick fox") // ["the" "quick" "fox"]
package split

import (
	"github.com/strenc-ml/strenc/internal/split"
)

// Splitter segments text into tokens.
type Splitter = split.Splitter

// Whitespace splits on runs of Unicode whitespace.
type Whitespace = split.Whitespace

// Chars emits one token per non-whitespace rune.
type Chars = split.Chars

// TikToken segments text into BPE piece strings via a tiktoken encoding.
type TikToken = split.TikToken

// NewWhitespace creates a whitespace splitter.
func NewWhitespace() Whitespace {
	return split.NewWhitespace()
}

// NewChars creates a character splitter.
func NewChars() Chars {
	return split.NewChars()
}

// NewTikToken creates a BPE splitter for the named encoding, e.g.
// "cl100k_base".
func NewTikToken(encodingName string) (*TikToken, error) {
	return split.NewTikToken(encodingName)
}
