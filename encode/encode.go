// Copyright 2025 Strenc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package encode provides the public API for policy-driven categorical/text
// encoding.
//
// The engine converts ordered token sequences into fixed-layout numeric
// matrices through a pluggable encoding policy. Each policy declares static
// traits (single-pass vs. multi-pass, ragged emission) that the encoder uses
// to decide its allocation strategy before any allocation occurs.
//
// Example:
//
//	enc, err := encode.NewEncoder(encode.NewDictionaryPolicy())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := enc.Encode([][]string{{"cat", "dog"}, {"dog"}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// out is a 2×2 matrix: [[0 1] [1 0]]
//
//	// Decode an index back to its token.
//	token, err := enc.Dictionary().TokenAt(1) // "dog"
package encode

import (
	"github.com/strenc-ml/strenc/internal/encode"
)

// Dictionary is an append-only token→index mapping with stable, contiguous
// indices.
type Dictionary = encode.Dictionary

// Traits is the static descriptor a policy declares about itself.
type Traits = encode.Traits

// Policy decides how a token's dictionary index is written into the output
// matrix.
type Policy = encode.Policy

// Encoder drives encoding sessions through a single policy.
type Encoder = encode.Encoder

// Option configures an Encoder.
type Option = encode.Option

// Policy implementations.
type (
	// DictionaryPolicy writes raw dictionary indices (single-pass).
	DictionaryPolicy = encode.DictionaryPolicy

	// OneHotPolicy writes per-position one-hot blocks (multi-pass).
	OneHotPolicy = encode.OneHotPolicy

	// BagOfWordsPolicy writes vocabulary counts or presence (multi-pass).
	BagOfWordsPolicy = encode.BagOfWordsPolicy

	// TfIdfPolicy writes rawTF·IDF weights (multi-pass).
	TfIdfPolicy = encode.TfIdfPolicy
)

// Sentinel errors. All errors returned by the package wrap one of these.
var (
	ErrIndexNotFound = encode.ErrIndexNotFound
	ErrInvalidConfig = encode.ErrInvalidConfig
	ErrPolicyTraits  = encode.ErrPolicyTraits
)

// NewDictionary creates an empty dictionary with index base 0.
func NewDictionary() *Dictionary {
	return encode.NewDictionary()
}

// NewDictionaryWithBase creates an empty dictionary whose first token gets
// index base.
func NewDictionaryWithBase(base int) *Dictionary {
	return encode.NewDictionaryWithBase(base)
}

// NewEncoder creates an encoder for the given policy, validating the
// policy's traits.
func NewEncoder(policy Policy, opts ...Option) (*Encoder, error) {
	return encode.NewEncoder(policy, opts...)
}

// WithDictionary continues a prior session with an existing dictionary.
func WithDictionary(dict *Dictionary) Option {
	return encode.WithDictionary(dict)
}

// WithColumnSize fixes the output column hint instead of deriving it from
// the longest sequence.
func WithColumnSize(cols int) Option {
	return encode.WithColumnSize(cols)
}

// WithSparseOutput allocates a sparse output matrix instead of a dense one.
func WithSparseOutput() Option {
	return encode.WithSparseOutput()
}

// NewDictionaryPolicy creates the dictionary-style policy.
func NewDictionaryPolicy() *DictionaryPolicy {
	return encode.NewDictionaryPolicy()
}

// NewOneHotPolicy creates the one-hot policy.
func NewOneHotPolicy() *OneHotPolicy {
	return encode.NewOneHotPolicy()
}

// NewBagOfWordsPolicy creates the counting bag-of-words policy.
func NewBagOfWordsPolicy() *BagOfWordsPolicy {
	return encode.NewBagOfWordsPolicy()
}

// NewBinaryBagOfWordsPolicy creates the presence (0/1) bag-of-words policy.
func NewBinaryBagOfWordsPolicy() *BagOfWordsPolicy {
	return encode.NewBinaryBagOfWordsPolicy()
}

// NewTfIdfPolicy creates the TF-IDF policy.
func NewTfIdfPolicy() *TfIdfPolicy {
	return encode.NewTfIdfPolicy()
}
