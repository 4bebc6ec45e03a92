// Package split turns raw text into the token sequences the encoding
// engine consumes.
//
// Splitters are deliberately dumb: they segment text and nothing else.
// Index assignment, vocabulary state and matrix layout all live in the
// encode package, so the same splitter can feed any policy.
package split
