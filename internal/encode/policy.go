package encode

import "github.com/strenc-ml/strenc/internal/matrix"

// Policy decides how a token's dictionary index is written into the output
// matrix. A policy holds no per-session token state of its own; it is
// selected once at encoder construction and driven by the Encoder.
type Policy interface {
	// Traits returns the policy's static descriptor.
	Traits() Traits

	// InitMatrix sizes and zero-initializes out before encoding begins.
	// datasetSize is the number of sequences, colSize the resolved column
	// hint (longest sequence or caller-fixed width) and mappingsSize the
	// dictionary size known at allocation time. Policies are free to ignore
	// mappingsSize; multi-pass policies rely on it.
	InitMatrix(out matrix.Matrix, datasetSize, colSize, mappingsSize int) error

	// Encode commits one token's encoded value into out. row is the
	// sequence's position in the batch, col the token's 0-based position
	// within the sequence.
	Encode(index int, out matrix.Matrix, row, col int)
}

// prePassObserver is implemented by multi-pass policies that need corpus
// statistics beyond the dictionary size. The driver calls BeginPrePass once
// per session, then ObserveToken for every token in traversal order.
type prePassObserver interface {
	BeginPrePass()
	ObserveToken(row, index int)
}
