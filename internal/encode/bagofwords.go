package encode

import "github.com/strenc-ml/strenc/internal/matrix"

// BagOfWordsPolicy encodes each sequence as one row over the vocabulary:
// cell (row, index) holds the number of times the token occurred in the
// sequence, or 1 in binary mode. Token order within a sequence is discarded.
// Multi-pass: the column count is the vocabulary size.
type BagOfWordsPolicy struct {
	binary bool
}

// NewBagOfWordsPolicy creates a counting bag-of-words policy.
func NewBagOfWordsPolicy() *BagOfWordsPolicy { return &BagOfWordsPolicy{} }

// NewBinaryBagOfWordsPolicy creates a bag-of-words policy recording presence
// (0/1) instead of counts.
func NewBinaryBagOfWordsPolicy() *BagOfWordsPolicy {
	return &BagOfWordsPolicy{binary: true}
}

// Traits declares multi-pass operation.
func (*BagOfWordsPolicy) Traits() Traits {
	return Traits{MultiPass: true}
}

// InitMatrix zero-fills a datasetSize×mappingsSize matrix; colSize is
// irrelevant since columns are vocabulary entries, not positions.
func (*BagOfWordsPolicy) InitMatrix(out matrix.Matrix, datasetSize, _ int, mappingsSize int) error {
	out.Reset(datasetSize, mappingsSize)
	return nil
}

// Encode bumps (or sets, in binary mode) the token's vocabulary column.
func (p *BagOfWordsPolicy) Encode(index int, out matrix.Matrix, row, _ int) {
	if p.binary {
		out.Set(row, index, 1)
		return
	}
	out.Add(row, index, 1)
}
