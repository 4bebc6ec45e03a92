package encode

import "github.com/strenc-ml/strenc/internal/matrix"

// DictionaryPolicy writes each token's raw dictionary index into its cell:
// the categorical index itself is the encoded value. It is single-pass —
// allocation depends only on the batch's outer shape, never on vocabulary
// size — and sequences shorter than the column size leave trailing cells at
// their zero pad value.
type DictionaryPolicy struct{}

// NewDictionaryPolicy creates the dictionary-style policy.
func NewDictionaryPolicy() *DictionaryPolicy { return &DictionaryPolicy{} }

// Traits declares single-pass operation with ragged emission available.
func (*DictionaryPolicy) Traits() Traits {
	return Traits{SinglePass: true, NoPadding: true}
}

// InitMatrix zero-fills a datasetSize×colSize matrix. mappingsSize is
// unused: this is what makes the policy single-pass.
func (*DictionaryPolicy) InitMatrix(out matrix.Matrix, datasetSize, colSize, _ int) error {
	out.Reset(datasetSize, colSize)
	return nil
}

// Encode stores the raw index at (row, col).
func (*DictionaryPolicy) Encode(index int, out matrix.Matrix, row, col int) {
	out.Set(row, col, float64(index))
}
