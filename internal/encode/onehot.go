package encode

import (
	"fmt"

	"github.com/strenc-ml/strenc/internal/matrix"
)

// OneHotPolicy encodes each token position as a one-hot block: row r holds
// colSize consecutive blocks of mappingsSize cells, and the token at
// position c lights exactly one cell inside block c. It is multi-pass — the
// vocabulary must be fully sized before the block width can be allocated.
type OneHotPolicy struct {
	mappings int
}

// NewOneHotPolicy creates the one-hot policy.
func NewOneHotPolicy() *OneHotPolicy { return &OneHotPolicy{} }

// Traits declares multi-pass operation.
func (*OneHotPolicy) Traits() Traits {
	return Traits{MultiPass: true}
}

// InitMatrix zero-fills a datasetSize×(colSize·mappingsSize) matrix and
// remembers the block width for Encode.
func (p *OneHotPolicy) InitMatrix(out matrix.Matrix, datasetSize, colSize, mappingsSize int) error {
	if mappingsSize == 0 && datasetSize > 0 {
		return fmt.Errorf("%w: one-hot encoding needs a non-empty vocabulary", ErrInvalidConfig)
	}
	p.mappings = mappingsSize
	out.Reset(datasetSize, colSize*mappingsSize)
	return nil
}

// Encode lights the index-th cell of position col's block.
func (p *OneHotPolicy) Encode(index int, out matrix.Matrix, row, col int) {
	out.Set(row, col*p.mappings+index, 1)
}
