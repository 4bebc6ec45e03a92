package encode

import (
	"fmt"

	"github.com/strenc-ml/strenc/internal/matrix"
	"github.com/strenc-ml/strenc/internal/split"
)

// Option configures an Encoder.
type Option func(*Encoder)

// WithDictionary continues a prior session: the encoder reuses dict, so
// tokens already assigned keep their indices and new tokens append at the
// next contiguous index.
func WithDictionary(dict *Dictionary) Option {
	return func(e *Encoder) { e.dict = dict }
}

// WithColumnSize fixes the output column hint instead of deriving it from
// the longest sequence in the batch. Encoding fails with ErrInvalidConfig
// if a sequence exceeds it.
func WithColumnSize(cols int) Option {
	return func(e *Encoder) { e.fixedCols = cols }
}

// WithSparseOutput makes the encoder allocate a *matrix.Sparse instead of a
// *matrix.Dense. Useful for vocabulary-sized policies where rows are mostly
// zero.
func WithSparseOutput() Option {
	return func(e *Encoder) { e.sparse = true }
}

// Encoder drives one or more encoding sessions through a single policy.
// The dictionary persists across Encode calls, so successive batches stay
// index-compatible. Encoder is not safe for concurrent use.
type Encoder struct {
	policy    Policy
	dict      *Dictionary
	fixedCols int
	sparse    bool
}

// NewEncoder creates an encoder for the given policy. The policy's traits
// are validated here: contradictory traits are a construction-time contract
// violation, not a per-batch condition.
func NewEncoder(policy Policy, opts ...Option) (*Encoder, error) {
	traits := policy.Traits()
	if err := traits.Validate(); err != nil {
		return nil, err
	}

	e := &Encoder{policy: policy}
	for _, opt := range opts {
		opt(e)
	}

	if e.fixedCols < 0 {
		return nil, fmt.Errorf("%w: negative column size %d", ErrInvalidConfig, e.fixedCols)
	}
	if e.dict == nil {
		e.dict = NewDictionaryWithBase(traits.IndexBase)
	} else if e.dict.Base() != traits.IndexBase {
		return nil, fmt.Errorf("%w: dictionary base %d does not match policy base %d",
			ErrInvalidConfig, e.dict.Base(), traits.IndexBase)
	}
	return e, nil
}

// Dictionary returns the encoder's dictionary. It remains owned by the
// encoder but may be read after encoding to decode indices, or passed to a
// later encoder via WithDictionary.
func (e *Encoder) Dictionary() *Dictionary { return e.dict }

// Encode runs one encoding session over a batch of token sequences and
// returns the finished matrix. Row r of the output corresponds to seqs[r];
// an empty batch yields a zero-row matrix and leaves the dictionary
// untouched.
//
// On error no matrix is returned: a partially filled output is never handed
// to the caller.
func (e *Encoder) Encode(seqs [][]string) (matrix.Matrix, error) {
	colSize, err := e.resolveColumns(seqs)
	if err != nil {
		return nil, err
	}

	if e.policy.Traits().MultiPass {
		e.prePass(seqs)
	}

	out := e.newMatrix()
	if err := e.policy.InitMatrix(out, len(seqs), colSize, e.dict.Size()); err != nil {
		return nil, err
	}

	for row, seq := range seqs {
		for col, token := range seq {
			e.policy.Encode(e.dict.GetOrAssign(token), out, row, col)
		}
	}
	return out, nil
}

// EncodeText tokenizes each text with splitter and encodes the result.
func (e *Encoder) EncodeText(texts []string, splitter split.Splitter) (matrix.Matrix, error) {
	seqs := make([][]string, len(texts))
	for i, text := range texts {
		seqs[i] = splitter.Split(text)
	}
	return e.Encode(seqs)
}

// EncodeRagged encodes without padding: each sequence becomes a row of
// exactly its own length holding the tokens' dictionary indices. Only
// policies whose traits declare NoPadding support this path; others fail
// with ErrInvalidConfig.
func (e *Encoder) EncodeRagged(seqs [][]string) ([][]int, error) {
	if !e.policy.Traits().NoPadding {
		return nil, fmt.Errorf("%w: policy does not support ragged output", ErrInvalidConfig)
	}

	out := make([][]int, len(seqs))
	for row, seq := range seqs {
		out[row] = make([]int, len(seq))
		for col, token := range seq {
			out[row][col] = e.dict.GetOrAssign(token)
		}
	}
	return out, nil
}

// resolveColumns returns the session's column hint: the caller-fixed width
// if set, otherwise the longest sequence in the batch.
func (e *Encoder) resolveColumns(seqs [][]string) (int, error) {
	longest := 0
	for _, seq := range seqs {
		if len(seq) > longest {
			longest = len(seq)
		}
	}
	if e.fixedCols == 0 {
		return longest, nil
	}
	if longest > e.fixedCols {
		return 0, fmt.Errorf("%w: column size %d smaller than longest sequence %d",
			ErrInvalidConfig, e.fixedCols, longest)
	}
	return e.fixedCols, nil
}

// prePass populates the dictionary fully before allocation and feeds corpus
// statistics to policies that observe them.
func (e *Encoder) prePass(seqs [][]string) {
	observer, observes := e.policy.(prePassObserver)
	if observes {
		observer.BeginPrePass()
	}
	for row, seq := range seqs {
		for _, token := range seq {
			index := e.dict.GetOrAssign(token)
			if observes {
				observer.ObserveToken(row, index)
			}
		}
	}
}

func (e *Encoder) newMatrix() matrix.Matrix {
	if e.sparse {
		return matrix.NewSparse(0, 0)
	}
	return matrix.NewDense(0, 0)
}
