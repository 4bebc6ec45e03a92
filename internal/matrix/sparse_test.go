package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparse_SetAtAdd(t *testing.T) {
	s := NewSparse(2, 100)

	s.Set(0, 42, 1)
	s.Add(0, 42, 2)
	s.Add(1, 7, 0.5)

	assert.Equal(t, 3.0, s.At(0, 42))
	assert.Equal(t, 0.5, s.At(1, 7))
	assert.Equal(t, 0.0, s.At(0, 0))
	assert.Equal(t, 2, s.NNZ())
}

func TestSparse_OutOfRangePanics(t *testing.T) {
	s := NewSparse(2, 3)

	assert.Panics(t, func() { s.At(-1, 0) })
	assert.Panics(t, func() { s.Set(0, 3, 1) })
	assert.Panics(t, func() { s.Add(2, 0, 1) })
}

func TestSparse_Reset(t *testing.T) {
	s := NewSparse(2, 2)
	s.Set(1, 1, 4)

	s.Reset(1, 5)

	assert.Equal(t, 1, s.Rows())
	assert.Equal(t, 5, s.Cols())
	assert.Zero(t, s.NNZ())
}

func TestSparse_ToDense(t *testing.T) {
	s := NewSparse(2, 3)
	s.Set(0, 2, 1.5)
	s.Set(1, 0, -2)

	d := s.ToDense()

	want, err := FromRows([][]float64{{0, 0, 1.5}, {-2, 0, 0}})
	assert.NoError(t, err)
	assert.True(t, d.Equal(want))
}
