package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_NewDense(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
	}{
		{name: "regular", rows: 3, cols: 4},
		{name: "single cell", rows: 1, cols: 1},
		{name: "zero rows", rows: 0, cols: 5},
		{name: "zero cols", rows: 5, cols: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDense(tt.rows, tt.cols)
			assert.Equal(t, tt.rows, d.Rows())
			assert.Equal(t, tt.cols, d.Cols())
			for _, v := range d.Data() {
				assert.Zero(t, v)
			}
		})
	}
}

func TestDense_SetAtAdd(t *testing.T) {
	d := NewDense(2, 3)

	d.Set(0, 1, 2.5)
	d.Add(0, 1, 0.5)
	d.Set(1, 2, -1)

	assert.Equal(t, 3.0, d.At(0, 1))
	assert.Equal(t, -1.0, d.At(1, 2))
	assert.Equal(t, 0.0, d.At(0, 0))
}

func TestDense_OutOfRangePanics(t *testing.T) {
	d := NewDense(2, 2)

	assert.Panics(t, func() { d.At(2, 0) })
	assert.Panics(t, func() { d.Set(0, -1, 1) })
	assert.Panics(t, func() { d.Row(5) })
	assert.Panics(t, func() { NewDense(-1, 2) })
}

func TestDense_Row(t *testing.T) {
	d := NewDense(2, 2)
	row := d.Row(1)
	row[0] = 7 // zero-copy view

	assert.Equal(t, 7.0, d.At(1, 0))
}

func TestDense_Reset(t *testing.T) {
	d := NewDense(2, 2)
	d.Set(0, 0, 9)

	d.Reset(3, 1)

	assert.Equal(t, 3, d.Rows())
	assert.Equal(t, 1, d.Cols())
	assert.Zero(t, d.At(0, 0))
}

func TestDense_FromRows(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := FromRows([][]float64{{1, 2}, {3, 4}})
		require.NoError(t, err)
		assert.Equal(t, 4.0, d.At(1, 1))
	})

	t.Run("ragged input", func(t *testing.T) {
		_, err := FromRows([][]float64{{1, 2}, {3}})
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		d, err := FromRows(nil)
		require.NoError(t, err)
		assert.Zero(t, d.Rows())
	})
}

func TestDense_Equal(t *testing.T) {
	a, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))

	b.Set(0, 0, 5)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(NewDense(2, 3)))
}
