package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major 2-D float64 matrix backed by a single flat buffer.
type Dense struct {
	data []float64
	rows int
	cols int
}

// NewDense creates a zero-filled rows×cols matrix.
// Panics if either dimension is negative.
func NewDense(rows, cols int) *Dense {
	d := &Dense{}
	d.Reset(rows, cols)
	return d
}

// FromRows creates a Dense matrix from explicit row slices.
// All rows must have the same length.
func FromRows(rows [][]float64) (*Dense, error) {
	d := &Dense{}
	if len(rows) == 0 {
		d.Reset(0, 0)
		return d, nil
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(r), cols)
		}
	}
	d.Reset(len(rows), cols)
	for i, r := range rows {
		copy(d.Row(i), r)
	}
	return d, nil
}

// Reset reallocates zeroed storage with the given shape.
func (d *Dense) Reset(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: invalid shape %d×%d", rows, cols))
	}
	d.rows = rows
	d.cols = cols
	d.data = make([]float64, rows*cols)
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// At returns the value at (row, col).
// Panics if the coordinates are out of range.
func (d *Dense) At(row, col int) float64 {
	return d.data[d.offset(row, col)]
}

// Set stores v at (row, col).
// Panics if the coordinates are out of range.
func (d *Dense) Set(row, col int, v float64) {
	d.data[d.offset(row, col)] = v
}

// Add adds v to the value at (row, col).
// Panics if the coordinates are out of range.
func (d *Dense) Add(row, col int, v float64) {
	d.data[d.offset(row, col)] += v
}

// Row returns a zero-copy view of the given row.
//
// WARNING: modifications to the returned slice modify the matrix.
func (d *Dense) Row(row int) []float64 {
	if row < 0 || row >= d.rows {
		panic(fmt.Sprintf("matrix: row %d out of range [0,%d)", row, d.rows))
	}
	return d.data[row*d.cols : (row+1)*d.cols]
}

// Data returns the underlying row-major buffer (zero-copy).
func (d *Dense) Data() []float64 { return d.data }

// Equal reports whether d and other have the same shape and contents.
func (d *Dense) Equal(other *Dense) bool {
	if d.rows != other.rows || d.cols != other.cols {
		return false
	}
	for i, v := range d.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// String renders the matrix one row per line, values space-separated.
func (d *Dense) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense(%d×%d)", d.rows, d.cols)
	for r := 0; r < d.rows; r++ {
		b.WriteString("\n")
		for c := 0; c < d.cols; c++ {
			if c > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%g", d.At(r, c))
		}
	}
	return b.String()
}

func (d *Dense) offset(row, col int) int {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %d×%d matrix",
			row, col, d.rows, d.cols))
	}
	return row*d.cols + col
}
