package matrix

import "fmt"

// sparseRow holds the non-zero entries of one row in insertion order.
type sparseRow struct {
	indices []int
	values  []float64
}

func (r *sparseRow) find(col int) int {
	for i, idx := range r.indices {
		if idx == col {
			return i
		}
	}
	return -1
}

// Sparse is a 2-D float64 matrix storing only non-zero entries, row by row.
// It suits vocabulary-sized outputs where most cells stay zero.
type Sparse struct {
	rows []sparseRow
	cols int
}

// NewSparse creates an empty rows×cols sparse matrix.
// Panics if either dimension is negative.
func NewSparse(rows, cols int) *Sparse {
	s := &Sparse{}
	s.Reset(rows, cols)
	return s
}

// Reset drops all entries and resizes to the given shape.
func (s *Sparse) Reset(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: invalid shape %d×%d", rows, cols))
	}
	s.rows = make([]sparseRow, rows)
	s.cols = cols
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return len(s.rows) }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.cols }

// At returns the value at (row, col), zero if no entry is stored.
// Panics if the coordinates are out of range.
func (s *Sparse) At(row, col int) float64 {
	s.check(row, col)
	r := &s.rows[row]
	if i := r.find(col); i >= 0 {
		return r.values[i]
	}
	return 0
}

// Set stores v at (row, col), replacing any existing entry.
// Panics if the coordinates are out of range.
func (s *Sparse) Set(row, col int, v float64) {
	s.check(row, col)
	r := &s.rows[row]
	if i := r.find(col); i >= 0 {
		r.values[i] = v
		return
	}
	r.indices = append(r.indices, col)
	r.values = append(r.values, v)
}

// Add adds v to the value at (row, col).
// Panics if the coordinates are out of range.
func (s *Sparse) Add(row, col int, v float64) {
	s.check(row, col)
	r := &s.rows[row]
	if i := r.find(col); i >= 0 {
		r.values[i] += v
		return
	}
	r.indices = append(r.indices, col)
	r.values = append(r.values, v)
}

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int {
	n := 0
	for i := range s.rows {
		n += len(s.rows[i].indices)
	}
	return n
}

// ToDense materializes the matrix as a Dense copy.
func (s *Sparse) ToDense() *Dense {
	d := NewDense(len(s.rows), s.cols)
	for row := range s.rows {
		r := &s.rows[row]
		for i, col := range r.indices {
			d.Set(row, col, r.values[i])
		}
	}
	return d
}

func (s *Sparse) check(row, col int) {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= s.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %d×%d matrix",
			row, col, len(s.rows), s.cols))
	}
}
