package matrix

// Matrix is the writable 2-D container encoding policies target.
//
// Implementations panic on out-of-range coordinates; callers are expected to
// stay inside the shape they asked Reset for.
type Matrix interface {
	// Reset discards any existing contents and reallocates zeroed storage
	// with the given shape.
	Reset(rows, cols int)

	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the value at (row, col).
	At(row, col int) float64

	// Set stores v at (row, col).
	Set(row, col int, v float64)

	// Add adds v to the value at (row, col).
	Add(row, col int, v float64)
}
