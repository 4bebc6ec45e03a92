// Package matrix implements the 2-D numeric containers that encoding
// policies write into.
//
// Two implementations are provided:
//   - Dense: a row-major flat float64 buffer
//   - Sparse: per-row (index, value) pairs for vocabulary-sized outputs
//
// Both satisfy the Matrix interface. Reset is the allocation hook: a policy
// resizes the container to the shape it has decided on before any cell is
// written, so the allocation strategy is fixed up front rather than grown
// during encoding.
package matrix
