// Copyright 2025 Strenc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for the 2-D numeric containers
// produced by the encoding engine.
//
// Example:
//
//	d := matrix.NewDense(2, 3)
//	d.Set(0, 1, 4.5)
//	fmt.Println(d.At(0, 1)) // 4.5
package matrix

import (
	"github.com/strenc-ml/strenc/internal/matrix"
)

// Matrix is the writable 2-D container encoding policies target.
type Matrix = matrix.Matrix

// Dense is a row-major flat float64 matrix.
type Dense = matrix.Dense

// Sparse stores only non-zero entries, row by row.
type Sparse = matrix.Sparse

// NewDense creates a zero-filled rows×cols dense matrix.
func NewDense(rows, cols int) *Dense {
	return matrix.NewDense(rows, cols)
}

// NewSparse creates an empty rows×cols sparse matrix.
func NewSparse(rows, cols int) *Sparse {
	return matrix.NewSparse(rows, cols)
}

// FromRows creates a dense matrix from explicit row slices.
func FromRows(rows [][]float64) (*Dense, error) {
	return matrix.FromRows(rows)
}
