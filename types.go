// SPDX-License-Identifier: MIT
// Package densemat: core types and generic constraints.

package densemat

import "fmt"

// Number constrains the element type to anything supporting the four
// arithmetic operators (+ - * /) by value: integers, unsigned integers,
// floats, and complex numbers, including named types derived from them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Matrix is a row-major dense matrix of T values.
//   - r, c hold the logical shape (rows, columns), both >= 0.
//   - data is a flat buffer in row-major order; intended invariant is
//     len(data) == r*c. The unfilled state produced by New deliberately
//     keeps len(data) == 0 while declaring a shape; every accessor on
//     such a matrix fails with ErrOutOfRange until it is rebuilt via
//     NewFilled or FromRows.
//
// A Matrix exclusively owns its storage: no operation here ever makes
// two instances share a buffer. Row slices handed out by RowIter and
// RowAt are read-only views into the receiver, not separate matrices.
type Matrix[T Number] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)
