// SPDX-License-Identifier: MIT

// Package densemat - pure transformation and row iteration.

package densemat

import (
	"iter"
	"slices"
)

// Map applies fn to every stored element in buffer order and returns a
// fresh matrix of identical shape and possibly different element type.
// Pure: the input is never mutated, and the result owns its storage.
// Map is a package function because Go methods cannot introduce new
// type parameters. An unfilled input yields an unfilled output with
// the same declared shape.
// Complexity: O(rows×cols) time and memory.
func Map[T, R Number](m *Matrix[T], fn func(T) R) *Matrix[R] {
	var out []R
	if m.data != nil {
		out = make([]R, len(m.data))
		for i, v := range m.data {
			out[i] = fn(v)
		}
	}

	return &Matrix[R]{r: m.r, c: m.c, data: out}
}

// RowIter returns a lazy sequence of row slices: the flat buffer
// partitioned into Cols()-sized chunks in order. The sequence is
// finite and restartable; each range over it starts from row 0.
// The yielded slices are views into the receiver's storage and must be
// treated as read-only.
// Complexity: O(1) per yielded row; no allocations.
func (m *Matrix[T]) RowIter() iter.Seq[[]T] {
	if m.c < 1 {
		return func(yield func([]T) bool) {} // zero-width: no chunks
	}

	return slices.Chunk(m.data, m.c)
}

// RowAt returns the i-th row slice, or ErrOutOfRange when the row does
// not exist (including the unfilled state). The slice is a read-only
// view into the receiver's storage.
// Complexity: O(1).
func (m *Matrix[T]) RowAt(i int) ([]T, error) {
	if i < 0 || i >= m.r || m.c < 1 {
		return nil, matrixErrorf(ctxRowAt, i, 0, ErrOutOfRange)
	}
	start := i * m.c
	if start+m.c > len(m.data) {
		return nil, matrixErrorf(ctxRowAt, i, 0, ErrOutOfRange)
	}

	return m.data[start : start+m.c], nil
}
