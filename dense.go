// SPDX-License-Identifier: MIT

// Package densemat - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly flat buffer with the explicit index
//     formula row*cols + col.
//   - Guarantee safety at the public surface: At/Set/Update return
//     errors instead of panicking, and coordinates are bounds-checked
//     independently before any offset is computed, so an out-of-range
//     row can never alias into a neighboring row's cell.

package densemat

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxUpdate = "Update" // method tag used in error wrappers
	ctxRowAt  = "RowAt"  // method tag used in error wrappers
)

// matrixErrorf wraps a sentinel with method context and coordinates.
// Stable, human-friendly messages; preserves the sentinel via %w.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New declares an rows×cols shape but allocates NO backing storage.
// The result is a deliberately distinct "unfilled" state, not a zero
// matrix: every At/Set/Update on it fails with ErrOutOfRange, and the
// binary algebra rejects it with ErrUnallocated. Use NewFilled for a
// ready-to-use matrix.
// Returns ErrBadShape if either dimension is negative.
// Complexity: O(1).
func New[T Number](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Matrix[T]{r: rows, c: cols}, nil
}

// NewFilled creates an rows×cols matrix with every element set to the
// zero value of T. This is the safe way to obtain a usable matrix.
// Returns ErrBadShape if either dimension is negative.
// Complexity: O(rows×cols) time and memory.
func NewFilled[T Number](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a matrix from a non-empty nested row slice: the row
// count is len(rows), the column count is len(rows[0]), and all inner
// rows are flattened in order into fresh row-major storage. The input
// is copied, never retained.
//
// Returns ErrEmptyRows if rows has no rows or the first row has no
// columns. Returns ErrRaggedRows if any inner row length differs from
// the first; under WithRaggedPadding, rows shorter than the first are
// padded with the zero value instead (longer rows stay an error, so
// data is never silently truncated).
// Complexity: O(rows×cols) time and memory.
func FromRows[T Number](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyRows
	}
	o := gatherOptions(opts...)

	r, c := len(rows), len(rows[0])
	data := make([]T, 0, r*c)
	for _, row := range rows {
		if len(row) > c || (len(row) < c && !o.raggedPadding) {
			return nil, ErrRaggedRows
		}
		data = append(data, row...)
		// Pad short rows up to the declared width (zero values) so the
		// row-major layout stays intact.
		for pad := len(row); pad < c; pad++ {
			var zero T
			data = append(data, zero)
		}
	}

	return &Matrix[T]{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Offset computes the row-major offset row*cols + col with no bounds
// validation: a pure arithmetic mapping, trusted by callers. Use
// InBounds or the safe accessors when coordinates are not known-valid.
// Complexity: O(1).
func (m *Matrix[T]) Offset(row, col int) int {
	return row*m.c + col
}

// InBounds reports whether (row, col) lies within the declared shape:
// 0 <= row < Rows() and 0 <= col < Cols().
// Complexity: O(1).
func (m *Matrix[T]) InBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// indexOf bounds-checks (row, col) and returns the flat offset.
// Coordinates are validated against the shape BEFORE the offset is
// computed; the buffer-length check on top catches the unfilled state.
// Returns the bare sentinel; public methods wrap it with context.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if !m.InBounds(row, col) {
		return 0, ErrOutOfRange
	}
	off := row*m.c + col
	if off >= len(m.data) {
		return 0, ErrOutOfRange // shape declared but storage missing
	}

	return off, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// AtOrDefault returns the element at (row, col), or the zero value of T
// when the lookup fails for any reason.
// Complexity: O(1).
func (m *Matrix[T]) AtOrDefault(row, col int) T {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero
	}

	return m.data[off]
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Update reads the element at (row, col), applies fn, and writes the
// result back. Fails with ErrOutOfRange exactly like Set when the cell
// does not exist; fn is not called in that case.
// Complexity: O(1) plus the cost of fn.
func (m *Matrix[T]) Update(row, col int, fn func(T) T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxUpdate, row, col, err)
	}
	m.data[off] = fn(m.data[off])

	return nil
}

// Clone returns a deep copy with independent storage: mutations of the
// clone never affect the original. The unfilled state is preserved.
// Complexity: O(rows×cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	var cp []T
	if m.data != nil {
		cp = make([]T, len(m.data))
		copy(cp, m.data)
	}

	return &Matrix[T]{r: m.r, c: m.c, data: cp}
}

// Do visits each stored element in row-major order and calls
// fn(row, col, v); iteration stops early when fn returns false.
// Read-only with respect to the matrix; no allocations.
// Complexity: O(rows×cols), Space O(1).
func (m *Matrix[T]) Do(fn func(row, col int, v T) bool) {
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		for j := 0; j < m.c; j++ {
			if base+j >= len(m.data) {
				return // unfilled tail: nothing stored beyond here
			}
			if !fn(i, j, m.data[base+j]) {
				return
			}
		}
	}
}
