// SPDX-License-Identifier: MIT

// Package densemat - arithmetic extension over the storage layer.
//
// Purpose:
//   - Scalar operations built on Map: always succeed, preserve shape.
//   - Binary algebra (Add, Sub, Mul) with strict operand validation and
//     deterministic loop orders; every result is freshly allocated, so
//     operands and results never alias.

package densemat

import "fmt"

// ---------- op tags for error context ----------

const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// opErrorf wraps a sentinel with the package-function op tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("densemat.%s: %w", op, err)
}

// AddScalar returns a new matrix with v added to every element.
// Shape-preserving; never fails. Complexity: O(rows×cols).
func (m *Matrix[T]) AddScalar(v T) *Matrix[T] {
	return Map(m, func(x T) T { return x + v })
}

// SubScalar returns a new matrix with v subtracted from every element.
// Shape-preserving; never fails. Complexity: O(rows×cols).
func (m *Matrix[T]) SubScalar(v T) *Matrix[T] {
	return Map(m, func(x T) T { return x - v })
}

// MulScalar returns a new matrix with every element multiplied by v.
// Shape-preserving; never fails. Complexity: O(rows×cols).
func (m *Matrix[T]) MulScalar(v T) *Matrix[T] {
	return Map(m, func(x T) T { return x * v })
}

// DivScalar returns a new matrix with every element divided by v.
// Shape-preserving. Division by a zero scalar follows Go semantics for
// T (runtime panic for integer types, ±Inf/NaN for floats).
// Complexity: O(rows×cols).
func (m *Matrix[T]) DivScalar(v T) *Matrix[T] {
	return Map(m, func(x T) T { return x / v })
}

// elementwise validates both operands, then combines corresponding
// offsets with fn in a single flat pass into a fresh result.
// Returns plain sentinels wrapped with the caller's op tag.
func elementwise[T Number](a, b *Matrix[T], fn func(T, T) T, op string) (*Matrix[T], error) {
	if err := validateOperand(a); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := validateOperand(b); err != nil {
		return nil, opErrorf(op, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(op, err)
	}

	res, err := NewFilled[T](a.r, a.c)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = fn(a.data[idx], b.data[idx])
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B over identical shapes.
// Single linear pass; one allocation for the result; inputs are never
// mutated.
// Errors: ErrNilMatrix, ErrUnallocated, ErrDimensionMismatch.
// Complexity: O(rows×cols).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return elementwise(a, b, func(x, y T) T { return x + y }, opAdd)
}

// Sub computes the elementwise difference C = A - B over identical
// shapes. Same validation and allocation discipline as Add.
// Errors: ErrNilMatrix, ErrUnallocated, ErrDimensionMismatch.
// Complexity: O(rows×cols).
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return elementwise(a, b, func(x, y T) T { return x - y }, opSub)
}

// Mul performs standard matrix multiplication C = A × B: A must be
// (r×n) and B (n×c); the result is a fresh zero-initialized (r×c)
// matrix accumulated in a deterministic i→k→j loop with row-major
// offset arithmetic. Zero entries of A are skipped.
// Errors: ErrNilMatrix, ErrUnallocated, ErrDimensionMismatch (inner
// dimensions disagree).
// Complexity: O(r×n×c), Space O(r×c).
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateOperand(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := validateOperand(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := validateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewFilled[T](aRows, bCols)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	// a.data layout: i*aCols + k; b.data layout: k*bCols + j.
	var zero T
	var av T
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i := 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k := 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == zero {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j := 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Equal reports whether a and b have identical shape and exactly equal
// elements. Two nil matrices are equal; nil never equals non-nil. The
// unfilled state only equals another unfilled matrix of the same shape.
// Complexity: O(rows×cols), Space O(1).
func Equal[T Number](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c || len(a.data) != len(b.data) {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
