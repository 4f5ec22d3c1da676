// SPDX-License-Identifier: MIT
// Package densemat: canonical validation checks for binary algebra.
//
// Purpose:
//   - Provide a single source of truth for operand checks.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their op tag.
//
// All checks are pure, deterministic and allocate nothing.

package densemat

// validateOperand ensures m is non-nil and fully backed by storage.
// Returns ErrNilMatrix or ErrUnallocated. Complexity: O(1).
func validateOperand[T Number](m *Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	// An unfilled matrix (New) declares a shape without storage; binary
	// algebra over it would silently compute on missing cells.
	if len(m.data) != m.r*m.c {
		return ErrUnallocated
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
// Assumes both already passed validateOperand. Complexity: O(1).
func validateSameShape[T Number](a, b *Matrix[T]) error {
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulCompatible ensures inner dimensions agree: a.Cols == b.Rows.
// Assumes both already passed validateOperand. Complexity: O(1).
func validateMulCompatible[T Number](a, b *Matrix[T]) error {
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}
