// SPDX-License-Identifier: MIT
// Package densemat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. All operations return these sentinels and tests check them
// via errors.Is. No operation panics on user-triggered conditions.

package densemat

import "errors"

// Every message is prefixed with "densemat: ..." for consistency and to
// allow easy grepping across logs. Public methods wrap these sentinels
// with method context via fmt.Errorf("...: %w", ErrX); callers still
// match with errors.Is.
var (
	// ErrBadShape indicates a constructor was given a negative dimension.
	ErrBadShape = errors.New("densemat: invalid shape")

	// ErrOutOfRange indicates an index (row or column) outside valid
	// bounds, or an access through a matrix with no backing storage.
	// Public indexers (At/Set/Update/RowAt) return this, never panic.
	ErrOutOfRange = errors.New("densemat: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add/Sub with differing shapes, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("densemat: dimension mismatch")

	// ErrEmptyRows indicates FromRows input with no rows or no columns.
	ErrEmptyRows = errors.New("densemat: input must have at least one row and one column")

	// ErrRaggedRows indicates FromRows input rows of differing lengths.
	ErrRaggedRows = errors.New("densemat: all rows must have the same length")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("densemat: nil matrix")

	// ErrUnallocated indicates an arithmetic operand whose backing
	// storage was never allocated (constructed via New and never
	// filled). Use NewFilled or FromRows to obtain a usable operand.
	ErrUnallocated = errors.New("densemat: backing storage not allocated")
)
