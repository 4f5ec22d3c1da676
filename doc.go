// Package densemat provides a minimal, dependency-free generic dense
// matrix: fixed-shape storage over a flat row-major buffer with element
// access, functional transformation, arithmetic, and a textual renderer.
//
// What:
//
//   - Matrix[T] stores r×c elements of any numeric type in a single
//     flat slice; element (row, col) lives at offset row*cols + col.
//   - Safe accessors (At, Set, Update) return sentinel errors instead
//     of panicking; AtOrDefault substitutes the zero value.
//   - Map produces a fresh matrix of possibly different element type;
//     RowIter yields lazy, restartable row slices.
//   - Scalar ops (AddScalar, SubScalar, MulScalar, DivScalar) and
//     binary algebra (Add, Sub, Mul) allocate independent results;
//     operands are never mutated or aliased.
//   - String renders a human-readable grid with globally aligned cells.
//
// Why:
//
//   - Callers needing a lightweight numeric container without pulling
//     in a full linear-algebra library.
//   - Deterministic, cache-friendly loops over contiguous storage.
//
// Complexity:
//
//   - At/Set/Update/Offset/InBounds: O(1).
//   - Map, Clone, Add, Sub, scalar ops, String: O(r×c).
//   - Mul: O(r×n×c) for (r×n)·(n×c) operands.
//
// Errors:
//
//   - ErrBadShape: negative dimensions passed to a constructor.
//   - ErrOutOfRange: index outside the matrix (or unallocated storage).
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrEmptyRows, ErrRaggedRows: FromRows input violations.
//   - ErrNilMatrix, ErrUnallocated: invalid operands to binary algebra.
//
// The package is single-threaded and fully synchronous. Mutating
// methods (Set, Update) require exclusive access to the receiver; all
// read operations require only shared access. There is no internal
// locking because no Matrix ever shares storage with another.
package densemat
