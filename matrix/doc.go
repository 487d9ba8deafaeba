// SPDX-License-Identifier: MIT

// Package matrix provides an immutable two-dimensional float64 matrix with
// shape-aware arithmetic.
//
// The matrix package provides:
//
//   - Shape, a (Rows, Columns) value type with Elements and T.
//   - Matrix, a flat row-major buffer plus a Shape. Every operation returns a
//     new Matrix; nothing is modified in place.
//   - Scalar arithmetic in both operand orders (AddScalar / ScalarAdd, ...).
//   - Elementwise Add, Sub, Mul and Div with broadcasting, and the matrix
//     product Dot.
//   - Reductions (Sum, SumAlong) and transforms (T, Log, InvertSign).
//
// Broadcasting repeats a smaller operand to match a larger one. A matrix
// broadcasts to a target shape when either
//
//  1. the row counts match and the target column count is a multiple of the
//     source column count (each element is repeated in place along its
//     row, so [a b] becomes [a a b b]), or
//  2. the column counts match and the target row count is a multiple of the
//     source row count (the whole matrix is stacked).
//
// Elementwise operations try the operands' shapes as-is, then lhs broadcast
// to rhs, then rhs broadcast to lhs, and otherwise return an error wrapping
// ErrShapeMismatch.
//
// Numeric kernels are supplied by a backend.Backend chosen per matrix with
// WithBackend; the naive reference backend is the default. Results of binary
// operations run on, and inherit, the left operand's backend.
//
// See the examples in this package for usage patterns.
package matrix
