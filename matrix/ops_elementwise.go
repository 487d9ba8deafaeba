// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Broadcasting (shape expansion by repetition) and the shared dispatch
//     used by every elementwise binary operation.
//   - Keep the repetition loops private (ew*) so Add/Sub/Mul/Div share them.
//
// Broadcast rules, tried in order:
//   1. Same row count and target columns a multiple of source columns:
//      each value is repeated k = to.Columns/Columns times in place.
//   2. Same column count and target rows a multiple of source rows:
//      the whole buffer is repeated k = to.Rows/Rows times.
//   Otherwise the matrix is not broadcastable to the target.
//
// Dispatch (elementwise):
//   equal shapes → direct kernel; else lhs broadcast to rhs.shape; else rhs
//   broadcast to lhs.shape; else *ShapeError. The result shape is the larger
//   of the two; the kernel always receives (lhs-side, rhs-side) in order.
//
// Determinism & Performance:
//   - Repetition is a sequence of copy() calls in row-major order.
//   - O(target elements) time and space.

package matrix

import "github.com/jknthn/matswift/backend"

// kernel is a backend elementwise operation over equal-length buffers.
type kernel func(be backend.Backend, a, b []float64) []float64

func addKernel(be backend.Backend, a, b []float64) []float64 { return be.Add(a, b) }
func mulKernel(be backend.Backend, a, b []float64) []float64 { return be.Mul(a, b) }
func divKernel(be backend.Backend, a, b []float64) []float64 { return be.Div(a, b) }

// Broadcast expands m to shape to by repetition. It returns (result, true)
// when rule 1 or rule 2 applies and (zero Matrix, false) otherwise.
// Broadcasting to m's own shape succeeds under rule 1 with k=1.
//
// Zero-sized dimensions: a zero source dimension only divides a zero target
// dimension, so an empty matrix broadcasts only to shapes that are empty in
// the same way.
//
// Complexity: O(to.Elements()).
func (m Matrix) Broadcast(to Shape) (Matrix, bool) {
	if to.Validate() != nil {
		return Matrix{}, false
	}
	s := m.shape
	// Rule 1: repeat columns within each row.
	if to.Rows == s.Rows && divides(to.Columns, s.Columns) {
		return derive(m, ewRepeatColumns(m.values, s, to), to), true
	}
	// Rule 2: repeat the whole buffer.
	if to.Columns == s.Columns && divides(to.Rows, s.Rows) {
		return derive(m, ewRepeatBuffer(m.values, s, to), to), true
	}
	return Matrix{}, false
}

// ewRepeatColumns repeats every value k = to.Columns/s.Columns times in
// place, so row [a b] with k=2 becomes [a a b b].
func ewRepeatColumns(values []float64, s, to Shape) []float64 {
	out := make([]float64, to.Elements())
	if s.Columns == 0 {
		return out // to.Columns == 0 too
	}
	k := to.Columns / s.Columns
	for i, v := range values {
		run := out[i*k : (i+1)*k]
		for j := range run {
			run[j] = v
		}
	}
	return out
}

// ewRepeatBuffer concatenates to.Rows/s.Rows copies of values.
func ewRepeatBuffer(values []float64, s, to Shape) []float64 {
	out := make([]float64, to.Elements())
	if len(values) == 0 {
		return out
	}
	for off := 0; off < len(out); off += len(values) {
		copy(out[off:], values)
	}
	return out
}

// elementwise resolves shapes for a binary operation and runs k on the
// lhs backend. op tags the error.
func elementwise(op string, lhs, rhs Matrix, k kernel) (Matrix, error) {
	be := backendOf(lhs)
	if ValidateSameShape(lhs, rhs) == nil {
		return derive(lhs, k(be, lhs.values, rhs.values), lhs.shape), nil
	}
	if bl, ok := lhs.Broadcast(rhs.shape); ok {
		return derive(lhs, k(be, bl.values, rhs.values), rhs.shape), nil
	}
	if br, ok := rhs.Broadcast(lhs.shape); ok {
		return derive(lhs, k(be, lhs.values, br.values), lhs.shape), nil
	}
	return Matrix{}, &ShapeError{Op: op, Lhs: lhs.shape, Rhs: rhs.shape}
}
