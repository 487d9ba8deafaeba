// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reductions (Sum, SumAlong) and unary transforms (Log, InvertSign).
//
// Behavior highlights:
//   - SumAlong(Rows) on a single-column matrix returns an equal matrix
//     (same shape, same values, fresh buffer).
//   - SumAlong(Columns) returns true per-column sums as a 1×Columns row.
//   - Log follows math.Log: log(0) = -Inf, log(x<0) = NaN.

package matrix

import (
	"fmt"
	"math"
)

const opSumAlong = "SumAlong"

// Sum returns the sum of all elements; 0 for an empty matrix.
// Complexity: O(r·c).
func (m Matrix) Sum() float64 { return backendOf(m).Sum(m.values) }

// SumAlong collapses one axis by summation.
//
//	Rows:    (r×c) → (r×1), out[i] = Σ_j m[i,j]
//	Columns: (r×c) → (1×c), out[j] = Σ_i m[i,j]
//
// Returns ErrBadDirection for any other Direction.
func (m Matrix) SumAlong(d Direction) (Matrix, error) {
	switch d {
	case Rows:
		return m.sumRows(), nil
	case Columns:
		return m.sumColumns(), nil
	default:
		return Matrix{}, matrixErrorf(opSumAlong, fmt.Errorf("%w: %s", ErrBadDirection, d))
	}
}

// sumRows reduces each row to its sum.
func (m Matrix) sumRows() Matrix {
	r, c := m.shape.Rows, m.shape.Columns
	if c == 1 {
		return derive(m, m.Values(), m.shape)
	}
	be := backendOf(m)
	out := make([]float64, r)
	for i := range out {
		out[i] = be.Sum(m.values[i*c : (i+1)*c])
	}
	return derive(m, out, Shape{Rows: r, Columns: 1})
}

// sumColumns transposes once so every column becomes a contiguous run, then
// sums the runs.
func (m Matrix) sumColumns() Matrix {
	r, c := m.shape.Rows, m.shape.Columns
	be := backendOf(m)
	t := be.Transpose(m.values, r, c)
	out := make([]float64, c)
	for j := range out {
		out[j] = be.Sum(t[j*r : (j+1)*r])
	}
	return derive(m, out, Shape{Rows: 1, Columns: c})
}

// Log returns the elementwise natural logarithm.
func (m Matrix) Log() Matrix {
	out := make([]float64, len(m.values))
	for i, v := range m.values {
		out[i] = math.Log(v)
	}
	return derive(m, out, m.shape)
}

// InvertSign returns -m.
func (m Matrix) InvertSign() Matrix {
	return derive(m, backendOf(m).MulScalar(m.values, -1), m.shape)
}
