// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Scalar arithmetic in both operand orders, plus free-function facades
//     for the method surface so call sites can read left to right.
//
// Contract:
//   - Scalar operations never fail; the result keeps m's shape and backend.
//   - SubScalar(m, s) = m + (-s); ScalarSub(s, m) = s + (-m).

package matrix

// AddScalar returns m + s elementwise.
func AddScalar(m Matrix, s float64) Matrix {
	return derive(m, backendOf(m).AddScalar(m.values, s), m.shape)
}

// ScalarAdd returns s + m elementwise.
func ScalarAdd(s float64, m Matrix) Matrix { return AddScalar(m, s) }

// SubScalar returns m - s elementwise.
func SubScalar(m Matrix, s float64) Matrix { return AddScalar(m, -s) }

// ScalarSub returns s - m elementwise.
func ScalarSub(s float64, m Matrix) Matrix { return AddScalar(m.InvertSign(), s) }

// MulScalar returns m * s elementwise.
func MulScalar(m Matrix, s float64) Matrix {
	return derive(m, backendOf(m).MulScalar(m.values, s), m.shape)
}

// ScalarMul returns s * m elementwise.
func ScalarMul(s float64, m Matrix) Matrix { return MulScalar(m, s) }

// Broadcast is the free-function form of m.Broadcast(to).
func Broadcast(m Matrix, to Shape) (Matrix, bool) { return m.Broadcast(to) }

// Transpose is the free-function form of m.T().
func Transpose(m Matrix) Matrix { return m.T() }

// Log is the free-function form of m.Log().
func Log(m Matrix) Matrix { return m.Log() }

// Neg is the free-function form of m.InvertSign().
func Neg(m Matrix) Matrix { return m.InvertSign() }
