// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix–matrix arithmetic: Add, Sub, Mul (Hadamard), Div, Dot, and the
//     transpose T.
//
// Contract:
//   - Add/Sub/Mul/Div resolve shapes through the broadcast dispatch in
//     ops_elementwise.go and fail with *ShapeError (ErrShapeMismatch).
//   - Dot requires lhs.Columns == rhs.Rows and fails with ErrDimensionMismatch.
//   - Kernels run on lhs's backend; the result inherits it.
//
// Complexity:
//   - Add/Sub/Mul/Div: O(max(|lhs|, |rhs|)). Dot: O(r·k·c). T: O(r·c).

package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
	opDot = "Dot"
)

// Add returns lhs + rhs elementwise, broadcasting one operand if needed.
func Add(lhs, rhs Matrix) (Matrix, error) {
	return elementwise(opAdd, lhs, rhs, addKernel)
}

// Sub returns lhs + (-rhs). Broadcasting applies to the negated rhs exactly
// as it would to rhs, so the shapes accepted are those of Add.
func Sub(lhs, rhs Matrix) (Matrix, error) {
	neg := derive(rhs, backendOf(lhs).MulScalar(rhs.values, -1), rhs.shape)
	return elementwise(opSub, lhs, neg, addKernel)
}

// Mul returns the elementwise (Hadamard) product, broadcasting if needed.
// Use Dot for the matrix product.
func Mul(lhs, rhs Matrix) (Matrix, error) {
	return elementwise(opMul, lhs, rhs, mulKernel)
}

// Div returns lhs / rhs elementwise. Whichever operand is broadcast, the
// expanded operand is the one divided, so Div(a, b) == Mul(a, 1/b) for any
// accepted pair of shapes. Division by zero follows IEEE-754.
func Div(lhs, rhs Matrix) (Matrix, error) {
	return elementwise(opDiv, lhs, rhs, divKernel)
}

// Dot returns the matrix product lhs·rhs with shape (lhs.Rows, rhs.Columns).
// An empty inner dimension yields a zero-filled result.
func Dot(lhs, rhs Matrix) (Matrix, error) {
	if err := ValidateDotCompatible(lhs, rhs); err != nil {
		return Matrix{}, matrixErrorf(opDot, err)
	}
	be := backendOf(lhs)
	out := be.MatMul(lhs.values, lhs.shape.Rows, lhs.shape.Columns, rhs.values, rhs.shape.Columns)

	return derive(lhs, out, Shape{Rows: lhs.shape.Rows, Columns: rhs.shape.Columns}), nil
}

// T returns the transpose: element (i, j) moves to (j, i).
func (m Matrix) T() Matrix {
	out := backendOf(m).Transpose(m.values, m.shape.Rows, m.shape.Columns)
	return derive(m, out, m.shape.T())
}
