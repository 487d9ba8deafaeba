// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Define the immutable Matrix value (flat row-major buffer + Shape +
//     backend) and its construction/access surface.
//
// Invariants:
//   - len(values) == shape.Elements() for every Matrix ever returned.
//   - values is never written after construction; every operation builds a
//     fresh buffer, and accessors hand out copies.
//   - The zero Matrix is a valid 0x0 matrix on the default backend.
//
// Complexity:
//   - New/FromRows/Zeros/Random/Values/Rows: O(r*c). At/Shape/Backend: O(1).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/jknthn/matswift/backend"
)

// Operation name constants for unified error wrapping.
const (
	opNew      = "New"
	opFromRows = "FromRows"
	opZeros    = "Zeros"
	opRandom   = "Random"
	opAt       = "At"
)

// Matrix is an immutable two-dimensional array of float64 stored row-major.
// Copying a Matrix value is cheap and safe: the buffer is never mutated.
type Matrix struct {
	values []float64
	shape  Shape
	be     backend.Backend
}

// New builds a matrix from a flat row-major buffer. values is copied.
//
// Errors:
//   - ErrBadShape if shape has a negative dimension.
//   - ErrLengthMismatch if len(values) != shape.Elements().
func New(values []float64, shape Shape, opts ...Option) (Matrix, error) {
	if err := ValidateShape(shape); err != nil {
		return Matrix{}, matrixErrorf(opNew, err)
	}
	if err := ValidateLength(len(values), shape); err != nil {
		return Matrix{}, matrixErrorf(opNew, fmt.Errorf("%w: %d values for %s", err, len(values), shape))
	}
	o := gatherOptions(opts...)
	buf := make([]float64, len(values))
	copy(buf, values)

	return Matrix{values: buf, shape: shape, be: o.backend}, nil
}

// FromRows builds a matrix from nested rows. The shape is
// (len(rows), len(rows[0])); rows are concatenated in order.
//
// Errors:
//   - ErrEmptyRows if rows is empty.
//   - ErrRaggedRows if any row differs in length from rows[0].
func FromRows(rows [][]float64, opts ...Option) (Matrix, error) {
	shape, err := validateRows(rows)
	if err != nil {
		return Matrix{}, matrixErrorf(opFromRows, err)
	}
	o := gatherOptions(opts...)
	buf := make([]float64, 0, shape.Elements())
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return Matrix{values: buf, shape: shape, be: o.backend}, nil
}

// Zeros returns a matrix of the given shape filled with 0.0.
// Returns ErrBadShape for negative dimensions.
func Zeros(shape Shape, opts ...Option) (Matrix, error) {
	if err := ValidateShape(shape); err != nil {
		return Matrix{}, matrixErrorf(opZeros, err)
	}
	o := gatherOptions(opts...)

	return Matrix{values: make([]float64, shape.Elements()), shape: shape, be: o.backend}, nil
}

// Random returns a matrix whose elements are drawn uniformly from [0, 1) by
// the backend's source and scaled by multiplier. Draw order is row-major, so
// a backend built with a fixed seed yields reproducible matrices.
// Returns ErrBadShape for negative dimensions.
func Random(shape Shape, multiplier float64, opts ...Option) (Matrix, error) {
	if err := ValidateShape(shape); err != nil {
		return Matrix{}, matrixErrorf(opRandom, err)
	}
	o := gatherOptions(opts...)
	buf := make([]float64, shape.Elements())
	for i := range buf {
		buf[i] = o.backend.Uniform() * multiplier
	}

	return Matrix{values: buf, shape: shape, be: o.backend}, nil
}

// Must returns m or panics if err is non-nil.
// Intended for literals in tests and examples.
func Must(m Matrix, err error) Matrix {
	if err != nil {
		panic(err)
	}
	return m
}

// Shape returns the matrix extent.
func (m Matrix) Shape() Shape { return m.shape }

// Backend returns the backend that operations on m (as left operand) run on.
func (m Matrix) Backend() backend.Backend { return backendOf(m) }

// At returns the element at row r, column c.
// Returns ErrOutOfRange if either index is outside the shape.
func (m Matrix) At(r, c int) (float64, error) {
	if r < 0 || r >= m.shape.Rows || c < 0 || c >= m.shape.Columns {
		return 0, matrixErrorf(opAt, fmt.Errorf("%w: (%d,%d) in %s", ErrOutOfRange, r, c, m.shape))
	}
	return m.values[r*m.shape.Columns+c], nil
}

// Values returns a copy of the flat row-major buffer.
func (m Matrix) Values() []float64 {
	out := make([]float64, len(m.values))
	copy(out, m.values)
	return out
}

// Rows returns a copy of the buffer split into Rows slices of Columns values.
func (m Matrix) Rows() [][]float64 {
	out := make([][]float64, m.shape.Rows)
	for i := range out {
		row := make([]float64, m.shape.Columns)
		copy(row, m.values[i*m.shape.Columns:(i+1)*m.shape.Columns])
		out[i] = row
	}
	return out
}

// Equal reports exact equality: identical shapes and elementwise == values.
// NaN never equals NaN. Backends are not compared.
func (m Matrix) Equal(o Matrix) bool {
	if m.shape != o.shape {
		return false
	}
	for i, v := range m.values {
		if v != o.values[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether shapes match and every pair of elements is
// within tol, absolutely or relatively.
func (m Matrix) EqualApprox(o Matrix, tol float64) bool {
	return m.shape == o.shape && floats.EqualApprox(m.values, o.values, tol)
}

// String renders the matrix with gonum's mat.Formatted. Empty matrices
// render as "[]".
func (m Matrix) String() string {
	if m.shape.Elements() == 0 {
		return "[]"
	}
	return fmt.Sprintf("%v", mat.Formatted(mat.NewDense(m.shape.Rows, m.shape.Columns, m.values)))
}

// backendOf returns m's backend, or the default for the zero Matrix.
func backendOf(m Matrix) backend.Backend {
	if m.be == nil {
		return defaultBackend
	}
	return m.be
}

// derive wraps a freshly computed buffer in a Matrix on m's backend.
func derive(m Matrix, values []float64, shape Shape) Matrix {
	return Matrix{values: values, shape: shape, be: backendOf(m)}
}
