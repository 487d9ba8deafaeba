// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every failure the package reports is one of the sentinels below, possibly
// wrapped with an operation tag. Callers MUST match with errors.Is (or
// errors.As for *ShapeError). No operation panics on user input; panics are
// reserved for Must and for nonsensical option values.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: " so wrapped chains stay greppable.
var (
	// ErrBadShape is returned when a shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrLengthMismatch is returned when a flat buffer does not hold exactly
	// Rows*Columns values for the requested shape.
	ErrLengthMismatch = errors.New("matrix: value count does not match shape")

	// ErrEmptyRows is returned by FromRows when no rows are supplied.
	ErrEmptyRows = errors.New("matrix: no rows")

	// ErrRaggedRows is returned by FromRows when rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have unequal lengths")

	// ErrShapeMismatch is returned by elementwise operations when the shapes
	// are unequal and neither operand broadcasts to the other.
	ErrShapeMismatch = errors.New("matrix: incompatible shapes")

	// ErrDimensionMismatch is returned by Dot when lhs.Columns != rhs.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadDirection is returned by SumAlong for an unknown Direction.
	ErrBadDirection = errors.New("matrix: unknown direction")
)

// ShapeError describes an elementwise operation whose operands could not be
// reconciled. It unwraps to ErrShapeMismatch.
type ShapeError struct {
	Op       string // operation tag, e.g. "Add"
	Lhs, Rhs Shape
}

// Error implements error.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: %s vs %s", e.Op, ErrShapeMismatch, e.Lhs, e.Rhs)
}

// Unwrap lets errors.Is(err, ErrShapeMismatch) succeed.
func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// dimensionErrorf wraps ErrDimensionMismatch with the operand shapes.
func dimensionErrorf(tag string, lhs, rhs Shape) error {
	return fmt.Errorf("%s: %w: %s · %s", tag, ErrDimensionMismatch, lhs, rhs)
}
