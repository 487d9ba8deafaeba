// SPDX-License-Identifier: MIT

// Package matrix: value types shared by every operation.
// This file contains ONLY the domain-facing value types (Shape, Direction).
// Errors and options live in errors.go and options.go.
package matrix

import (
	"fmt"
	"math"
)

// Shape is the (Rows, Columns) extent of a matrix.
// It is an immutable value type; == compares it structurally.
type Shape struct {
	Rows    int
	Columns int
}

// NewShape returns Shape{Rows: rows, Columns: cols}. It does not validate;
// constructors call Validate before allocating.
func NewShape(rows, cols int) Shape {
	return Shape{Rows: rows, Columns: cols}
}

// Elements returns Rows*Columns.
// Complexity: O(1).
func (s Shape) Elements() int { return s.Rows * s.Columns }

// T returns the transposed shape (Columns, Rows).
func (s Shape) T() Shape { return Shape{Rows: s.Columns, Columns: s.Rows} }

// Equal reports whether s and o have identical dimensions.
func (s Shape) Equal(o Shape) bool { return s == o }

// Validate returns ErrBadShape if either dimension is negative or if
// Rows*Columns does not fit in an int. Zero-sized dimensions are legal.
func (s Shape) Validate() error {
	if s.Rows < 0 || s.Columns < 0 {
		return fmt.Errorf("%w: %s", ErrBadShape, s)
	}
	if s.Columns != 0 && s.Rows > math.MaxInt/s.Columns {
		return fmt.Errorf("%w: %s overflows element count", ErrBadShape, s)
	}
	return nil
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Columns) }

// Direction selects the axis collapsed by SumAlong.
type Direction int

const (
	// Rows sums each row, producing a Rows×1 column.
	Rows Direction = iota
	// Columns sums each column, producing a 1×Columns row.
	Columns
)

// String returns "rows", "columns" or "Direction(n)".
func (d Direction) String() string {
	switch d {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
