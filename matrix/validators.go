// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape checks used by constructors and kernels.
//  - Return sentinel errors tagged with the validator name; call sites add the
//    operation tag on top.
//
// Determinism & Performance:
//  - Pure checks, no allocation on the success path.

package matrix

// validatorErrorf tags a sentinel with the validator that produced it.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateShape returns ErrBadShape for negative dimensions.
// Complexity: O(1).
func ValidateShape(s Shape) error {
	if err := s.Validate(); err != nil {
		return validatorErrorf("ValidateShape", err)
	}
	return nil
}

// ValidateLength ensures n values fill shape s exactly.
// Returns ErrLengthMismatch otherwise.
func ValidateLength(n int, s Shape) error {
	if n != s.Elements() {
		return validatorErrorf("ValidateLength", ErrLengthMismatch)
	}
	return nil
}

// ValidateSameShape returns *ShapeError (unwrapping to ErrShapeMismatch) when
// a and b differ.
func ValidateSameShape(a, b Matrix) error {
	if a.shape != b.shape {
		return &ShapeError{Op: "ValidateSameShape", Lhs: a.shape, Rhs: b.shape}
	}
	return nil
}

// ValidateDotCompatible ensures a.Columns == b.Rows.
// Returns ErrDimensionMismatch otherwise.
func ValidateDotCompatible(a, b Matrix) error {
	if a.shape.Columns != b.shape.Rows {
		return dimensionErrorf("ValidateDotCompatible", a.shape, b.shape)
	}
	return nil
}

// validateRows checks a nested literal and returns its shape.
// Stage order: empty → ragged.
func validateRows(rows [][]float64) (Shape, error) {
	if len(rows) == 0 {
		return Shape{}, validatorErrorf("validateRows", ErrEmptyRows)
	}
	cols := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != cols {
			return Shape{}, validatorErrorf("validateRows", ErrRaggedRows)
		}
	}
	return Shape{Rows: len(rows), Columns: cols}, nil
}

// divides reports whether d evenly divides n for broadcast purposes.
// A zero d divides only a zero n, which also guards the modulo below.
func divides(n, d int) bool {
	if d == 0 {
		return n == 0
	}
	return n%d == 0
}
