// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the matrix tests.
//   - One place listing every backend so behavioural tests run on all of them.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jknthn/matswift/backend"
	"github.com/jknthn/matswift/backend/gonum"
	"github.com/jknthn/matswift/backend/hwy"
	"github.com/jknthn/matswift/backend/naive"
	"github.com/jknthn/matswift/matrix"
)

// parityTol bounds the difference allowed between backends.
const parityTol = 1e-12

// backends returns one fresh instance of every backend, keyed by name.
func backends() []backend.Backend {
	return []backend.Backend{naive.New(), gonum.New(), hwy.New()}
}

// mustRows builds a matrix from nested rows or fails the test.
func mustRows(t testing.TB, rows [][]float64, opts ...matrix.Option) matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)
	return m
}

// mustNew builds a matrix from a flat buffer or fails the test.
func mustNew(t testing.TB, values []float64, r, c int, opts ...matrix.Option) matrix.Matrix {
	t.Helper()
	m, err := matrix.New(values, matrix.NewShape(r, c), opts...)
	require.NoError(t, err)
	return m
}

// requireRows asserts m has exactly the given nested contents.
func requireRows(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, matrix.NewShape(len(want), len(want[0])), m.Shape())
	require.Equal(t, want, m.Rows())
}

// seq returns r*c values 1, 2, 3, ... for an r×c matrix.
func seq(t testing.TB, r, c int, opts ...matrix.Option) matrix.Matrix {
	t.Helper()
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = float64(i + 1)
	}
	return mustNew(t, vals, r, c, opts...)
}
