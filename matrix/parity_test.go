// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jknthn/matswift/backend/naive"
	"github.com/jknthn/matswift/matrix"
)

// TestBackendParity runs every operation on every backend over the same
// inputs and checks the results against the naive reference.
func TestBackendParity(t *testing.T) {
	src := naive.New(naive.WithSeed(7))
	gen := func(r, c int) []float64 {
		return matrix.Must(matrix.Random(matrix.NewShape(r, c), 4, matrix.WithBackend(src))).Values()
	}
	a := gen(13, 17)
	b := gen(13, 17)
	row := gen(1, 17)
	col := gen(13, 1)
	k := gen(17, 11)

	type result struct {
		name string
		m    matrix.Matrix
	}
	run := func(t *testing.T, opt matrix.Option) []result {
		A := mustNew(t, a, 13, 17, opt)
		// divisors are shifted into [1, 5)
		B := matrix.AddScalar(mustNew(t, b, 13, 17), 1)
		R := matrix.AddScalar(mustNew(t, row, 1, 17), 1)
		C := mustNew(t, col, 13, 1)
		K := mustNew(t, k, 17, 11)

		var out []result
		add := func(name string, m matrix.Matrix, err error) {
			require.NoError(t, err, name)
			out = append(out, result{name, m})
		}
		m, err := matrix.Add(A, B)
		add("Add", m, err)
		m, err = matrix.Add(A, C)
		add("AddColumn", m, err)
		m, err = matrix.Sub(A, R)
		add("SubRow", m, err)
		m, err = matrix.Mul(A, B)
		add("Mul", m, err)
		m, err = matrix.Div(A, B)
		add("Div", m, err)
		m, err = matrix.Div(A, R)
		add("DivRow", m, err)
		m, err = matrix.Dot(A, K)
		add("Dot", m, err)
		m, err = A.SumAlong(matrix.Rows)
		add("SumRows", m, err)
		m, err = A.SumAlong(matrix.Columns)
		add("SumColumns", m, err)
		add("T", A.T(), nil)
		add("Log", A.Log(), nil)
		add("Neg", A.InvertSign(), nil)
		add("AddScalar", matrix.AddScalar(A, 0.25), nil)
		add("ScalarSub", matrix.ScalarSub(3, A), nil)
		add("MulScalar", matrix.MulScalar(A, -1.5), nil)
		add("Sum", mustNew(t, []float64{A.Sum()}, 1, 1), nil)
		return out
	}

	ref := run(t, matrix.WithBackend(naive.New()))
	for _, be := range backends()[1:] {
		t.Run(be.Name(), func(t *testing.T) {
			got := run(t, matrix.WithBackend(be))
			require.Len(t, got, len(ref))
			for i := range ref {
				require.Equal(t, ref[i].m.Shape(), got[i].m.Shape(), ref[i].name)
				require.True(t, ref[i].m.EqualApprox(got[i].m, parityTol), "%s differs on %s", ref[i].name, be.Name())
			}
		})
	}
}
