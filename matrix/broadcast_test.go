// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jknthn/matswift/matrix"
)

func TestBroadcast_Rules(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
		to   matrix.Shape
		want [][]float64
	}{
		{"rule1 column vector", [][]float64{{1}, {2}}, matrix.NewShape(2, 3), [][]float64{{1, 1, 1}, {2, 2, 2}}},
		{"rule1 repeats in place", [][]float64{{1, 2}}, matrix.NewShape(1, 4), [][]float64{{1, 1, 2, 2}}},
		{"rule2 row vector", [][]float64{{1, 2, 3}}, matrix.NewShape(2, 3), [][]float64{{1, 2, 3}, {1, 2, 3}}},
		{"rule2 stacks whole buffer", [][]float64{{1, 2}, {1, 2}}, matrix.NewShape(4, 2), [][]float64{{1, 2}, {1, 2}, {1, 2}, {1, 2}}},
		{"rule2 stacks in order", [][]float64{{1, 2}, {3, 4}}, matrix.NewShape(4, 2), [][]float64{{1, 2}, {3, 4}, {1, 2}, {3, 4}}},
		{"identity shape", [][]float64{{1, 2}, {3, 4}}, matrix.NewShape(2, 2), [][]float64{{1, 2}, {3, 4}}},
		{"rule1 wins on 1x1", [][]float64{{7}}, matrix.NewShape(1, 3), [][]float64{{7, 7, 7}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustRows(t, tc.in)
			got, ok := m.Broadcast(tc.to)
			require.True(t, ok)
			requireRows(t, tc.want, got)

			free, ok := matrix.Broadcast(m, tc.to)
			require.True(t, ok)
			assert.True(t, got.Equal(free))
		})
	}
}

func TestBroadcast_Zeros(t *testing.T) {
	z := matrix.Must(matrix.Zeros(matrix.NewShape(3, 2)))
	got, ok := z.Broadcast(matrix.NewShape(3, 4))
	require.True(t, ok)
	assert.Equal(t, matrix.NewShape(3, 4), got.Shape())
	assert.Equal(t, make([]float64, 12), got.Values())
}

func TestBroadcast_Fails(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	for _, to := range []matrix.Shape{
		matrix.NewShape(3, 2), // rows not a multiple
		matrix.NewShape(2, 3), // columns not a multiple
		matrix.NewShape(4, 4), // neither dimension matches
		matrix.NewShape(1, 2), // shrinking
		matrix.NewShape(-2, 2),
	} {
		got, ok := m.Broadcast(to)
		assert.False(t, ok, "to %s", to)
		assert.Equal(t, matrix.Shape{}, got.Shape())
	}

	// 3x2 to 4x2: rows differ and 4 is not a multiple of 3
	zeros := matrix.Must(matrix.Zeros(matrix.NewShape(3, 2)))
	_, ok := zeros.Broadcast(matrix.NewShape(4, 2))
	assert.False(t, ok)

	// 2x2 to 3x4: neither dimension matches
	_, ok = m.Broadcast(matrix.NewShape(3, 4))
	assert.False(t, ok)

	one := mustRows(t, [][]float64{{1}})
	_, ok = one.Broadcast(matrix.NewShape(2, 2))
	assert.False(t, ok, "1x1 needs one matching dimension")
}

func TestBroadcast_ZeroSized(t *testing.T) {
	empty := mustNew(t, nil, 2, 0)

	got, ok := empty.Broadcast(matrix.NewShape(2, 0))
	require.True(t, ok)
	assert.Equal(t, matrix.NewShape(2, 0), got.Shape())

	_, ok = empty.Broadcast(matrix.NewShape(2, 3))
	assert.False(t, ok, "zero columns only divide zero columns")

	got, ok = empty.Broadcast(matrix.NewShape(6, 0))
	require.True(t, ok)
	assert.Empty(t, got.Values())

	noRows := mustNew(t, nil, 0, 3)
	got, ok = noRows.Broadcast(matrix.NewShape(0, 6))
	require.True(t, ok)
	assert.Equal(t, matrix.NewShape(0, 6), got.Shape())

	_, ok = noRows.Broadcast(matrix.NewShape(2, 3))
	assert.False(t, ok, "zero rows only divide zero rows")
}

func TestBroadcast_Kernels(t *testing.T) {
	assert.True(t, matrix.Divides(6, 3))
	assert.False(t, matrix.Divides(5, 3))
	assert.True(t, matrix.Divides(0, 0))
	assert.False(t, matrix.Divides(3, 0))
}

func TestBroadcast_OverflowingTarget(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	got, ok := m.Broadcast(matrix.NewShape(3, math.MaxInt/2))
	assert.False(t, ok)
	assert.Equal(t, matrix.Shape{}, got.Shape())
}

func TestBroadcast_KernelsRepeat(t *testing.T) {
	s := matrix.NewShape(2, 2)
	assert.Equal(t,
		[]float64{1, 1, 2, 2, 3, 3, 4, 4},
		matrix.RepeatColumns([]float64{1, 2, 3, 4}, s, matrix.NewShape(2, 4)))
	assert.Equal(t,
		[]float64{1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4},
		matrix.RepeatBuffer([]float64{1, 2, 3, 4}, s, matrix.NewShape(6, 2)))
	assert.Empty(t, matrix.RepeatBuffer(nil, matrix.NewShape(0, 2), matrix.NewShape(0, 2)))
}
