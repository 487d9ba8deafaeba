// SPDX-License-Identifier: MIT

// Package naive is the reference numeric backend: plain, deterministic Go loops.
//
// It is the default backend of package matrix and the baseline every other
// backend is checked against in tests.
//
// Determinism:
//   - Fixed loop orders (flat 0..n-1; i→k→j for GEMM).
//   - Uniform draws come from a seeded, locked PCG stream (see backend.LockedUniform).
//
// Complexity quicksheet:
//   - Sum/Add/Mul/Div/AddScalar/MulScalar: O(n).
//   - MatMul: O(rowsA*colsA*colsB). Transpose: O(rows*cols).
package naive

import "github.com/jknthn/matswift/backend"

const name = "naive"

// Option configures a Backend.
type Option func(*Backend)

// WithSeed sets the seed of the uniform source (0 ⇒ backend.DefaultSeed).
func WithSeed(seed uint64) Option {
	return func(b *Backend) { b.seed = seed }
}

// Backend implements backend.Backend with straightforward loops.
type Backend struct {
	seed uint64
	rng  *backend.LockedUniform
}

// Compile-time assertion.
var _ backend.Backend = (*Backend)(nil)

// New returns a reference backend.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, set := range opts {
		set(b) // last-writer-wins
	}
	b.rng = backend.NewLockedUniform(b.seed)

	return b
}

// Name implements backend.Backend.
func (*Backend) Name() string { return name }

// Sum implements backend.Backend.
func (*Backend) Sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s
}

// Add implements backend.Backend.
func (*Backend) Add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

// Mul implements backend.Backend.
func (*Backend) Mul(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		out[i] = a[i] * b[i]
	}
	return out
}

// Div implements backend.Backend.
func (*Backend) Div(num, den []float64) []float64 {
	out := make([]float64, len(num))
	for i := range out {
		out[i] = num[i] / den[i]
	}
	return out
}

// AddScalar implements backend.Backend.
func (*Backend) AddScalar(x []float64, s float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v + s
	}
	return out
}

// MulScalar implements backend.Backend.
func (*Backend) MulScalar(x []float64, s float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * s
	}
	return out
}

// MatMul implements backend.Backend.
// Loop order i→k→j walks both b and out with unit stride.
func (*Backend) MatMul(a []float64, rowsA, colsA int, b []float64, colsB int) []float64 {
	out := make([]float64, rowsA*colsB)
	for i := 0; i < rowsA; i++ {
		rowA := a[i*colsA : (i+1)*colsA]
		rowOut := out[i*colsB : (i+1)*colsB]
		for k, aik := range rowA {
			rowB := b[k*colsB : (k+1)*colsB]
			for j, bkj := range rowB {
				rowOut[j] += aik * bkj
			}
		}
	}
	return out
}

// Transpose implements backend.Backend.
func (*Backend) Transpose(x []float64, rows, cols int) []float64 {
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = x[i*cols+j]
		}
	}
	return out
}

// Uniform implements backend.Backend.
func (b *Backend) Uniform() float64 { return b.rng.Float64() }
