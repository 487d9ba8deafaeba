// SPDX-License-Identifier: MIT

// Package hwy implements backend.Backend on go-highway's portable SIMD kernels.
//
// Kernel mapping:
//   - Sum → vec.BaseSum; Add/Mul/Div → vec.BaseAddTo/BaseMulTo/BaseDivTo.
//   - AddScalar → vec.BaseAddConst on a copy; MulScalar → vec.BaseScaleTo.
//   - MatMul → matmul.MatMulAutoFloat64 (size-based algorithm selection).
//   - Transpose → matmul.BaseTranspose2D (lane-blocked, scalar edges).
//   - Uniform → backend.LockedUniform.
//
// The Base* kernels are written against hwy primitives and select the widest
// vector width available at run time; they fall back to scalar lanes elsewhere.
package hwy

import (
	"github.com/ajroetker/go-highway/hwy/contrib/matmul"
	"github.com/ajroetker/go-highway/hwy/contrib/vec"

	"github.com/jknthn/matswift/backend"
)

const name = "hwy"

// Option configures a Backend.
type Option func(*Backend)

// WithSeed sets the seed of the uniform source (0 ⇒ backend.DefaultSeed).
func WithSeed(seed uint64) Option {
	return func(b *Backend) { b.seed = seed }
}

// Backend implements backend.Backend with go-highway kernels.
type Backend struct {
	seed uint64
	rng  *backend.LockedUniform
}

// Compile-time assertion.
var _ backend.Backend = (*Backend)(nil)

// New returns a SIMD backend.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, set := range opts {
		set(b)
	}
	b.rng = backend.NewLockedUniform(b.seed)

	return b
}

// Name implements backend.Backend.
func (*Backend) Name() string { return name }

// Sum implements backend.Backend.
func (*Backend) Sum(x []float64) float64 { return vec.BaseSum(x) }

// Add implements backend.Backend.
func (*Backend) Add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	vec.BaseAddTo(out, a, b)
	return out
}

// Mul implements backend.Backend.
func (*Backend) Mul(a, b []float64) []float64 {
	out := make([]float64, len(a))
	vec.BaseMulTo(out, a, b)
	return out
}

// Div implements backend.Backend.
func (*Backend) Div(num, den []float64) []float64 {
	out := make([]float64, len(num))
	vec.BaseDivTo(out, num, den)
	return out
}

// AddScalar implements backend.Backend.
func (*Backend) AddScalar(x []float64, s float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	vec.BaseAddConst(s, out)
	return out
}

// MulScalar implements backend.Backend.
func (*Backend) MulScalar(x []float64, s float64) []float64 {
	out := make([]float64, len(x))
	vec.BaseScaleTo(out, s, x)
	return out
}

// MatMul implements backend.Backend.
func (*Backend) MatMul(a []float64, rowsA, colsA int, b []float64, colsB int) []float64 {
	out := make([]float64, rowsA*colsB)
	if rowsA == 0 || colsA == 0 || colsB == 0 {
		return out
	}
	// matmul takes (m, n, k) = (rows of A, cols of B, inner).
	matmul.MatMulAutoFloat64(a, b, out, rowsA, colsB, colsA)
	return out
}

// Transpose implements backend.Backend.
func (*Backend) Transpose(x []float64, rows, cols int) []float64 {
	out := make([]float64, rows*cols)
	if len(out) == 0 {
		return out
	}
	matmul.BaseTranspose2D(x, rows, cols, out)
	return out
}

// Uniform implements backend.Backend.
func (b *Backend) Uniform() float64 { return b.rng.Float64() }
