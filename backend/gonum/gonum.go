// SPDX-License-Identifier: MIT

// Package gonum implements backend.Backend on top of gonum.
//
// Kernel mapping:
//   - Sum/Add/Mul/Div/AddScalar/MulScalar → gonum.org/v1/gonum/floats.
//   - MatMul → blas64.Gemm (NoTrans, NoTrans); an external BLAS registered
//     with blas64.Use is picked up automatically.
//   - Transpose → mat.DenseCopyOf over an implicit mat.Transpose view.
//   - Uniform → stat/distuv.Uniform over a locked PCG source.
//
// Notes:
//   - gonum panics on zero-sized dense matrices, so empty shapes are
//     short-circuited before reaching blas64/mat.
package gonum

import (
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jknthn/matswift/backend"
)

const (
	name = "gonum"

	// pcgStream is the fixed second PCG word; the seed supplies the first.
	pcgStream uint64 = 0x9e3779b97f4a7c15
)

// Option configures a Backend.
type Option func(*Backend)

// WithSeed sets the seed of the uniform source (0 ⇒ backend.DefaultSeed).
func WithSeed(seed uint64) Option {
	return func(b *Backend) { b.seed = seed }
}

// Backend implements backend.Backend with gonum kernels.
type Backend struct {
	seed uint64
	dist distuv.Uniform
}

// Compile-time assertion.
var _ backend.Backend = (*Backend)(nil)

// New returns a gonum-backed backend.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, set := range opts {
		set(b)
	}
	b.dist = distuv.Uniform{
		Min: 0,
		Max: 1,
		Src: &lockedSource{src: rand.NewPCG(backend.SeedOrDefault(b.seed), pcgStream)},
	}

	return b
}

// Name implements backend.Backend.
func (*Backend) Name() string { return name }

// Sum implements backend.Backend.
func (*Backend) Sum(x []float64) float64 { return floats.Sum(x) }

// Add implements backend.Backend.
func (*Backend) Add(a, b []float64) []float64 {
	return floats.AddTo(make([]float64, len(a)), a, b)
}

// Mul implements backend.Backend.
func (*Backend) Mul(a, b []float64) []float64 {
	return floats.MulTo(make([]float64, len(a)), a, b)
}

// Div implements backend.Backend.
func (*Backend) Div(num, den []float64) []float64 {
	return floats.DivTo(make([]float64, len(num)), num, den)
}

// AddScalar implements backend.Backend.
func (*Backend) AddScalar(x []float64, s float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	floats.AddConst(s, out)
	return out
}

// MulScalar implements backend.Backend.
func (*Backend) MulScalar(x []float64, s float64) []float64 {
	return floats.ScaleTo(make([]float64, len(x)), s, x)
}

// MatMul implements backend.Backend.
func (*Backend) MatMul(a []float64, rowsA, colsA int, b []float64, colsB int) []float64 {
	out := make([]float64, rowsA*colsB)
	if rowsA == 0 || colsA == 0 || colsB == 0 {
		return out // empty product or empty inner sum: all zeros
	}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas64.General{Rows: rowsA, Cols: colsA, Data: a, Stride: colsA},
		blas64.General{Rows: colsA, Cols: colsB, Data: b, Stride: colsB},
		0,
		blas64.General{Rows: rowsA, Cols: colsB, Data: out, Stride: colsB},
	)
	return out
}

// Transpose implements backend.Backend.
func (*Backend) Transpose(x []float64, rows, cols int) []float64 {
	if rows == 0 || cols == 0 {
		return make([]float64, 0)
	}
	t := mat.DenseCopyOf(mat.NewDense(rows, cols, x).T())
	return t.RawMatrix().Data
}

// Uniform implements backend.Backend.
func (b *Backend) Uniform() float64 { return b.dist.Rand() }

// lockedSource serializes access to a rand.Source; distuv builds a fresh
// rand.Rand around Src on every draw, so the source itself must be safe.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.src.Uint64()
}
