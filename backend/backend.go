// SPDX-License-Identifier: MIT

// Package backend defines the numeric kernel contract consumed by package matrix.
//
// Purpose:
//   - Keep broadcasting and shape dispatch independent of the math library that
//     performs the raw vector and GEMM work.
//   - Give every implementation the same buffer contract so results are
//     interchangeable across backends.
//
// Implementations:
//   - backend/naive: plain Go loops (reference; default in package matrix).
//   - backend/gonum: gonum floats + blas64 + mat.
//   - backend/hwy:   go-highway SIMD kernels (vec, matmul).
//
// Contract (all implementations):
//   - Inputs are never mutated; every returned slice is freshly allocated.
//   - Callers guarantee well-formed lengths (equal lengths for elementwise
//     kernels, rows*cols for matrix kernels). Package matrix validates shapes
//     before any kernel call, so backends do not re-check.
//   - Zero-length inputs yield zero-length (or zero-filled) outputs.
//   - All methods are safe for concurrent use with independent buffers.
package backend

// Backend is the capability set a numeric library must provide:
// elementwise vector kernels, scalar kernels, dense GEMM, transpose and a
// bounded uniform source.
type Backend interface {
	// Name returns a short, stable identifier (e.g. "naive", "gonum").
	Name() string

	// Sum returns Σ x[i]; 0 for an empty slice.
	Sum(x []float64) float64

	// Add returns a[i] + b[i]; len(a) == len(b).
	Add(a, b []float64) []float64

	// Mul returns a[i] * b[i]; len(a) == len(b).
	Mul(a, b []float64) []float64

	// Div returns num[i] / den[i]; len(num) == len(den).
	Div(num, den []float64) []float64

	// AddScalar returns x[i] + s.
	AddScalar(x []float64, s float64) []float64

	// MulScalar returns x[i] * s.
	MulScalar(x []float64, s float64) []float64

	// MatMul returns the row-major rowsA×colsB product of a (rowsA×colsA) and
	// b (colsA×colsB). No transpose flags.
	MatMul(a []float64, rowsA, colsA int, b []float64, colsB int) []float64

	// Transpose returns the row-major cols×rows transpose of x (rows×cols).
	Transpose(x []float64, rows, cols int) []float64

	// Uniform returns a value drawn uniformly from [0, 1).
	Uniform() float64
}
