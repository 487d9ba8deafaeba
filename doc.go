// Package matswift is a small, shape-aware 2-D matrix library: elementwise
// and scalar arithmetic with broadcasting, matrix products, transposition,
// row/column reductions and elementwise transforms.
//
// What you get:
//
//   - Immutable matrices: every operation returns a new value, so matrices
//     can be shared between goroutines freely.
//   - Broadcasting: a row or column vector combines with a full matrix
//     without manual tiling.
//   - Pluggable numeric kernels: a pure-Go reference backend, a gonum
//     (BLAS) backend and a go-highway SIMD backend, all interchangeable.
//   - Batching: apply one operation across many matrix pairs concurrently.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/        — Shape, Matrix, broadcasting, arithmetic, Dot, reductions
//	backend/       — the numeric kernel contract and shared seeding helpers
//	backend/naive/ — reference loops (default)
//	backend/gonum/ — gonum floats, blas64 and mat
//	backend/hwy/   — go-highway vec and matmul kernels
//	batch/         — errgroup fan-out and a persistent worker pool
//
// Quick example:
//
//	a := matrix.Must(matrix.FromRows([][]float64{{1, 1}, {1, 1}}))
//	r := matrix.Must(matrix.FromRows([][]float64{{1, 2}}))
//	sum, err := matrix.Add(a, r) // [[2 3] [2 3]]
//
//	g := matrix.Must(matrix.Random(matrix.NewShape(64, 64), 1,
//		matrix.WithBackend(gonum.New(gonum.WithSeed(42)))))
//	p, err := matrix.Dot(g, g.T())
package matswift
