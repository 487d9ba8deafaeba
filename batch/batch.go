// SPDX-License-Identifier: MIT

// Package batch applies one matrix operation to many operand pairs
// concurrently.
//
// Matrices are immutable, so independent operations share no state and can
// run in parallel without coordination. Two entry points are provided:
//
//   - Apply / ApplyOne: a bounded errgroup fan-out per call. The first
//     failure cancels the remaining work and is returned.
//   - Pool: a persistent go-highway worker pool reused across calls. Every
//     item runs; failures are joined.
//
// Results are always in input order.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jknthn/matswift/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opApply    = "Apply"
	opApplyOne = "ApplyOne"
	opMap      = "Map"
)

// Op is a binary matrix operation such as matrix.Add or matrix.Dot.
type Op func(lhs, rhs matrix.Matrix) (matrix.Matrix, error)

// Adapters for the matrix package operations.
var (
	Add Op = matrix.Add
	Sub Op = matrix.Sub
	Mul Op = matrix.Mul
	Div Op = matrix.Div
	Dot Op = matrix.Dot
)

// Apply computes op(lhs[i], rhs[i]) for every i with at most WithLimit
// operations in flight.
//
// Errors:
//   - ErrNilOp if op is nil; ErrLengthMismatch if len(lhs) != len(rhs).
//   - The first item error, tagged with its index. Remaining items are
//     skipped once it occurs.
//   - ctx.Err() if ctx is cancelled before all items complete.
func Apply(ctx context.Context, op Op, lhs, rhs []matrix.Matrix, opts ...Option) ([]matrix.Matrix, error) {
	if op == nil {
		return nil, ErrNilOp
	}
	if len(lhs) != len(rhs) {
		return nil, ErrLengthMismatch
	}
	return fanOut(ctx, opApply, len(lhs), func(i int) (matrix.Matrix, error) {
		return op(lhs[i], rhs[i])
	}, gatherOptions(opts...))
}

// ApplyOne computes op(m, others[i]) for every i. Errors follow Apply.
func ApplyOne(ctx context.Context, op Op, m matrix.Matrix, others []matrix.Matrix, opts ...Option) ([]matrix.Matrix, error) {
	if op == nil {
		return nil, ErrNilOp
	}
	return fanOut(ctx, opApplyOne, len(others), func(i int) (matrix.Matrix, error) {
		return op(m, others[i])
	}, gatherOptions(opts...))
}

// fanOut runs fn for 0..n-1 on a bounded errgroup and collects results by
// index.
func fanOut(ctx context.Context, tag string, n int, fn func(i int) (matrix.Matrix, error), o Options) ([]matrix.Matrix, error) {
	out := make([]matrix.Matrix, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.limit)

	for i := 0; i < n; i++ {
		// Stop scheduling once the group or the caller has given up.
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := fn(i)
			if err != nil {
				return itemErrorf(tag, i, err)
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation observed after the last item is still reported.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
