// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"sync"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/jknthn/matswift/matrix"
)

// Pool is a persistent set of workers for repeated batch calls.
// Spawning happens once in NewPool; Map reuses the workers. A Pool is safe
// for concurrent use; Close waits for in-flight Map calls to finish.
type Pool struct {
	mu     sync.RWMutex
	wp     *workerpool.Pool
	closed bool
}

// NewPool starts a pool with the given number of workers.
// workers <= 0 selects runtime.GOMAXPROCS(0).
func NewPool(workers int) *Pool {
	return &Pool{wp: workerpool.New(workers)}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.wp.NumWorkers() }

// Map computes op(lhs[i], rhs[i]) for every i on the pool's workers.
// Items are claimed one at a time, so uneven costs (mixed Dot sizes) still
// balance.
//
// Unlike Apply, every item runs: individual failures are tagged with their
// index and combined with errors.Join. Items not started when ctx is
// cancelled are skipped and ctx.Err() is returned.
//
// Errors:
//   - ErrPoolClosed after Close; ErrNilOp; ErrLengthMismatch.
func (p *Pool) Map(ctx context.Context, op Op, lhs, rhs []matrix.Matrix) ([]matrix.Matrix, error) {
	if op == nil {
		return nil, ErrNilOp
	}
	if len(lhs) != len(rhs) {
		return nil, ErrLengthMismatch
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return nil, ErrPoolClosed
	}

	out := make([]matrix.Matrix, len(lhs))
	errs := make([]error, len(lhs))
	p.wp.ParallelForAtomic(len(lhs), func(i int) {
		if ctx.Err() != nil {
			return
		}
		m, err := op(lhs[i], rhs[i])
		if err != nil {
			errs[i] = itemErrorf(opMap, i, err)
			return
		}
		out[i] = m
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// Close stops the workers. It is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.wp.Close()
}
