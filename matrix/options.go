// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - the documented default backend,
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions helper (internal).
//
// Notes:
//   - A Matrix records the backend it was built with. Binary operations run
//     on the left operand's backend and the result inherits it.
//   - The zero Matrix has no backend recorded and uses DefaultBackend.
package matrix

import (
	"github.com/jknthn/matswift/backend"
	"github.com/jknthn/matswift/backend/naive"
)

// Panic messages for invalid option values.
const (
	panicNilBackend = "matrix: WithBackend(nil) is not allowed"
)

// defaultBackend is shared by every matrix built without WithBackend.
// backend.Backend implementations are safe for concurrent use.
var defaultBackend backend.Backend = naive.New()

// DefaultBackend returns the backend used when no WithBackend option is given:
// the naive reference backend seeded with backend.DefaultSeed.
func DefaultBackend() backend.Backend { return defaultBackend }

// Option mutates Options during construction.
type Option func(*Options)

// Options holds construction settings. Fields are unexported; use Option.
type Options struct {
	backend backend.Backend
}

// WithBackend selects the numeric backend for the constructed matrix and for
// every result derived from it as a left operand.
// Panics if b is nil.
func WithBackend(b backend.Backend) Option {
	if b == nil {
		panic(panicNilBackend)
	}
	return func(o *Options) { o.backend = b }
}

// defaultOptions returns Options populated with package defaults.
func defaultOptions() Options {
	return Options{backend: defaultBackend}
}

// gatherOptions applies opts over the defaults. Last writer wins.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, set := range opts {
		set(&o)
	}
	return o
}
