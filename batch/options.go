// SPDX-License-Identifier: MIT

package batch

import "runtime"

// Panic messages for invalid option values.
const (
	panicBadLimit = "batch: WithLimit(n) requires n > 0"
)

// Option configures Apply and ApplyOne.
type Option func(*Options)

// Options holds fan-out settings. Fields are unexported; use Option.
type Options struct {
	limit int
}

// WithLimit caps the number of operations running at once.
// The default is runtime.GOMAXPROCS(0). Panics if n <= 0.
func WithLimit(n int) Option {
	if n <= 0 {
		panic(panicBadLimit)
	}
	return func(o *Options) { o.limit = n }
}

// gatherOptions applies opts over the defaults. Last writer wins.
func gatherOptions(opts ...Option) Options {
	o := Options{limit: runtime.GOMAXPROCS(0)}
	for _, set := range opts {
		set(&o)
	}
	return o
}
