// SPDX-License-Identifier: MIT
// Package batch: sentinel error set.
// Item failures are returned wrapped with their index; callers match the
// underlying matrix sentinel with errors.Is.

package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when paired inputs differ in length.
	ErrLengthMismatch = errors.New("batch: input lengths differ")

	// ErrNilOp is returned when the operation is nil.
	ErrNilOp = errors.New("batch: nil operation")

	// ErrPoolClosed is returned by Pool.Map after Close.
	ErrPoolClosed = errors.New("batch: pool is closed")
)

// itemErrorf tags err with the index of the failing item.
func itemErrorf(tag string, i int, err error) error {
	return fmt.Errorf("%s: item %d: %w", tag, i, err)
}
