// SPDX-License-Identifier: MIT

package backend

import (
	"sync"

	"golang.org/x/exp/rand"
)

// DefaultSeed is the seed used when a caller passes seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed uint64 = 1

// SeedOrDefault applies the seed policy shared by every backend:
// seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func SeedOrDefault(seed uint64) uint64 {
	if seed == 0 {
		return DefaultSeed
	}
	return seed
}

// LockedUniform is a goroutine-safe uniform [0,1) source.
// rand.Rand is NOT goroutine-safe, so every draw is serialized by mu.
type LockedUniform struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedUniform returns a LockedUniform seeded under the SeedOrDefault policy.
// Complexity: O(1).
func NewLockedUniform(seed uint64) *LockedUniform {
	return &LockedUniform{rng: rand.New(rand.NewSource(SeedOrDefault(seed)))}
}

// Float64 returns the next value in [0, 1).
func (u *LockedUniform) Float64() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.rng.Float64()
}
