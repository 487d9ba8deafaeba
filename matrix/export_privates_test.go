// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private kernels and the options snapshot.
// Compiled only with the package's tests.

// Divides exposes divides.
func Divides(n, d int) bool { return divides(n, d) }

// RepeatColumns exposes ewRepeatColumns.
func RepeatColumns(values []float64, s, to Shape) []float64 {
	return ewRepeatColumns(values, s, to)
}

// RepeatBuffer exposes ewRepeatBuffer.
func RepeatBuffer(values []float64, s, to Shape) []float64 {
	return ewRepeatBuffer(values, s, to)
}

// GatheredBackendName reports the backend gatherOptions resolves for opts.
func GatheredBackendName(opts ...Option) string {
	return gatherOptions(opts...).backend.Name()
}
