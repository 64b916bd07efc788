// Package coder implements the adaptive arithmetic coder's numeric core:
// the cumulative-frequency model, the bit buffer with carry propagation,
// and the symmetric encoder/decoder register arithmetic.
package coder

import "errors"

// Sentinel errors distinguishing the three kinds of failure the core must
// surface to callers (see spec §7).
var (
	// ErrBadArgument covers out-of-range alphabet sizes, symbols outside
	// [0, M), and payloads too short to hold the claimed bit length.
	ErrBadArgument = errors.New("coder: bad argument")

	// ErrInternalInvariant covers conditions the core asserts can never
	// happen on well-formed input: a bit cursor outside [0, 8], or an
	// interval collapsing to zero length before termination.
	ErrInternalInvariant = errors.New("coder: internal invariant violated")

	// ErrCorruptStream covers a decoder interval search that fails to
	// accept any candidate symbol — only possible on a stream that was
	// not produced by this package's encoder.
	ErrCorruptStream = errors.New("coder: corrupt stream")
)
