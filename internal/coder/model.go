package coder

import "fmt"

// Scheme selects how a Model's cumulative-frequency table is kept in sync
// between encoder and decoder. The two adaptive schemes are not
// interoperable — a stream encoded under one cannot be decoded under the
// other (spec §9, Open Questions) — and the wire format carries no flag
// to distinguish them; callers pick a Scheme and must agree on it
// out-of-band (see SPEC_FULL.md).
type Scheme int

const (
	// SchemeIncremental updates C after every symbol (spec §4.2).
	SchemeIncremental Scheme = iota
	// SchemeBlockwise recomputes C as a prefix sum every BlockSize
	// symbols (spec §4.2).
	SchemeBlockwise
)

// BlockSize is B in spec §4.2 and §9: the blockwise scheme's fixed
// recompute interval. It is part of the wire contract for SchemeBlockwise
// streams, exactly like Scheme itself.
const BlockSize = 128

// String implements fmt.Stringer for diagnostic output, returning the
// same name ParseScheme accepts.
func (s Scheme) String() string {
	switch s {
	case SchemeIncremental:
		return "incremental"
	case SchemeBlockwise:
		return "blockwise"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme parses the --scheme flag value used by cmd/arcoder.
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case "incremental":
		return SchemeIncremental, nil
	case "blockwise":
		return SchemeBlockwise, nil
	default:
		return 0, fmt.Errorf("%w: unknown scheme %q (want incremental or blockwise)", ErrBadArgument, s)
	}
}

// Model is the narrow capability set spec §9's design notes call for:
// lookup, update, and total, so the incremental, blockwise, and static
// policies are interchangeable without the encoder/decoder core caring
// which one they're driving.
type Model interface {
	// Size returns the alphabet size M.
	Size() int
	// Lookup returns (C[s], C[s+1], C[M]) for symbol s.
	Lookup(s int) (lo, hi, total uint32)
	// Total returns C[M], the current cumulative total T.
	Total() uint32
	// Update advances the model's state after symbol s has been
	// coded. A no-op for the static model.
	Update(s int)
	// ScaleTotal returns the divisor the coder core uses to compute
	// the interval scale factor at step (the number of symbols coded
	// before this one, 0-indexed). For the adaptive schemes this
	// tracks the step count directly — step + Size() + 1 — rather
	// than the model's own (possibly stale) cumulative total: the
	// original source's encoder.rs/compressor.rs and decoder.rs/
	// decompressor.rs all advance this divisor by exactly one every
	// step regardless of scheme, even blockwise, whose C array only
	// updates at block boundaries. The static model instead returns
	// its fixed Total(), matching the original's non-adaptive path,
	// which omits the scale multiplication entirely and so only
	// agrees with the spec's "scale = floor((2^32-1)/T)" formula when
	// T is 2^32-1 (scale = 1).
	ScaleTotal(step int) uint32
}

// NewModel constructs the initial model for the given alphabet size and
// scheme: C = [0, 1, 2, ..., M], T = M (spec §3, "Lifecycle").
func NewModel(alphabetSize int, scheme Scheme) (Model, error) {
	if alphabetSize < 1 || alphabetSize > 256 {
		return nil, fmt.Errorf("%w: alphabet size %d outside [1, 256]", ErrBadArgument, alphabetSize)
	}
	switch scheme {
	case SchemeIncremental:
		return newIncrementalModel(alphabetSize), nil
	case SchemeBlockwise:
		return newBlockModel(alphabetSize), nil
	default:
		return nil, fmt.Errorf("%w: unknown scheme %d", ErrBadArgument, int(scheme))
	}
}

func uniformCumulative(m int) []uint32 {
	c := make([]uint32, m+1)
	for i := range c {
		c[i] = uint32(i)
	}
	return c
}

// incrementalModel implements the incremental update policy of spec §4.2:
// every emitted symbol bumps C[s+1..M] by one.
type incrementalModel struct {
	m int
	c []uint32
}

func newIncrementalModel(m int) *incrementalModel {
	return &incrementalModel{m: m, c: uniformCumulative(m)}
}

func (mm *incrementalModel) Size() int { return mm.m }

func (mm *incrementalModel) Lookup(s int) (lo, hi, total uint32) {
	return mm.c[s], mm.c[s+1], mm.c[mm.m]
}

func (mm *incrementalModel) Total() uint32 { return mm.c[mm.m] }

func (mm *incrementalModel) Update(s int) {
	for i := s + 1; i <= mm.m; i++ {
		mm.c[i]++
	}
}

func (mm *incrementalModel) ScaleTotal(step int) uint32 {
	return uint32(step) + uint32(mm.m) + 1
}

// blockModel implements the blockwise update policy of spec §4.2: a
// separate occurrence table is bumped every symbol, and C is recomputed
// as its prefix sum every BlockSize symbols.
type blockModel struct {
	m   int
	c   []uint32
	occ []uint32
	k   int
}

func newBlockModel(m int) *blockModel {
	occ := make([]uint32, m)
	for i := range occ {
		occ[i] = 1
	}
	return &blockModel{m: m, c: uniformCumulative(m), occ: occ}
}

func (mm *blockModel) Size() int { return mm.m }

func (mm *blockModel) Lookup(s int) (lo, hi, total uint32) {
	return mm.c[s], mm.c[s+1], mm.c[mm.m]
}

func (mm *blockModel) Total() uint32 { return mm.c[mm.m] }

func (mm *blockModel) Update(s int) {
	mm.occ[s]++
	mm.k++
	if mm.k == BlockSize {
		var total uint32
		for i, o := range mm.occ {
			total += o
			mm.c[i+1] = total
		}
		mm.k = 0
	}
}

// ScaleTotal matches incrementalModel's: the scale divisor advances one
// per step regardless of the blockwise C array's own recompute schedule
// (original_source/src/compressor.rs's cumulative_distribution_sum is
// letter_index + alphabet_len + 1 unconditionally, never the stale C[M]
// between block boundaries).
func (mm *blockModel) ScaleTotal(step int) uint32 {
	return uint32(step) + uint32(mm.m) + 1
}

// staticModel implements a fixed, non-adaptive cumulative distribution
// (SPEC_FULL.md "Supplemented features" §1, spec §8 scenario 3): Update
// is a no-op, so encoder and decoder both see the same C at every step
// without any per-symbol bookkeeping.
type staticModel struct {
	m int
	c []uint32
}

// NewStaticModel builds a Model over a caller-supplied cumulative
// distribution c, where len(c) == m+1, c[0] == 0, c is non-decreasing,
// and c[m] == the fixed total T (spec §3's invariants on C, minus the
// requirement that it change over time).
func NewStaticModel(c []uint32) (Model, error) {
	if len(c) < 2 {
		return nil, fmt.Errorf("%w: cumulative distribution too short", ErrBadArgument)
	}
	if c[0] != 0 {
		return nil, fmt.Errorf("%w: cumulative distribution must start at 0", ErrBadArgument)
	}
	for i := 1; i < len(c); i++ {
		if c[i] < c[i-1] {
			return nil, fmt.Errorf("%w: cumulative distribution must be non-decreasing", ErrBadArgument)
		}
	}
	m := len(c) - 1
	if m < 1 || m > 256 {
		return nil, fmt.Errorf("%w: alphabet size %d outside [1, 256]", ErrBadArgument, m)
	}
	cc := make([]uint32, len(c))
	copy(cc, c)
	return &staticModel{m: m, c: cc}, nil
}

func (mm *staticModel) Size() int { return mm.m }

func (mm *staticModel) Lookup(s int) (lo, hi, total uint32) {
	return mm.c[s], mm.c[s+1], mm.c[mm.m]
}

func (mm *staticModel) Total() uint32 { return mm.c[mm.m] }

func (mm *staticModel) Update(int) {}

// ScaleTotal returns the fixed total T unchanged: the static model never
// advances, so there is no step-dependent divisor to track.
func (mm *staticModel) ScaleTotal(int) uint32 { return mm.c[mm.m] }
