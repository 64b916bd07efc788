package coder

import "fmt"

// Decoder drives the symmetric interval search described in spec §4.4.
// Like Encoder, it is single-shot: construct it against a payload and a
// model, then call Decode exactly symbolCount times.
type Decoder struct {
	model     Model
	b, l, v   uint32
	t         int
	data      []byte
	bitLength int
	step      int // symbols decoded so far, for Model.ScaleTotal
}

// NewDecoder constructs a decoder over data, the exact bit_length
// produced by Encoder.Finish, and model. b=0, l=2^32-1; v is loaded from
// the first up-to-4 bytes of data, big-endian, zero-padded if data is
// shorter; t is the index of the most-recently-consumed bit of data
// (spec §4.4, "Initialization").
func NewDecoder(data []byte, bitLength int, model Model) *Decoder {
	var v uint32
	for i := 0; i < len(data) && i < 4; i++ {
		v += uint32(data[i]) << uint(8*(3-i))
	}
	t := bitLength - 1
	if bitLength >= 32 {
		t = 31
	}
	return &Decoder{
		model:     model,
		b:         0,
		l:         ^uint32(0),
		v:         v,
		t:         t,
		data:      data,
		bitLength: bitLength,
	}
}

// cumAt returns C[s] for the decoder's current model.
func (d *Decoder) cumAt(s int) uint32 {
	lo, _, _ := d.model.Lookup(s)
	return lo
}

// Decode searches for the symbol whose subinterval contains v (spec §4.4
// step 1), commits the interval and advances the model (step 2), then
// renormalizes (step 3). It returns ErrCorruptStream if the search cannot
// accept any candidate — only possible on a stream this package did not
// produce. The interval-scale divisor comes from Model.ScaleTotal(step),
// not Model.Total(), mirroring Encoder.Encode so the two stay in lock
// step (see Model.ScaleTotal's doc comment).
func (d *Decoder) Decode() (int, error) {
	m := d.model.Size()
	cm := d.model.ScaleTotal(d.step)
	if cm == 0 {
		return 0, fmt.Errorf("%w: model scale total is zero", ErrInternalInvariant)
	}
	scale := uint64(^uint32(0)) / uint64(cm)

	s := m - 1
	x := d.b + uint32((uint64(d.l)*uint64(d.cumAt(s))*scale)>>32)
	y := d.b + d.l

	for !d.accepts(x, y) {
		s--
		if s < 0 {
			return 0, fmt.Errorf("%w: interval search exhausted the alphabet", ErrCorruptStream)
		}
		y = x
		x = d.b + uint32((uint64(d.l)*uint64(d.cumAt(s))*scale)>>32)
	}

	// y and x are positions on the 32-bit ring, not plain integers: a
	// legitimate accepted interval can have y < x when [x, y) wraps past
	// 2^32 (spec §9, "Interval-search predicate"). Only a literally empty
	// interval (y == x) is corrupt; original_source/src/decoder.rs's
	// adaptive_interval_selection has no such check at all and relies on
	// wrapping subtraction for *l.
	if y == x {
		return 0, fmt.Errorf("%w: interval search produced an empty interval", ErrCorruptStream)
	}

	d.b = x
	d.l = y - d.b

	d.model.Update(s)
	d.step++

	if d.l <= top {
		if err := d.renorm(); err != nil {
			return 0, err
		}
	}

	return s, nil
}

// accepts implements the three-case modular-comparison predicate of
// spec §4.4 step 1, deciding whether v lies in [x, y) under arithmetic
// that may wrap the 32-bit boundary.
func (d *Decoder) accepts(x, y uint32) bool {
	switch {
	case d.v >= d.b:
		return x >= d.b && x <= d.v
	case x >= d.b:
		return y > d.v
	default:
		return x < d.v
	}
}

// renorm shifts b, v, and l left while l's top bit is zero, pulling in
// fresh bits from data as they become available (spec §4.4 step 3).
func (d *Decoder) renorm() error {
	for d.l < top {
		d.b <<= 1
		d.v <<= 1
		d.t++
		if d.t < d.bitLength {
			if d.t/8 >= len(d.data) {
				return fmt.Errorf("%w: bit cursor ran past the payload", ErrCorruptStream)
			}
			d.v |= bitAt(d.data, d.t)
		}
		d.l <<= 1
	}
	return nil
}

// Decode runs the decoder core end-to-end, per spec §6's core API:
// decode(bit_length, symbol_count, payload, alphabet_size) -> bytes. It
// constructs a fresh Model for the given scheme, matching the encoder's
// single-shot lifecycle.
func Decode(bitLength, symbolCount int, payload []byte, alphabetSize int, scheme Scheme) ([]byte, error) {
	model, err := NewModel(alphabetSize, scheme)
	if err != nil {
		return nil, err
	}
	return DecodeWithModel(bitLength, symbolCount, payload, model)
}

// DecodeWithModel runs the decoder core using a caller-supplied Model
// (e.g. a static model, spec §8 scenario 3).
func DecodeWithModel(bitLength, symbolCount int, payload []byte, model Model) ([]byte, error) {
	if bitLength < 0 {
		return nil, fmt.Errorf("%w: negative bit length %d", ErrBadArgument, bitLength)
	}
	if symbolCount < 0 {
		return nil, fmt.Errorf("%w: negative symbol count %d", ErrBadArgument, symbolCount)
	}
	if need := (bitLength + 7) / 8; len(payload) < need {
		return nil, fmt.Errorf("%w: payload has %d bytes, need at least %d for bit_length %d",
			ErrBadArgument, len(payload), need, bitLength)
	}

	dec := NewDecoder(payload, bitLength, model)
	out := make([]byte, symbolCount)
	for i := 0; i < symbolCount; i++ {
		s, err := dec.Decode()
		if err != nil {
			return nil, fmt.Errorf("decoding symbol %d: %w", i, err)
		}
		out[i] = byte(s)
	}
	return out, nil
}
