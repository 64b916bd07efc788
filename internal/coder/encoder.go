package coder

import "fmt"

// top is 2^31, the interval-length threshold renormalization keeps l
// at or above (spec §3, §4.3). It is also HALF in the original source's
// naming.
const top uint32 = 1 << 31

// Encoder drives the 32-bit interval arithmetic described in spec §4.3.
// A single Encoder instance is single-shot: construct it, feed it every
// symbol in order, then call Finish once. It owns no resources beyond its
// registers and output buffer, and is not safe for concurrent use.
type Encoder struct {
	model Model
	b     uint32 // interval base
	l     uint32 // interval length
	buf   *bitbuf
	step  int // symbols coded so far, for Model.ScaleTotal
	done  bool
}

// NewEncoder constructs an encoder over the given model, with b=0,
// l=2^32-1, t=8, D=[0x00] (spec §4.3, "Initialization").
func NewEncoder(model Model) *Encoder {
	return &Encoder{
		model: model,
		b:     0,
		l:     ^uint32(0),
		buf:   newBitbuf(),
	}
}

// Encode codes one symbol, updating the interval, propagating any carry,
// renormalizing, and advancing the model — in that order, per spec §4.3.
// The interval-scale divisor comes from Model.ScaleTotal(step), not
// Model.Total(), so it advances by exactly one every step regardless of
// scheme (see ScaleTotal's doc comment).
func (e *Encoder) Encode(s int) error {
	if e.done {
		return fmt.Errorf("%w: Encode called after Finish", ErrInternalInvariant)
	}
	m := e.model.Size()
	if s < 0 || s >= m {
		return fmt.Errorf("%w: symbol %d outside [0, %d)", ErrBadArgument, s, m)
	}

	cm := e.model.ScaleTotal(e.step)
	if cm == 0 {
		return fmt.Errorf("%w: model scale total is zero", ErrInternalInvariant)
	}
	scale := uint64(^uint32(0)) / uint64(cm)

	lo, hi, _ := e.model.Lookup(s)

	bBefore := e.b
	var y uint32
	if s == m-1 {
		y = e.b + e.l
	} else {
		y = e.b + uint32((uint64(e.l)*uint64(hi)*scale)>>32)
	}
	e.b += uint32((uint64(e.l) * uint64(lo) * scale) >> 32)
	e.l = y - e.b

	if e.b < bBefore {
		if err := e.buf.propagateCarry(); err != nil {
			return err
		}
	}

	if e.l == 0 {
		return fmt.Errorf("%w: interval collapsed to zero length", ErrInternalInvariant)
	}

	if e.l <= top {
		e.renorm()
	}

	e.model.Update(s)
	e.step++
	return nil
}

// renorm shifts l (and b) left while l's top bit is zero, emitting the
// high bit of b each time, per spec §4.3 step 3.
func (e *Encoder) renorm() {
	for e.l < top {
		e.buf.ensureRoom()
		e.buf.t--
		e.l <<= 1
		if e.b >= top {
			e.buf.d[len(e.buf.d)-1] |= 1 << uint(e.buf.t)
		}
		e.b <<= 1
	}
}

// Finish performs code-value selection (spec §4.3, "Termination") and
// returns the exact bit length of the valid prefix of the payload,
// together with the payload itself. Finish must be called exactly once,
// after every symbol has been passed to Encode.
func (e *Encoder) Finish() (bitLength int, payload []byte, err error) {
	if e.done {
		return 0, nil, fmt.Errorf("%w: Finish called more than once", ErrInternalInvariant)
	}
	e.done = true

	if e.b < top {
		e.buf.ensureRoom()
		e.buf.t--
		e.buf.d[len(e.buf.d)-1] |= 1 << uint(e.buf.t)
	} else {
		if err := e.buf.propagateCarry(); err != nil {
			return 0, nil, err
		}
		e.buf.ensureRoom()
		e.buf.t--
		// implicit final bit is 0 — nothing to set.
	}

	if e.buf.t < 0 || e.buf.t > 8 {
		return 0, nil, fmt.Errorf("%w: bit cursor %d outside [0, 8]", ErrInternalInvariant, e.buf.t)
	}

	return e.buf.bitLength(), e.buf.d, nil
}

// Encode runs the encoder core end-to-end over symbols, per spec §6's
// core API: encode(input, alphabet_size) -> (bit_length, payload). It
// constructs a fresh Model for the given scheme, so it is always a
// single-shot, from-scratch encode (spec §3, "Lifecycle").
func Encode(symbols []byte, alphabetSize int, scheme Scheme) (bitLength int, payload []byte, err error) {
	model, err := NewModel(alphabetSize, scheme)
	if err != nil {
		return 0, nil, err
	}
	return EncodeWithModel(symbols, model)
}

// EncodeWithModel runs the encoder core over symbols using a
// caller-supplied Model (e.g. a static model, spec §8 scenario 3).
func EncodeWithModel(symbols []byte, model Model) (bitLength int, payload []byte, err error) {
	enc := NewEncoder(model)
	for i, s := range symbols {
		if err := enc.Encode(int(s)); err != nil {
			return 0, nil, fmt.Errorf("encoding symbol %d: %w", i, err)
		}
	}
	return enc.Finish()
}
