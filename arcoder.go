// Package arcoder implements an adaptive binary... in fact M-ary
// arithmetic coder over a byte alphabet of size up to 256. It produces a
// compressed bitstream from an input byte sequence and reconstructs it
// bit-for-bit, without ever transmitting the model: encoder and decoder
// stay synchronized by updating identical cumulative-frequency tables in
// lock step.
//
// Basic usage for a one-shot in-memory round trip:
//
//	bitLength, payload, err := arcoder.Encode(data, 256, arcoder.SchemeIncremental)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	back, err := arcoder.Decode(bitLength, len(data), payload, 256, arcoder.SchemeIncremental)
//
// For persisting a compressed artifact to a file or any io.Writer, use
// EncodeFile/DecodeFile, which frame the payload with the header format
// described in spec §4.5/§6.
package arcoder

import (
	"fmt"
	"io"

	"github.com/marcinwilkdev/arcoder/internal/coder"
	"github.com/marcinwilkdev/arcoder/internal/container"
)

// Scheme selects the model-update policy the encoder and decoder share.
// The two adaptive schemes are not wire-compatible with each other —
// callers must agree on a Scheme out-of-band, since the container format
// carries no flag recording which one was used.
type Scheme = coder.Scheme

// The two adaptive model-update policies, and the fixed-per-block size
// the blockwise one recomputes at.
const (
	SchemeIncremental = coder.SchemeIncremental
	SchemeBlockwise   = coder.SchemeBlockwise
	BlockSize         = coder.BlockSize
)

// ParseScheme parses a scheme name ("incremental" or "blockwise"), for
// callers (such as cmd/arcoder) that take it as a flag.
func ParseScheme(s string) (Scheme, error) {
	return coder.ParseScheme(s)
}

// Encode compresses symbols against a freshly-initialized model for the
// given alphabetSize and scheme, returning the exact bit length of the
// valid prefix of payload and the payload itself (spec §6's core API).
// Every symbol in symbols must be < alphabetSize.
func Encode(symbols []byte, alphabetSize int, scheme Scheme) (bitLength int, payload []byte, err error) {
	return coder.Encode(symbols, alphabetSize, scheme)
}

// Decode reconstructs exactly symbolCount symbols from payload, given the
// bitLength Encode returned and the same alphabetSize and scheme used to
// produce it.
func Decode(bitLength, symbolCount int, payload []byte, alphabetSize int, scheme Scheme) ([]byte, error) {
	return coder.Decode(bitLength, symbolCount, payload, alphabetSize, scheme)
}

// EncodeFile compresses data and writes the framed artifact (header +
// payload, spec §4.5/§6) to w.
func EncodeFile(w io.Writer, data []byte, alphabetSize int, scheme Scheme) error {
	bitLength, payload, err := Encode(data, alphabetSize, scheme)
	if err != nil {
		return fmt.Errorf("arcoder: encoding: %w", err)
	}
	h := container.Header{
		BitLength:   uint64(bitLength),
		SymbolCount: uint64(len(data)),
	}
	if _, err := w.Write(container.Marshal(h, payload)); err != nil {
		return fmt.Errorf("arcoder: writing framed payload: %w", err)
	}
	return nil
}

// DecodeFile reads a framed artifact from r (as written by EncodeFile)
// and reconstructs the original bytes.
func DecodeFile(r io.Reader, alphabetSize int, scheme Scheme) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("arcoder: reading framed payload: %w", err)
	}
	h, payload, err := container.Unmarshal(raw)
	if err != nil {
		return nil, fmt.Errorf("arcoder: %w", err)
	}
	out, err := Decode(int(h.BitLength), int(h.SymbolCount), payload, alphabetSize, scheme)
	if err != nil {
		return nil, fmt.Errorf("arcoder: decoding: %w", err)
	}
	return out, nil
}
