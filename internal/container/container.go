// Package container implements the minimal persisted-artifact framing of
// spec §4.5/§6: a two-word big-endian header (bit_length, symbol_count)
// followed by the payload. It carries no magic bytes and no version
// field — callers who need those own them outside this package.
package container

import (
	"encoding/binary"
	"fmt"
	"io"
)

// headerSize is the size in bytes of the two big-endian u64 header
// fields spec §4.5 defines.
const headerSize = 16

// Header is the framing metadata persisted ahead of a compressed payload.
type Header struct {
	BitLength   uint64
	SymbolCount uint64
}

// Marshal serializes a Header and payload into the persisted file format
// of spec §6: 8 bytes bit_length, 8 bytes symbol_count, then payload.
func Marshal(h Header, payload []byte) []byte {
	out := make([]byte, headerSize+len(payload))
	binary.BigEndian.PutUint64(out[0:8], h.BitLength)
	binary.BigEndian.PutUint64(out[8:16], h.SymbolCount)
	copy(out[headerSize:], payload)
	return out
}

// Unmarshal parses the persisted file format back into a Header and the
// raw payload bytes (which include any trailing padding past BitLength).
func Unmarshal(data []byte) (Header, []byte, error) {
	if len(data) < headerSize {
		return Header{}, nil, fmt.Errorf("container: need at least %d header bytes, got %d", headerSize, len(data))
	}
	h := Header{
		BitLength:   binary.BigEndian.Uint64(data[0:8]),
		SymbolCount: binary.BigEndian.Uint64(data[8:16]),
	}
	return h, data[headerSize:], nil
}

// WriteHeader writes just the two-word header to w, for callers that
// stream the payload separately.
func WriteHeader(w io.Writer, h Header) error {
	var buf [headerSize]byte
	binary.BigEndian.PutUint64(buf[0:8], h.BitLength)
	binary.BigEndian.PutUint64(buf[8:16], h.SymbolCount)
	_, err := w.Write(buf[:])
	return err
}

// ReadHeader reads the two-word header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, fmt.Errorf("container: reading header: %w", err)
	}
	return Header{
		BitLength:   binary.BigEndian.Uint64(buf[0:8]),
		SymbolCount: binary.BigEndian.Uint64(buf[8:16]),
	}, nil
}
