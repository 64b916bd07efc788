package container

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	h := Header{BitLength: 47, SymbolCount: 6}
	payload := []byte{0x01, 0xFE, 0xFF, 0x03, 0xF6, 0xC8}

	framed := Marshal(h, payload)
	assert.Len(t, framed, headerSize+len(payload))

	gotHeader, gotPayload, err := Unmarshal(framed)
	require.NoError(t, err)
	assert.Equal(t, h, gotHeader)
	assert.Equal(t, payload, gotPayload)
}

func TestUnmarshalRejectsShortInput(t *testing.T) {
	_, _, err := Unmarshal([]byte{0x00, 0x01})
	assert.Error(t, err)
}

func TestWriteReadHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	h := Header{BitLength: 1 << 40, SymbolCount: 1 << 20}

	require.NoError(t, WriteHeader(&buf, h))

	got, err := ReadHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestReadHeaderRejectsShortInput(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}
