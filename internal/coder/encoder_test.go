package coder

import (
	"math/rand"
	"testing"
)

func TestEncodeScenario1SmallAlphabet(t *testing.T) {
	bitLength, payload, err := Encode([]byte{2, 1, 0, 0, 1, 3}, 4, SchemeIncremental)
	if err != nil {
		t.Fatal(err)
	}
	if len(payload) < 2 || payload[0] != 0x6F || payload[1] != 0x18 {
		t.Fatalf("payload[:2] = %#02x %#02x, want 0x6f 0x18", payload[0], payload[1])
	}
	if bitLength != 15 {
		t.Errorf("bitLength = %d, want 15", bitLength)
	}
}

func TestEncodeScenario2FullAlphabet(t *testing.T) {
	bitLength, payload, err := Encode([]byte{2, 1, 0, 0, 1, 3}, 256, SchemeIncremental)
	if err != nil {
		t.Fatal(err)
	}
	if len(payload) < 2 || payload[0] != 0x01 || payload[1] != 0xFE {
		t.Fatalf("payload[:2] = %#02x %#02x, want 0x01 0xfe", payload[0], payload[1])
	}
	if bitLength != 47 {
		t.Errorf("bitLength = %d, want 47", bitLength)
	}
}

func TestEncodeScenario3StaticModel(t *testing.T) {
	const total = ^uint32(0) // T = 2^32 - 1
	c := []uint32{
		0,
		total / 5,
		total/5 + total/2,
		2*(total/5) + total/2,
		total,
	}
	model, err := NewStaticModel(c)
	if err != nil {
		t.Fatal(err)
	}
	bitLength, payload, err := EncodeWithModel([]byte{2, 1, 0, 0, 1, 3}, model)
	if err != nil {
		t.Fatal(err)
	}
	if len(payload) < 2 || payload[0] != 0xBE || payload[1] != 0x20 {
		t.Fatalf("payload[:2] = %#02x %#02x, want 0xbe 0x20", payload[0], payload[1])
	}
	if bitLength != 13 {
		t.Errorf("bitLength = %d, want 13", bitLength)
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	bitLength, payload, err := Encode(nil, 256, SchemeIncremental)
	if err != nil {
		t.Fatal(err)
	}
	if bitLength > 8 {
		t.Errorf("bitLength = %d, want <= 8", bitLength)
	}
	if len(payload) == 0 {
		t.Error("payload must contain at least the termination byte")
	}
}

func TestEncodeRejectsOutOfRangeSymbol(t *testing.T) {
	if _, _, err := Encode([]byte{4}, 4, SchemeIncremental); err == nil {
		t.Error("expected error for symbol == alphabet size, got nil")
	}
}

func TestEncodeAllEqualInputIsSmall(t *testing.T) {
	data := make([]byte, 1000)
	bitLength, _, err := Encode(data, 256, SchemeIncremental)
	if err != nil {
		t.Fatal(err)
	}
	if bitLength >= 200 {
		t.Errorf("bitLength = %d, want < 200 for 1000 equal bytes", bitLength)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	data := make([]byte, 500)
	r := rand.New(rand.NewSource(1))
	r.Read(data)

	bl1, p1, err := Encode(data, 256, SchemeIncremental)
	if err != nil {
		t.Fatal(err)
	}
	bl2, p2, err := Encode(data, 256, SchemeIncremental)
	if err != nil {
		t.Fatal(err)
	}
	if bl1 != bl2 || !bytesEqual(p1, p2) {
		t.Error("two encodes of the same input produced different output")
	}
}
