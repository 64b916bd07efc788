package coder

import "testing"

func TestCarryByte(t *testing.T) {
	tests := []struct {
		name     string
		in       byte
		t        int
		wantOut  byte
		wantMore bool
	}{
		{"no carry, mid byte", 14, 1, 16, false},
		{"carries into next byte", 192, 6, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.in
			got := carryByte(&b, tt.t)
			if b != tt.wantOut || got != tt.wantMore {
				t.Errorf("carryByte(%d, %d) = (%d, %v), want (%d, %v)", tt.in, tt.t, b, got, tt.wantOut, tt.wantMore)
			}
		})
	}
}

func TestBitbufPropagateCarry(t *testing.T) {
	b := &bitbuf{d: []byte{128, 14}, t: 1}
	if err := b.propagateCarry(); err != nil {
		t.Fatal(err)
	}
	want := []byte{128, 16}
	if !bytesEqual(b.d, want) {
		t.Errorf("d = %v, want %v", b.d, want)
	}

	b = &bitbuf{d: []byte{128, 192}, t: 6}
	if err := b.propagateCarry(); err != nil {
		t.Fatal(err)
	}
	want = []byte{129, 0}
	if !bytesEqual(b.d, want) {
		t.Errorf("d = %v, want %v", b.d, want)
	}
}

func TestBitbufPropagateCarryOverflow(t *testing.T) {
	b := &bitbuf{d: []byte{0xFF}, t: 0}
	if err := b.propagateCarry(); err == nil {
		t.Error("expected ErrInternalInvariant on full-buffer overflow, got nil")
	}
}

func TestBitbufPushBitGrowsBuffer(t *testing.T) {
	b := newBitbuf()
	for i := 0; i < 8; i++ {
		b.pushBit(1)
	}
	if len(b.d) != 1 || b.d[0] != 0xFF || b.t != 0 {
		t.Fatalf("after 8 one-bits: d=%v t=%d, want [255] 0", b.d, b.t)
	}
	b.pushBit(0)
	if len(b.d) != 2 || b.d[1] != 0x00 || b.t != 7 {
		t.Fatalf("after 9th push: d=%v t=%d, want [255 0] 7", b.d, b.t)
	}
}

func TestBitbufBitLength(t *testing.T) {
	b := newBitbuf()
	if got := b.bitLength(); got != 0 {
		t.Errorf("fresh buffer bitLength = %d, want 0", got)
	}
	b.pushBit(1)
	if got := b.bitLength(); got != 1 {
		t.Errorf("bitLength after one push = %d, want 1", got)
	}
}

func TestBitAt(t *testing.T) {
	data := []byte{0b10110000}
	want := []uint32{1, 0, 1, 1, 0, 0, 0, 0}
	for i, w := range want {
		if got := bitAt(data, i); got != w {
			t.Errorf("bitAt(data, %d) = %d, want %d", i, got, w)
		}
	}
	if got := bitAt(data, 100); got != 0 {
		t.Errorf("bitAt past end = %d, want 0", got)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
