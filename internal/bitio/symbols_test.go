package bitio

import (
	"bytes"
	"testing"
)

func TestPackTwoBitMSBFirst(t *testing.T) {
	// pack([0x12, 0x34], 2) == [0,1,0,2,0,3,1,0]
	got := Pack([]byte{0x12, 0x34}, 2)
	want := []byte{0, 1, 0, 2, 0, 3, 1, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("Pack(0x12,0x34, k=2) = %v, want %v", got, want)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xFF},
		{0x12, 0x34, 0x56, 0x78},
		bytes.Repeat([]byte{0xAB}, 544),
	}
	for _, in := range cases {
		symbols := Pack(in, 2)
		out := Unpack(symbols, 2)
		if !bytes.Equal(out, in) {
			t.Fatalf("round trip mismatch for %d bytes: got %d bytes back", len(in), len(out))
		}
	}
}

func TestPackPadsFinalSymbolHigh(t *testing.T) {
	// k=3 over 1 byte (8 bits) splits into 111,111,"10" with a 2-bit residual
	// that must be left-shifted into the high bits of the final symbol.
	symbols := Pack([]byte{0b11111110}, 3)
	want := []byte{0b111, 0b111, 0b100}
	if !bytes.Equal(symbols, want) {
		t.Fatalf("Pack k=3 padding: got %v, want %v", symbols, want)
	}
}

func TestUnpackDiscardsResidualBits(t *testing.T) {
	// 3 symbols @ k=3 = 9 bits; only 8 bits (1 byte) should be emitted, and
	// the 9th bit (padding, not real data) is discarded.
	out := Unpack([]byte{0b111, 0b111, 0b100}, 3)
	if len(out) != 1 {
		t.Fatalf("expected 1 byte, got %d", len(out))
	}
	if out[0] != 0b11111110 {
		t.Fatalf("got %08b, want 11111110", out[0])
	}
}

func TestEmptyInput(t *testing.T) {
	if got := Pack(nil, 2); len(got) != 0 {
		t.Fatalf("Pack(nil) = %v, want empty", got)
	}
	if got := Unpack(nil, 2); len(got) != 0 {
		t.Fatalf("Unpack(nil) = %v, want empty", got)
	}
}

func TestIncrementalWriter(t *testing.T) {
	w := NewSymbolWriter(2)
	w.Write([]byte{0x12})
	w.Write([]byte{0x34})
	got := w.Finish()
	want := Pack([]byte{0x12, 0x34}, 2)
	if !bytes.Equal(got, want) {
		t.Fatalf("incremental write = %v, want %v", got, want)
	}
}
