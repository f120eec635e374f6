package opticodec

import (
	"image"
	"testing"
)

// addMinimalSeeds adds hand-crafted minimal payloads to the corpus.
func addMinimalSeeds(f *testing.F) {
	f.Helper()
	f.Add([]byte(nil))
	f.Add([]byte("a"))
	f.Add(make([]byte, DefaultOptions().Grid.SlabCapacity()))
}

// FuzzEncodeDecodeRoundTrip ensures that any payload up to slab capacity
// survives an EncodeFrame/DecodeFrame round trip in direct mode, and that
// no input can make either side panic.
func FuzzEncodeDecodeRoundTrip(f *testing.F) {
	addMinimalSeeds(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		opts := DefaultOptions()
		if len(data) > opts.Grid.SlabCapacity() {
			data = data[:opts.Grid.SlabCapacity()]
		}

		img, err := EncodeFrame(data, 0, 0, opts)
		if err != nil {
			return
		}
		_, got, err := DecodeFrame(img, nil, opts)
		if err != nil {
			t.Fatalf("DecodeFrame after valid EncodeFrame: %v", err)
		}
		if len(got) != len(data) {
			t.Fatalf("round-trip length mismatch: got %d, want %d", len(got), len(data))
		}
		for i := range got {
			if got[i] != data[i] {
				t.Fatalf("round-trip byte %d mismatch: got %x, want %x", i, got[i], data[i])
			}
		}
	})
}

// FuzzDecodeFrameNoPanic ensures that decoding an arbitrary image, not
// necessarily one this package produced, never panics: malformed captures
// are expected and must surface as an error, not a crash.
func FuzzDecodeFrameNoPanic(f *testing.F) {
	f.Add(8, 8, uint8(0))
	f.Add(792, 456, uint8(128))

	f.Fuzz(func(t *testing.T, w, h int, fill uint8) {
		if w <= 0 || h <= 0 || w > 4096 || h > 4096 {
			return
		}
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i] = fill
			img.Pix[i+1] = fill
			img.Pix[i+2] = fill
			img.Pix[i+3] = 255
		}

		_, _, _ = DecodeFrame(img, nil, DefaultOptions())
	})
}
