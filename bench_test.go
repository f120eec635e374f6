package opticodec

import (
	"image"
	"testing"
)

func BenchmarkEncodeFrame(b *testing.B) {
	opts := DefaultOptions()
	payload := make([]byte, opts.Grid.SlabCapacity())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EncodeFrame(payload, uint32(i), uint32(i), opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeFrameDirectMode(b *testing.B) {
	opts := DefaultOptions()
	payload := make([]byte, opts.Grid.SlabCapacity())
	img, err := EncodeFrame(payload, 0, 0, opts)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := DecodeFrame(img, nil, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeFramesConcurrent(b *testing.B) {
	opts := DefaultOptions()
	payload := make([]byte, opts.Grid.SlabCapacity())
	img, err := EncodeFrame(payload, 0, 0, opts)
	if err != nil {
		b.Fatal(err)
	}
	imgs := make([]image.Image, 16)
	for i := range imgs {
		imgs[i] = img
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range DecodeFramesConcurrent(imgs, nil, opts, 4) {
		}
	}
}
