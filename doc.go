// Package opticodec implements the frame codec and receiver-side recovery
// pipeline of an optical file-transport channel: arbitrary binary files
// are rendered as a sequence of bordered, colored grid images and decoded
// back from photographs of those images.
//
// The package is organized leaf-first: internal/bitio packs payload bytes
// into grid symbols, internal/header frames those symbols with a
// validating 18-byte record, internal/raster renders the bordered grid to
// an image, internal/rectify and internal/cluster recover the grid from a
// captured photo, internal/chunker and internal/manifest drive the sender
// side's file splitting, and internal/reassembler and internal/resume
// drive the receiver side's accumulation. This package ties them together
// behind EncodeFrame and DecodeFrame.
//
// Basic usage for encoding:
//
//	img, err := opticodec.EncodeFrame(payload, seq, chunkIdx, opticodec.DefaultOptions())
//
// Basic usage for decoding a photographed frame with known corners:
//
//	hdr, payload, err := opticodec.DecodeFrame(img, corners, opticodec.DefaultOptions())
package opticodec
