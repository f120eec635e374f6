package opticodec

import (
	"context"
	"image"

	"github.com/airgapfile/opticodec/internal/rectify"
)

// SenderDriver documents the contract a shell (GUI or CLI, out of scope
// for this package) must satisfy to drive an outbound session: pick
// chunk_size equal to the active GridParams' SlabCapacity, build a
// manifest from the input path, transmit it out-of-band, then render and
// display one EncodeFrame result per chunk in increasing seq order.
type SenderDriver interface {
	// DisplayFrame presents one encoded frame image to the viewer (a
	// window, an e-ink panel, whatever the shell renders to).
	DisplayFrame(ctx context.Context, img image.Image) error
}

// ReceiverDriver documents the contract a shell must satisfy to drive an
// inbound session: acquire the manifest out of band, instantiate a
// Reassembler with the manifest's total_chunks, and for each captured
// frame call DecodeFrame (optionally supplying corner points) followed by
// Reassembler.Accept on success.
type ReceiverDriver interface {
	// CaptureFrame returns the next captured image, e.g. from a camera
	// or a file on disk, along with the four fiducial corner points in
	// image-space coordinates ordered TL, TR, BR, BL. A driver that
	// cannot locate corners automatically returns ok == false; the
	// caller (or a corner-picking UI, out of scope here) supplies them
	// some other way.
	CaptureFrame(ctx context.Context) (img image.Image, corners rectify.CornerOrder, ok bool, err error)
}

// ManifestTransport documents the "decoded bytes -> parsed manifest"
// hand-off: encoding and transport of the manifest JSON (QR codes in the
// reference system) are entirely external to this package.
type ManifestTransport interface {
	// Send renders and dispatches the manifest bytes out of band (e.g.
	// as a QR code sequence).
	Send(ctx context.Context, manifestJSON []byte) error
	// Receive blocks until a manifest has been acquired out of band and
	// returns its raw JSON bytes.
	Receive(ctx context.Context) ([]byte, error)
}

// FECEncoder is a capability boundary for forward error correction. The
// source this codec is modeled on carries an FEC module that is present
// but never exercised in the data path. No implementation is provided
// here; a real FEC scheme (e.g. Reed-Solomon) would satisfy this
// interface without the core codec needing any conditional import
// behavior.
type FECEncoder interface {
	Encode(data []byte) (shards [][]byte, err error)
	Decode(shards [][]byte) (data []byte, err error)
}

// AEADSealer is a capability boundary for authenticated encryption of
// payload chunks. Like FECEncoder, this mirrors a source module that is
// present but non-functional and is deliberately left unimplemented
// here: the manifest's Encryption.Enabled field documents whether a
// session expects a sealer, but the core never conditionally imports
// one.
type AEADSealer interface {
	Seal(plaintext []byte) (ciphertext []byte, err error)
	Open(ciphertext []byte) (plaintext []byte, err error)
}
