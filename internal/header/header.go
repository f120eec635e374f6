package header

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

// Sentinel errors returned by Parse, matching the error taxonomy's
// per-frame failure kinds. Callers should use errors.Is to check these.
var (
	ErrShortHeader = errors.New("header: fewer than 18 bytes")
	ErrBadMagic    = errors.New("header: bad magic value")
	ErrCrcMismatch = errors.New("header: crc32 mismatch")
)

// crcCoveredSize is the number of leading bytes covered by the trailing
// CRC-32 (everything except the CRC field itself).
const crcCoveredSize = 14

// Header is the parsed form of a frame's 18-byte big-endian header.
type Header struct {
	Seq        uint32 // monotonic transport-layer frame sequence, 0-based
	ChunkIdx   uint32 // logical chunk index (presently always == Seq)
	PayloadLen uint32 // byte count of usable payload in this frame
}

// Build encodes seq, chunkIdx, and payloadLen into the 18-byte big-endian
// wire format: magic(2) seq(4) chunk_idx(4) payload_len(4) crc32(4).
func Build(seq, chunkIdx, payloadLen uint32) []byte {
	buf := make([]byte, Size)
	binary.BigEndian.PutUint16(buf[0:2], MagicValue)
	binary.BigEndian.PutUint32(buf[2:6], seq)
	binary.BigEndian.PutUint32(buf[6:10], chunkIdx)
	binary.BigEndian.PutUint32(buf[10:14], payloadLen)
	crc := crc32.ChecksumIEEE(buf[:crcCoveredSize])
	binary.BigEndian.PutUint32(buf[14:18], crc)
	return buf
}

// Parse validates and decodes an 18-byte big-endian header. It returns
// ErrShortHeader if buf is too short, ErrBadMagic if the magic field
// doesn't match, or ErrCrcMismatch if the stored CRC-32 disagrees with the
// CRC-32 computed over the first 14 bytes. A frame failing any of these
// checks is recoverable: the caller should discard the frame and continue.
func Parse(buf []byte) (Header, error) {
	if len(buf) < Size {
		return Header{}, fmt.Errorf("%w: got %d bytes", ErrShortHeader, len(buf))
	}

	magic := binary.BigEndian.Uint16(buf[0:2])
	if magic != MagicValue {
		return Header{}, fmt.Errorf("%w: 0x%04x", ErrBadMagic, magic)
	}

	storedCRC := binary.BigEndian.Uint32(buf[14:18])
	calcCRC := crc32.ChecksumIEEE(buf[:crcCoveredSize])
	if storedCRC != calcCRC {
		return Header{}, fmt.Errorf("%w: stored 0x%08x, computed 0x%08x", ErrCrcMismatch, storedCRC, calcCRC)
	}

	return Header{
		Seq:        binary.BigEndian.Uint32(buf[2:6]),
		ChunkIdx:   binary.BigEndian.Uint32(buf[6:10]),
		PayloadLen: binary.BigEndian.Uint32(buf[10:14]),
	}, nil
}
