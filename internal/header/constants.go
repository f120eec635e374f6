// Package header builds and parses the fixed 18-byte frame header that
// precedes every grid frame's payload region. It plays the same role for
// this codec that internal/container (RIFF chunk headers) plays for WebP:
// a small, fixed-size framing format with a validating parser.
package header

// Size is the total encoded header length in bytes.
const Size = 18

// MagicValue is the constant that must appear in the first two header
// bytes. Any other value causes Parse to reject the frame.
const MagicValue uint16 = 0xABCD
