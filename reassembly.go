package opticodec

import (
	"github.com/airgapfile/opticodec/internal/reassembler"
)

// Reassembler accumulates decoded frame payloads keyed by sequence number
// and emits the reconstructed file once every expected sequence has
// arrived, or on explicit Finalize. It is the type a
// ReceiverDriver implementation is expected to drive directly: call
// Accept after every successful DecodeFrame, then Finalize once Complete
// reports true or the caller otherwise decides to stop waiting.
type Reassembler = reassembler.Reassembler

// MissingFramesError is returned by (*Reassembler).Finalize when gaps
// exist in the accepted seq set.
type MissingFramesError = reassembler.MissingFramesError

// NewReassembler creates a Reassembler expecting exactly expected frames
// (typically a manifest's total_chunks). Pass a negative value for an
// open-ended session with no known endpoint.
func NewReassembler(expected int) *Reassembler {
	return reassembler.New(expected)
}
