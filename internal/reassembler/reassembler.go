// Package reassembler accumulates decoded frame payloads keyed by sequence
// number and emits the reconstructed file once every expected sequence has
// arrived, or on explicit finalize.
package reassembler

import (
	"fmt"
	"os"
	"sort"

	"github.com/airgapfile/opticodec/internal/header"
)

// MissingFramesError reports gaps in the received seq set at finalize time.
// It is surfaced, not fatal: the caller decides whether to accept a short
// file or wait for the sender to loop around.
type MissingFramesError struct {
	Missing []uint32
}

func (e *MissingFramesError) Error() string {
	return fmt.Sprintf("reassembler: missing %d frame(s): %v", len(e.Missing), e.Missing)
}

// Reassembler accumulates per-seq payloads. It is not safe for concurrent
// use; callers sharing one instance across goroutines must serialize calls
// to Accept and Finalize themselves.
type Reassembler struct {
	expected int // -1 means unknown / open-ended
	payloads map[uint32][]byte
	highest  uint32
	any      bool
}

// New creates a Reassembler. expected is the manifest's total_chunks; pass
// a negative value for an open-ended session with no known endpoint.
func New(expected int) *Reassembler {
	return &Reassembler{
		expected: expected,
		payloads: make(map[uint32][]byte),
	}
}

// Accept stores payload under hdr.Seq if that sequence number has not
// already been seen. Duplicate sequence numbers are ignored silently.
func (r *Reassembler) Accept(hdr header.Header, payload []byte) {
	seq := hdr.Seq
	if _, ok := r.payloads[seq]; ok {
		return
	}
	r.payloads[seq] = append([]byte(nil), payload...)
	if !r.any || seq > r.highest {
		r.highest = seq
		r.any = true
	}
}

// Received reports how many distinct sequence numbers have been accepted.
func (r *Reassembler) Received() int {
	return len(r.payloads)
}

// Complete reports whether the number of stored frames equals the expected
// total. It is never true for an open-ended (unknown expected) session.
func (r *Reassembler) Complete() bool {
	if r.expected < 0 {
		return false
	}
	return len(r.payloads) == r.expected
}

// missing returns the sorted sequence numbers in [0, highest] that have not
// been accepted.
func (r *Reassembler) missing() []uint32 {
	var gaps []uint32
	if !r.any {
		return gaps
	}
	for seq := uint32(0); seq <= r.highest; seq++ {
		if _, ok := r.payloads[seq]; !ok {
			gaps = append(gaps, seq)
		}
	}
	return gaps
}

// Finalize writes every stored payload to outputPath, concatenated in
// ascending seq order. If any sequence number below the highest seen is
// missing, it writes the file anyway (the concatenation of what is
// present) and returns a *MissingFramesError naming the gaps; the caller
// decides whether that partial result is acceptable.
func (r *Reassembler) Finalize(outputPath string) error {
	seqs := make([]uint32, 0, len(r.payloads))
	for seq := range r.payloads {
		seqs = append(seqs, seq)
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, seq := range seqs {
		if _, err := f.Write(r.payloads[seq]); err != nil {
			return err
		}
	}

	if gaps := r.missing(); len(gaps) > 0 {
		return &MissingFramesError{Missing: gaps}
	}
	return nil
}
