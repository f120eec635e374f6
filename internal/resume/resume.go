// Package resume persists which frame sequence numbers a receiver has
// already accepted, so a restarted session can skip re-capturing them.
package resume

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// State is the on-disk resume descriptor: the sorted set of sequence
// numbers already received.
type State struct {
	Received []uint32 `json:"received"`

	path string
	seen map[uint32]struct{}
}

// New creates an empty State that will persist to path on Save.
func New(path string) *State {
	return &State{path: path, seen: make(map[uint32]struct{})}
}

// Load reads a previously saved resume descriptor from path. A missing
// file is not an error: it yields an empty State bound to path.
func Load(path string) (*State, error) {
	s := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	s.seen = make(map[uint32]struct{}, len(s.Received))
	for _, seq := range s.Received {
		s.seen[seq] = struct{}{}
	}
	return s, nil
}

// Mark records seq as received. It has no effect if seq was already
// marked.
func (s *State) Mark(seq uint32) {
	if _, ok := s.seen[seq]; ok {
		return
	}
	s.seen[seq] = struct{}{}
	s.Received = append(s.Received, seq)
	sort.Slice(s.Received, func(i, j int) bool { return s.Received[i] < s.Received[j] })
}

// HasReceived reports whether seq has already been marked.
func (s *State) HasReceived(seq uint32) bool {
	_, ok := s.seen[seq]
	return ok
}

// Save writes the current state to its bound path atomically: the
// descriptor is written to a temp file in the same directory and then
// renamed into place, so a crash mid-write never leaves a corrupt
// descriptor behind.
func (s *State) Save() error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".resume-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}
