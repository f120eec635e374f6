package resume

import (
	"path/filepath"
	"testing"
)

func TestMarkAndHasReceived(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "resume.json"))
	if s.HasReceived(5) {
		t.Fatal("HasReceived(5) = true before Mark")
	}
	s.Mark(5)
	if !s.HasReceived(5) {
		t.Fatal("HasReceived(5) = false after Mark")
	}
	s.Mark(5)
	if len(s.Received) != 1 {
		t.Fatalf("Received = %v, want single entry after duplicate Mark", s.Received)
	}
}

func TestMarkKeepsReceivedSorted(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "resume.json"))
	s.Mark(3)
	s.Mark(1)
	s.Mark(2)
	want := []uint32{1, 2, 3}
	if len(s.Received) != len(want) {
		t.Fatalf("Received = %v, want %v", s.Received, want)
	}
	for i, v := range want {
		if s.Received[i] != v {
			t.Fatalf("Received = %v, want %v", s.Received, want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	s := New(path)
	s.Mark(0)
	s.Mark(2)
	s.Mark(4)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.HasReceived(0) || !loaded.HasReceived(2) || !loaded.HasReceived(4) {
		t.Fatalf("loaded.Received = %v, want [0 2 4]", loaded.Received)
	}
	if loaded.HasReceived(1) {
		t.Fatal("HasReceived(1) = true, want false")
	}
}

func TestLoadMissingFileYieldsEmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Received) != 0 {
		t.Fatalf("Received = %v, want empty", s.Received)
	}
	s.Mark(7)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if !reloaded.HasReceived(7) {
		t.Fatal("expected seq 7 to persist")
	}
}
