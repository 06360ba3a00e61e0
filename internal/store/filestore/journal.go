package filestore

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/breeew/aicare-api/pkg/types"
)

// JournalStore keeps every journal entry in one JSON array file, rewritten on each change.
type JournalStore struct {
	path string
	mu   sync.Mutex
}

func NewJournalStore(path string) *JournalStore {
	return &JournalStore{path: path}
}

func (s *JournalStore) Path() string {
	return s.path
}

func (s *JournalStore) Append(entry types.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	list = append(list, entry)
	return s.save(list)
}

// Load never fails: an absent, empty or unparsable file reads as no entries.
func (s *JournalStore) Load() []types.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *JournalStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save([]types.JournalEntry{})
}

func (s *JournalStore) load() []types.JournalEntry {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read journal file", slog.String("path", s.path), slog.String("error", err.Error()))
		}
		return []types.JournalEntry{}
	}
	if len(raw) == 0 {
		return []types.JournalEntry{}
	}

	var list []types.JournalEntry
	if err = json.Unmarshal(raw, &list); err != nil {
		slog.Warn("journal file is not valid json, treating as empty", slog.String("path", s.path), slog.String("error", err.Error()))
		return []types.JournalEntry{}
	}
	if list == nil {
		list = []types.JournalEntry{}
	}
	return list
}

func (s *JournalStore) save(list []types.JournalEntry) error {
	raw, err := json.MarshalIndent(list, "", "    ")
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	// readers see either the previous array or the new one, never a partial write
	return atomic.WriteFile(s.path, bytes.NewReader(raw))
}
