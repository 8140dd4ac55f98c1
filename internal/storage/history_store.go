package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// historyFile is the on-disk scan history layout.
type historyFile struct {
	ScannedCoords []string `json:"scanned_coords"`
}

// HistoryStore records coordinates the scanner has already classified,
// so re-running a scan does not fetch the same tile twice. Clearing it
// makes every tile scannable again.
type HistoryStore struct {
	path   string
	mu     sync.RWMutex
	dirty  bool
	coords map[string]struct{}
	order  []string
}

// CoordKey formats a coordinate pair the way history entries are stored.
func CoordKey(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// NewHistoryStore loads scan history from path. Missing or corrupt
// files initialize empty history; a corrupt file also returns the
// error so the caller can warn.
func NewHistoryStore(path string) (*HistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	s := &HistoryStore{
		path:   path,
		coords: make(map[string]struct{}),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read scan history: %w", err)
	}

	var loaded historyFile
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s, fmt.Errorf("corrupt scan history, starting empty: %w", err)
	}

	for _, key := range loaded.ScannedCoords {
		if _, seen := s.coords[key]; seen {
			continue
		}
		s.coords[key] = struct{}{}
		s.order = append(s.order, key)
	}
	return s, nil
}

// Contains reports whether (x, y) was already classified.
func (s *HistoryStore) Contains(x, y int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.coords[CoordKey(x, y)]
	return ok
}

// Record marks (x, y) as classified.
func (s *HistoryStore) Record(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := CoordKey(x, y)
	if _, seen := s.coords[key]; seen {
		return
	}
	s.coords[key] = struct{}{}
	s.order = append(s.order, key)
	s.dirty = true
}

// Count returns the number of recorded coordinates.
func (s *HistoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.coords)
}

// Clear truncates the history. Returns how many entries were dropped.
func (s *HistoryStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.coords)
	if n == 0 {
		return 0
	}
	s.coords = make(map[string]struct{})
	s.order = nil
	s.dirty = true
	return n
}

// Flush writes the history to disk if it has unsaved changes.
func (s *HistoryStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	out := historyFile{ScannedCoords: s.order}
	if out.ScannedCoords == nil {
		out.ScannedCoords = []string{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scan history: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write scan history: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename scan history: %w", err)
	}
	s.dirty = false
	return nil
}

// Close flushes any unsaved state.
func (s *HistoryStore) Close() error {
	return s.Flush()
}
