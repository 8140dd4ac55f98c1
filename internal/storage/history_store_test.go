package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestHistoryStore_RecordAndContains(t *testing.T) {
	store, err := NewHistoryStore(filepath.Join(t.TempDir(), "scan_history.json"))
	if err != nil {
		t.Fatal(err)
	}

	if store.Contains(3, -7) {
		t.Error("expected empty history")
	}
	store.Record(3, -7)
	if !store.Contains(3, -7) {
		t.Error("expected coordinate to be recorded")
	}
	if store.Contains(-7, 3) {
		t.Error("expected flipped coordinate to be absent")
	}

	// Duplicate records do not grow the history.
	store.Record(3, -7)
	if store.Count() != 1 {
		t.Errorf("expected count 1, got %d", store.Count())
	}
}

func TestHistoryStore_Clear(t *testing.T) {
	store, err := NewHistoryStore(filepath.Join(t.TempDir(), "scan_history.json"))
	if err != nil {
		t.Fatal(err)
	}

	store.Record(1, 1)
	store.Record(2, 2)

	if n := store.Clear(); n != 2 {
		t.Errorf("expected 2 dropped entries, got %d", n)
	}
	if store.Count() != 0 {
		t.Errorf("expected empty history after clear, got %d", store.Count())
	}
	if n := store.Clear(); n != 0 {
		t.Errorf("expected clearing empty history to drop 0, got %d", n)
	}
}

func TestHistoryStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan_history.json")
	store, err := NewHistoryStore(path)
	if err != nil {
		t.Fatal(err)
	}

	store.Record(5, 5)
	store.Record(-3, 12)
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reloaded, err := NewHistoryStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Count() != 2 {
		t.Fatalf("expected 2 entries after reload, got %d", reloaded.Count())
	}
	if !reloaded.Contains(5, 5) || !reloaded.Contains(-3, 12) {
		t.Error("expected recorded coordinates to survive a reload")
	}
}

func TestHistoryStore_ClearedHistoryWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan_history.json")
	store, err := NewHistoryStore(path)
	if err != nil {
		t.Fatal(err)
	}

	store.Record(1, 1)
	store.Clear()
	if err := store.Flush(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if string(raw["scanned_coords"]) == "null" {
		t.Error("expected an empty array, got null")
	}
}

func TestHistoryStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan_history.json")
	if err := os.WriteFile(path, []byte("nope"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewHistoryStore(path)
	if err == nil {
		t.Error("expected a warning error for corrupt history")
	}
	if store == nil || store.Count() != 0 {
		t.Fatal("expected a usable empty store despite corrupt history")
	}
}
