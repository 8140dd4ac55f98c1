package scan

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gabe/raider/internal/logger"
	"github.com/gabe/raider/internal/models"
	"github.com/gabe/raider/internal/storage"
)

// mockFarmStore tracks coordinates across lists without persistence.
type mockFarmStore struct {
	existing map[string]string // coord key -> list name
	added    []string
	flushed  int
	addErr   error
}

func newMockFarmStore() *mockFarmStore {
	return &mockFarmStore{existing: make(map[string]string)}
}

func (m *mockFarmStore) IsCoordinateInAnyList(x, y int) (string, bool) {
	list, ok := m.existing[storage.CoordKey(x, y)]
	return list, ok
}

func (m *mockFarmStore) AddFarmToList(listName, name string, x, y int, troops map[string]int, notes string) (int, error) {
	if m.addErr != nil {
		return 0, m.addErr
	}
	m.existing[storage.CoordKey(x, y)] = listName
	m.added = append(m.added, storage.CoordKey(x, y))
	return len(m.added), nil
}

func (m *mockFarmStore) Flush() error {
	m.flushed++
	return nil
}

// mockHistory is an in-memory History.
type mockHistory struct {
	coords  map[string]struct{}
	flushed int
}

func newMockHistory() *mockHistory {
	return &mockHistory{coords: make(map[string]struct{})}
}

func (m *mockHistory) Contains(x, y int) bool {
	_, ok := m.coords[storage.CoordKey(x, y)]
	return ok
}

func (m *mockHistory) Record(x, y int) {
	m.coords[storage.CoordKey(x, y)] = struct{}{}
}

func (m *mockHistory) Flush() error {
	m.flushed++
	return nil
}

// mapClassifier serves tiles from a fixed map. Coordinates not in the
// map classify as empty; coordinates in errs fail.
type mapClassifier struct {
	tiles map[string]*models.ScannedTile
	errs  map[string]error
	calls []string
}

func (c *mapClassifier) Classify(ctx context.Context, x, y int) (*models.ScannedTile, error) {
	key := storage.CoordKey(x, y)
	c.calls = append(c.calls, key)
	if err, ok := c.errs[key]; ok {
		return nil, err
	}
	if tile, ok := c.tiles[key]; ok {
		return tile, nil
	}
	return &models.ScannedTile{X: x, Y: y, Type: models.TileEmpty}, nil
}

func oasisAt(x, y int) *models.ScannedTile {
	return &models.ScannedTile{X: x, Y: y, Type: models.TileOasisUnoccupied}
}

func villageAt(x, y int, player, alliance string, pop int) *models.ScannedTile {
	return &models.ScannedTile{
		X: x, Y: y,
		Type:       models.TileVillage,
		Name:       fmt.Sprintf("village (%d|%d)", x, y),
		PlayerName: player,
		Alliance:   alliance,
		Population: pop,
	}
}

func TestScan_AddsMatchingTiles(t *testing.T) {
	store := newMockFarmStore()
	history := newMockHistory()
	classifier := &mapClassifier{tiles: map[string]*models.ScannedTile{
		"1,1":  oasisAt(1, 1),
		"0,-1": villageAt(0, -1, "alice", "", 30),
	}}
	s := New(store, history, classifier, logger.Nop())

	stats, err := s.Scan(context.Background(), 0, 0, models.DefaultScanFilter(), "default")
	if err != nil {
		t.Fatal(err)
	}

	if stats.Found != 2 || stats.Added != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if len(store.added) != 2 {
		t.Errorf("expected 2 farms added, got %v", store.added)
	}
	if store.flushed == 0 || history.flushed == 0 {
		t.Error("expected both stores flushed after the scan")
	}
}

func TestScan_SecondRunIsIdempotent(t *testing.T) {
	store := newMockFarmStore()
	history := newMockHistory()
	classifier := &mapClassifier{tiles: map[string]*models.ScannedTile{
		"1,1": oasisAt(1, 1),
	}}
	s := New(store, history, classifier, logger.Nop())

	filter := models.DefaultScanFilter()
	filter.Radius = 2

	first, _ := s.Scan(context.Background(), 0, 0, filter, "default")
	if first.Added != 1 {
		t.Fatalf("unexpected first run: %+v", first)
	}

	second, _ := s.Scan(context.Background(), 0, 0, filter, "default")
	if second.Scanned != 0 || second.Added != 0 {
		t.Errorf("expected nothing new on second run, got %+v", second)
	}
	tiles, _ := EstimateScanTime(filter.Radius)
	if second.SkippedDuplicate != tiles {
		t.Errorf("expected all %d tiles skipped as duplicates, got %d", tiles, second.SkippedDuplicate)
	}
}

func TestScan_SkipsCoordinatesAlreadyInOtherLists(t *testing.T) {
	store := newMockFarmStore()
	store.existing["1,1"] = "north"
	history := newMockHistory()
	classifier := &mapClassifier{tiles: map[string]*models.ScannedTile{
		"1,1": oasisAt(1, 1),
	}}
	s := New(store, history, classifier, logger.Nop())

	filter := models.DefaultScanFilter()
	filter.Radius = 1
	stats, _ := s.Scan(context.Background(), 0, 0, filter, "default")

	if stats.Added != 0 || stats.SkippedDuplicate != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	for _, call := range classifier.calls {
		if call == "1,1" {
			t.Error("known coordinate must not be classified at all")
		}
	}
}

func TestScan_ErrorsAreCountedAndRecorded(t *testing.T) {
	store := newMockFarmStore()
	history := newMockHistory()
	classifier := &mapClassifier{errs: map[string]error{
		"1,1": errors.New("page did not load"),
	}}
	s := New(store, history, classifier, logger.Nop())

	filter := models.DefaultScanFilter()
	filter.Radius = 1
	stats, _ := s.Scan(context.Background(), 0, 0, filter, "default")

	if stats.Errors != 1 {
		t.Errorf("expected 1 error, got %+v", stats)
	}
	if !history.Contains(1, 1) {
		t.Error("errored coordinate must still be recorded in history")
	}
}

func TestScan_CancelledContextStopsEarly(t *testing.T) {
	store := newMockFarmStore()
	history := newMockHistory()
	classifier := &mapClassifier{}
	s := New(store, history, classifier, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := s.Scan(ctx, 0, 0, models.DefaultScanFilter(), "default")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if stats.Scanned != 0 {
		t.Errorf("expected no tiles scanned, got %+v", stats)
	}
}

func TestMatchesFilter(t *testing.T) {
	base := models.DefaultScanFilter()

	tests := []struct {
		name   string
		tile   *models.ScannedTile
		mutate func(*models.ScanFilter)
		want   bool
	}{
		{
			name: "village under population cap",
			tile: villageAt(1, 1, "alice", "", 30),
			want: true,
		},
		{
			name: "village over population cap",
			tile: villageAt(1, 1, "alice", "", 80),
			want: false,
		},
		{
			name: "unknown population passes",
			tile: villageAt(1, 1, "alice", "", 0),
			want: true,
		},
		{
			name:   "villages excluded by toggle",
			tile:   villageAt(1, 1, "alice", "", 30),
			mutate: func(f *models.ScanFilter) { f.IncludePlayerVillages = false },
			want:   false,
		},
		{
			name: "natar village allowed by default",
			tile: villageAt(1, 1, "Natars", "", 30),
			want: true,
		},
		{
			name:   "natar village excluded by toggle",
			tile:   villageAt(1, 1, "Natars", "", 30),
			mutate: func(f *models.ScanFilter) { f.IncludeNatars = false },
			want:   false,
		},
		{
			name:   "natar match is case-insensitive",
			tile:   villageAt(1, 1, "NATARS", "", 30),
			mutate: func(f *models.ScanFilter) { f.IncludeNatars = false },
			want:   false,
		},
		{
			name:   "alliance exclusion is case-insensitive",
			tile:   villageAt(1, 1, "alice", "WarLords", 30),
			mutate: func(f *models.ScanFilter) { f.ExcludeAlliances = []string{"warlords"} },
			want:   false,
		},
		{
			name:   "alliance substring match excludes",
			tile:   villageAt(1, 1, "alice", "The WarLords II", 30),
			mutate: func(f *models.ScanFilter) { f.ExcludeAlliances = []string{"warlords"} },
			want:   false,
		},
		{
			name:   "player exclusion",
			tile:   villageAt(1, 1, "Alice", "", 30),
			mutate: func(f *models.ScanFilter) { f.ExcludePlayers = []string{"alice"} },
			want:   false,
		},
		{
			name: "unoccupied oasis",
			tile: oasisAt(1, 1),
			want: true,
		},
		{
			name:   "unoccupied oasis excluded by toggle",
			tile:   oasisAt(1, 1),
			mutate: func(f *models.ScanFilter) { f.IncludeUnoccupiedOases = false },
			want:   false,
		},
		{
			name: "occupied oasis",
			tile: &models.ScannedTile{Type: models.TileOasisOccupied, PlayerName: "bob", Population: 10},
			want: true,
		},
		{
			name:   "occupied oasis excluded by toggle",
			tile:   &models.ScannedTile{Type: models.TileOasisOccupied, PlayerName: "bob", Population: 10},
			mutate: func(f *models.ScanFilter) { f.IncludeOccupiedOases = false },
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := base
			if tt.mutate != nil {
				tt.mutate(&filter)
			}
			if got := MatchesFilter(tt.tile, filter); got != tt.want {
				t.Errorf("MatchesFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}
