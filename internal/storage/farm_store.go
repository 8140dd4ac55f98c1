// Package storage persists farm lists and scan history as JSON files.
// Writes go through a temp file and an atomic rename, and only happen
// when the in-memory state is dirty.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabe/raider/internal/models"
)

var (
	// ErrActiveList is returned when deleting the currently active list.
	ErrActiveList = errors.New("cannot delete active list")
	// ErrListNotFound is returned when a named list does not exist.
	ErrListNotFound = errors.New("farm list not found")
	// ErrListExists is returned when creating a list whose name is taken.
	ErrListExists = errors.New("farm list already exists")
	// ErrFarmNotFound is returned when a farm id is absent from a list.
	ErrFarmNotFound = errors.New("farm not found")
)

// DefaultListName is the list every store starts with.
const DefaultListName = "default"

// farmFile is the on-disk layout: every list plus store-level settings
// in one document, written atomically as a whole.
type farmFile struct {
	ActiveList   string             `json:"active_list"`
	RaidInterval int                `json:"raid_interval"`
	Tribe        models.Tribe       `json:"tribe"`
	ServerSpeed  int                `json:"server_speed"`
	HomeX        int                `json:"home_x"`
	HomeY        int                `json:"home_y"`
	Lists        []*models.FarmList `json:"lists"`
}

// FarmStore manages named farm lists backed by a single JSON file.
// Mutations mark the store dirty; Flush commits, Close flushes.
type FarmStore struct {
	path  string
	mu    sync.RWMutex
	dirty bool
	state farmFile
}

// NewFarmStore loads the store at path. A missing file initializes an
// empty store. A corrupt or unreadable file also initializes an empty
// store, and the error is returned alongside it so the caller can warn
// the operator instead of crashing.
func NewFarmStore(path string) (*FarmStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	s := &FarmStore{path: path}
	s.state = emptyState()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read farm list: %w", err)
	}

	var loaded farmFile
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s, fmt.Errorf("corrupt farm list, starting empty: %w", err)
	}

	s.state = loaded
	s.normalize()
	return s, nil
}

func emptyState() farmFile {
	return farmFile{
		ActiveList:   DefaultListName,
		RaidInterval: 300,
		Tribe:        models.TribeRomans,
		ServerSpeed:  1,
		Lists: []*models.FarmList{
			{Name: DefaultListName, DefaultTroops: map[string]int{}},
		},
	}
}

// normalize repairs gaps in loaded state so the rest of the code can
// assume an active list always exists.
func (s *FarmStore) normalize() {
	if len(s.state.Lists) == 0 {
		s.state.Lists = []*models.FarmList{{Name: DefaultListName, DefaultTroops: map[string]int{}}}
	}
	if s.findList(s.state.ActiveList) == nil {
		s.state.ActiveList = s.state.Lists[0].Name
	}
	if s.state.ServerSpeed <= 0 {
		s.state.ServerSpeed = 1
	}
	if s.state.RaidInterval <= 0 {
		s.state.RaidInterval = 300
	}
	if !s.state.Tribe.Valid() {
		s.state.Tribe = models.TribeRomans
	}
}

func (s *FarmStore) findList(name string) *models.FarmList {
	for _, l := range s.state.Lists {
		if l.Name == name {
			return l
		}
	}
	return nil
}

func (s *FarmStore) activeList() *models.FarmList {
	return s.findList(s.state.ActiveList)
}

// ActiveList returns the name of the active list.
func (s *FarmStore) ActiveList() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveList
}

// ListNames returns every list name in creation order.
func (s *FarmStore) ListNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.state.Lists))
	for _, l := range s.state.Lists {
		names = append(names, l.Name)
	}
	return names
}

// List returns the named list, or false if it does not exist.
func (s *FarmStore) List(name string) (*models.FarmList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l := s.findList(name)
	return l, l != nil
}

// CreateList adds a new empty list.
func (s *FarmStore) CreateList(name string, defaultTroops map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findList(name) != nil {
		return fmt.Errorf("%w: %s", ErrListExists, name)
	}
	if defaultTroops == nil {
		defaultTroops = map[string]int{}
	}
	s.state.Lists = append(s.state.Lists, &models.FarmList{
		Name:          name,
		DefaultTroops: defaultTroops,
	})
	s.dirty = true
	return nil
}

// SwitchActiveList makes the named list active.
func (s *FarmStore) SwitchActiveList(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findList(name) == nil {
		return fmt.Errorf("%w: %s", ErrListNotFound, name)
	}
	if s.state.ActiveList != name {
		s.state.ActiveList = name
		s.dirty = true
	}
	return nil
}

// DeleteList removes a non-active list and all of its farms. Deleting
// the active list is rejected and leaves the store unchanged.
func (s *FarmStore) DeleteList(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == s.state.ActiveList {
		return fmt.Errorf("%w: %s", ErrActiveList, name)
	}
	for i, l := range s.state.Lists {
		if l.Name == name {
			s.state.Lists = append(s.state.Lists[:i], s.state.Lists[i+1:]...)
			s.dirty = true
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrListNotFound, name)
}

// AddFarm inserts a farm into the active list and returns its id.
// A nil troops map copies the list's default composition.
func (s *FarmStore) AddFarm(name string, x, y int, troops map[string]int, notes string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addFarmLocked(s.activeList(), name, x, y, troops, notes)
}

// AddFarmToList inserts a farm into the named list and returns its id.
func (s *FarmStore) AddFarmToList(listName, name string, x, y int, troops map[string]int, notes string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.findList(listName)
	if l == nil {
		return 0, fmt.Errorf("%w: %s", ErrListNotFound, listName)
	}
	return s.addFarmLocked(l, name, x, y, troops, notes)
}

func (s *FarmStore) addFarmLocked(l *models.FarmList, name string, x, y int, troops map[string]int, notes string) (int, error) {
	if troops == nil {
		troops = make(map[string]int, len(l.DefaultTroops))
		for k, v := range l.DefaultTroops {
			troops[k] = v
		}
	}

	l.Counter++
	farm := &models.FarmTarget{
		ID:      l.Counter,
		Name:    name,
		X:       x,
		Y:       y,
		Troops:  troops,
		Enabled: true,
		Notes:   notes,
	}
	l.Farms = append(l.Farms, farm)
	s.dirty = true
	return farm.ID, nil
}

// RemoveFarm deletes a farm from the active list. The id is never
// reused; the list counter only moves forward.
func (s *FarmStore) RemoveFarm(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.activeList()
	for i, f := range l.Farms {
		if f.ID == id {
			l.Farms = append(l.Farms[:i], l.Farms[i+1:]...)
			s.dirty = true
			return true
		}
	}
	return false
}

// ToggleFarm flips a farm's enabled flag. Returns false if the id is
// absent from the active list.
func (s *FarmStore) ToggleFarm(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.activeList().Get(id)
	if f == nil {
		return false
	}
	f.Enabled = !f.Enabled
	s.dirty = true
	return true
}

// UpdateFarmTroops replaces a farm's troop composition.
func (s *FarmStore) UpdateFarmTroops(id int, troops map[string]int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.activeList().Get(id)
	if f == nil {
		return false
	}
	f.Troops = troops
	s.dirty = true
	return true
}

// SetDefaultTroops sets the active list's default composition for
// newly added farms.
func (s *FarmStore) SetDefaultTroops(troops map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeList().DefaultTroops = troops
	s.dirty = true
}

// MoveFarmToList removes a farm from one list and re-inserts it into
// another. The farm receives a fresh id from the destination list's
// counter; ids are list-local.
func (s *FarmStore) MoveFarmToList(id int, fromList, toList string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.findList(fromList)
	if src == nil {
		return 0, fmt.Errorf("%w: %s", ErrListNotFound, fromList)
	}
	dst := s.findList(toList)
	if dst == nil {
		return 0, fmt.Errorf("%w: %s", ErrListNotFound, toList)
	}

	var farm *models.FarmTarget
	for i, f := range src.Farms {
		if f.ID == id {
			farm = f
			src.Farms = append(src.Farms[:i], src.Farms[i+1:]...)
			break
		}
	}
	if farm == nil {
		return 0, fmt.Errorf("%w: #%d in %s", ErrFarmNotFound, id, fromList)
	}

	dst.Counter++
	farm.ID = dst.Counter
	dst.Farms = append(dst.Farms, farm)
	s.dirty = true
	return farm.ID, nil
}

// IsCoordinateInAnyList reports which list, if any, already holds a
// farm at (x, y). Used by the scanner to avoid duplicate targets.
func (s *FarmStore) IsCoordinateInAnyList(x, y int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.state.Lists {
		for _, f := range l.Farms {
			if f.X == x && f.Y == y {
				return l.Name, true
			}
		}
	}
	return "", false
}

// GetFarm returns the farm with the given id from the active list.
func (s *FarmStore) GetFarm(id int) (*models.FarmTarget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := s.activeList().Get(id)
	return f, f != nil
}

// Farms returns the active list's farms in insertion order.
func (s *FarmStore) Farms() []*models.FarmTarget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l := s.activeList()
	farms := make([]*models.FarmTarget, len(l.Farms))
	copy(farms, l.Farms)
	return farms
}

// EnabledFarms returns the active list's enabled farms in insertion order.
func (s *FarmStore) EnabledFarms() []*models.FarmTarget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var farms []*models.FarmTarget
	for _, f := range s.activeList().Farms {
		if f.Enabled {
			farms = append(farms, f)
		}
	}
	return farms
}

// SnapshotFarms returns the active list name and value copies of its
// farms, safe to read while the scheduler keeps mutating the originals.
func (s *FarmStore) SnapshotFarms() (string, []models.FarmTarget) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l := s.activeList()
	farms := make([]models.FarmTarget, 0, len(l.Farms))
	for _, f := range l.Farms {
		c := *f
		c.Troops = make(map[string]int, len(f.Troops))
		for k, v := range f.Troops {
			c.Troops[k] = v
		}
		farms = append(farms, c)
	}
	return l.Name, farms
}

// Tribe returns the configured tribe.
func (s *FarmStore) Tribe() models.Tribe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Tribe
}

// ServerSpeed returns the server speed multiplier.
func (s *FarmStore) ServerSpeed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ServerSpeed
}

// Home returns the home village coordinates.
func (s *FarmStore) Home() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.HomeX, s.state.HomeY
}

// RaidInterval returns the configured raid cycle interval in seconds.
func (s *FarmStore) RaidInterval() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.RaidInterval
}

// SetServerSettings adopts the server identity from configuration.
// Only marks the store dirty when something actually changed.
func (s *FarmStore) SetServerSettings(tribe models.Tribe, serverSpeed, homeX, homeY int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if serverSpeed <= 0 {
		serverSpeed = 1
	}
	if !tribe.Valid() {
		tribe = models.TribeRomans
	}
	if s.state.Tribe == tribe && s.state.ServerSpeed == serverSpeed &&
		s.state.HomeX == homeX && s.state.HomeY == homeY {
		return
	}
	s.state.Tribe = tribe
	s.state.ServerSpeed = serverSpeed
	s.state.HomeX = homeX
	s.state.HomeY = homeY
	s.dirty = true
}

// Commit applies a mutation under the store lock and writes the result
// to disk. The scheduler uses it so its target updates never race with
// snapshot readers. On a write error the state stays dirty in memory
// and the next flush retries.
func (s *FarmStore) Commit(apply func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply()
	s.dirty = true
	if err := s.writeLocked(); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Flush writes the store to disk if it has unsaved changes.
func (s *FarmStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	if err := s.writeLocked(); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Close flushes any unsaved state.
func (s *FarmStore) Close() error {
	return s.Flush()
}

func (s *FarmStore) writeLocked() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal farm list: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write farm list: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename farm list: %w", err)
	}
	return nil
}

// Path returns the store's file path.
func (s *FarmStore) Path() string {
	return s.path
}
