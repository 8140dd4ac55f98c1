package models

// Tribe identifies one of the three playable factions.
type Tribe string

const (
	TribeRomans  Tribe = "romans"
	TribeGauls   Tribe = "gauls"
	TribeTeutons Tribe = "teutons"
)

// Valid reports whether the tribe is one of the three playable factions.
func (t Tribe) Valid() bool {
	switch t {
	case TribeRomans, TribeGauls, TribeTeutons:
		return true
	}
	return false
}

// FarmTarget is one raidable coordinate inside a farm list.
type FarmTarget struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	X          int            `json:"x"`
	Y          int            `json:"y"`
	Troops     map[string]int `json:"troops"` // troop slot key (t1..t11) -> count
	LastRaid   string         `json:"last_raid"`
	RaidsSent  int            `json:"raids_sent"`
	Enabled    bool           `json:"enabled"`
	Notes      string         `json:"notes"`
	TravelTime int            `json:"travel_time"`  // round-trip seconds, 0 = unknown
	NextRaidAt int64          `json:"next_raid_at"` // unix seconds, 0 or past = due now
}

// HasTroops reports whether any troop slot carries a positive count.
// Targets without troops cannot be raided and are skipped, not failed.
func (f *FarmTarget) HasTroops() bool {
	for _, count := range f.Troops {
		if count > 0 {
			return true
		}
	}
	return false
}

// FarmList is a named, ordered collection of farm targets. Each list owns
// its own monotonic id counter (ids are list-local, never reused) and a
// default troop composition applied to farms added without one.
type FarmList struct {
	Name          string         `json:"name"`
	Counter       int            `json:"counter"`
	DefaultTroops map[string]int `json:"default_troops"`
	Farms         []*FarmTarget  `json:"farms"`
}

// Get returns the farm with the given id, or nil.
func (l *FarmList) Get(id int) *FarmTarget {
	for _, f := range l.Farms {
		if f.ID == id {
			return f
		}
	}
	return nil
}
