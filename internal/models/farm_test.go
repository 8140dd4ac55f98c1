package models

import "testing"

func TestTribe_Valid(t *testing.T) {
	for _, tribe := range []Tribe{TribeRomans, TribeGauls, TribeTeutons} {
		if !tribe.Valid() {
			t.Errorf("expected %s to be valid", tribe)
		}
	}
	for _, tribe := range []Tribe{"", "huns", "ROMANS"} {
		if tribe.Valid() {
			t.Errorf("expected %q to be invalid", tribe)
		}
	}
}

func TestFarmTarget_HasTroops(t *testing.T) {
	tests := []struct {
		name   string
		troops map[string]int
		want   bool
	}{
		{"nil map", nil, false},
		{"empty map", map[string]int{}, false},
		{"all zero counts", map[string]int{"t1": 0, "t4": 0}, false},
		{"one positive count", map[string]int{"t1": 0, "t4": 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &FarmTarget{Troops: tt.troops}
			if got := f.HasTroops(); got != tt.want {
				t.Errorf("HasTroops() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFarmList_Get(t *testing.T) {
	list := &FarmList{Farms: []*FarmTarget{
		{ID: 1, Name: "a"},
		{ID: 3, Name: "b"},
	}}
	if f := list.Get(3); f == nil || f.Name != "b" {
		t.Errorf("expected farm b, got %+v", f)
	}
	if f := list.Get(2); f != nil {
		t.Errorf("expected nil for missing id, got %+v", f)
	}
}
