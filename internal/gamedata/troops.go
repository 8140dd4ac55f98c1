// Package gamedata holds the static per-tribe troop rosters: movement
// speeds and display names keyed by rally-point slot (t1..t11).
package gamedata

import "github.com/gabe/raider/internal/models"

// troopSpeeds maps tribe -> slot key -> base speed in tiles/hour.
var troopSpeeds = map[models.Tribe]map[string]int{
	models.TribeRomans: {
		"t1": 6, "t2": 5, "t3": 7, "t4": 16, "t5": 14,
		"t6": 10, "t7": 4, "t8": 3, "t9": 4, "t10": 5, "t11": 35,
	},
	models.TribeGauls: {
		"t1": 7, "t2": 6, "t3": 17, "t4": 19, "t5": 16,
		"t6": 13, "t7": 4, "t8": 3, "t9": 5, "t10": 5, "t11": 35,
	},
	models.TribeTeutons: {
		"t1": 7, "t2": 7, "t3": 6, "t4": 9, "t5": 10,
		"t6": 9, "t7": 4, "t8": 3, "t9": 4, "t10": 5, "t11": 35,
	},
}

// unitNames maps tribe -> slot key -> display name.
var unitNames = map[models.Tribe]map[string]string{
	models.TribeRomans: {
		"t1": "Legionnaire", "t2": "Praetorian", "t3": "Imperian",
		"t4": "Equites Legati", "t5": "Equites Imperatoris", "t6": "Equites Caesaris",
		"t7": "Battering Ram", "t8": "Fire Catapult", "t9": "Senator",
		"t10": "Settler", "t11": "Hero",
	},
	models.TribeGauls: {
		"t1": "Phalanx", "t2": "Swordsman", "t3": "Pathfinder",
		"t4": "Theutates Thunder", "t5": "Druidrider", "t6": "Haeduan",
		"t7": "Battering Ram", "t8": "Trebuchet", "t9": "Chieftain",
		"t10": "Settler", "t11": "Hero",
	},
	models.TribeTeutons: {
		"t1": "Clubswinger", "t2": "Spearfighter", "t3": "Axefighter",
		"t4": "Scout", "t5": "Paladin", "t6": "Teutonic Knight",
		"t7": "Battering Ram", "t8": "Catapult", "t9": "Chief",
		"t10": "Settler", "t11": "Hero",
	},
}

// slotKeys in rally-point order.
var slotKeys = []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9", "t10", "t11"}

// Speed returns the base speed (tiles/hour) for a troop slot of the given
// tribe. The second return is false when the slot is unknown.
func Speed(tribe models.Tribe, slot string) (int, bool) {
	speeds, ok := troopSpeeds[tribe]
	if !ok {
		speeds = troopSpeeds[models.TribeRomans]
	}
	s, ok := speeds[slot]
	return s, ok
}

// UnitName returns the display name for a troop slot, falling back to the
// slot key itself for unknown entries.
func UnitName(tribe models.Tribe, slot string) string {
	names, ok := unitNames[tribe]
	if !ok {
		names = unitNames[models.TribeRomans]
	}
	if name, ok := names[slot]; ok {
		return name
	}
	return slot
}

// SlotKeys returns the troop slot keys in rally-point order.
func SlotKeys() []string {
	keys := make([]string, len(slotKeys))
	copy(keys, slotKeys)
	return keys
}
