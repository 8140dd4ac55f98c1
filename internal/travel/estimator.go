// Package travel estimates round-trip raid durations from map geometry
// and troop composition. The estimate is a fallback: when the dispatcher
// can read the game's own travel duration, that value wins.
package travel

import (
	"math"

	"github.com/gabe/raider/internal/gamedata"
	"github.com/gabe/raider/internal/models"
)

// Estimator computes travel times for one home village.
type Estimator struct {
	HomeX       int
	HomeY       int
	Tribe       models.Tribe
	ServerSpeed int
}

// Distance returns the Euclidean distance from home to (x, y).
func (e Estimator) Distance(x, y int) float64 {
	return math.Hypot(float64(x-e.HomeX), float64(y-e.HomeY))
}

// RoundTrip estimates the round-trip duration in seconds for raiding
// the target with its configured troops. The slowest troop kind present
// sets the pace. Returns 0 when the duration cannot be estimated: zero
// distance, no troops, or no troop slot known to the speed table.
func (e Estimator) RoundTrip(farm *models.FarmTarget) int {
	distance := e.Distance(farm.X, farm.Y)
	if distance == 0 {
		return 0
	}

	slowest := 0
	for slot, count := range farm.Troops {
		if count <= 0 {
			continue
		}
		speed, ok := gamedata.Speed(e.Tribe, slot)
		if !ok {
			continue
		}
		if slowest == 0 || speed < slowest {
			slowest = speed
		}
	}
	if slowest == 0 {
		return 0
	}

	mult := e.ServerSpeed
	if mult <= 0 {
		mult = 1
	}
	effective := float64(slowest * mult)

	oneWayHours := distance / effective
	return int(oneWayHours * 2 * 3600)
}
