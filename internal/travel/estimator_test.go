package travel

import (
	"testing"

	"github.com/gabe/raider/internal/models"
)

func TestEstimator_Distance(t *testing.T) {
	e := Estimator{HomeX: 0, HomeY: 0}
	if d := e.Distance(3, 4); d != 5 {
		t.Errorf("expected distance 5, got %f", d)
	}

	e = Estimator{HomeX: 10, HomeY: -20}
	if d := e.Distance(10, -20); d != 0 {
		t.Errorf("expected zero distance at home, got %f", d)
	}
}

func TestEstimator_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		tribe  models.Tribe
		speed  int
		x, y   int
		troops map[string]int
		want   int
	}{
		{
			// Legionnaires move 6 fields per hour, so 30 fields one
			// way is 5 hours and the round trip is 36000 seconds.
			name:   "single troop kind",
			tribe:  models.TribeRomans,
			speed:  1,
			x:      30,
			y:      0,
			troops: map[string]int{"t1": 10},
			want:   36000,
		},
		{
			// Rams (speed 3) pace the wave regardless of the faster
			// legionnaires riding along.
			name:   "slowest kind sets the pace",
			tribe:  models.TribeRomans,
			speed:  1,
			x:      30,
			y:      0,
			troops: map[string]int{"t1": 10, "t8": 1},
			want:   72000,
		},
		{
			name:   "server speed shortens travel",
			tribe:  models.TribeRomans,
			speed:  2,
			x:      30,
			y:      0,
			troops: map[string]int{"t1": 10},
			want:   18000,
		},
		{
			name:   "zero counts are ignored",
			tribe:  models.TribeRomans,
			speed:  1,
			x:      30,
			y:      0,
			troops: map[string]int{"t1": 10, "t8": 0},
			want:   36000,
		},
		{
			name:   "zero distance",
			tribe:  models.TribeRomans,
			speed:  1,
			x:      0,
			y:      0,
			troops: map[string]int{"t1": 10},
			want:   0,
		},
		{
			name:   "no troops",
			tribe:  models.TribeRomans,
			speed:  1,
			x:      30,
			y:      0,
			troops: nil,
			want:   0,
		},
		{
			name:   "unknown slots only",
			tribe:  models.TribeRomans,
			speed:  1,
			x:      30,
			y:      0,
			troops: map[string]int{"t99": 5},
			want:   0,
		},
		{
			// Phalanx moves 7 fields per hour for gauls.
			name:   "tribe speed table applies",
			tribe:  models.TribeGauls,
			speed:  1,
			x:      70,
			y:      0,
			troops: map[string]int{"t1": 5},
			want:   72000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Estimator{Tribe: tt.tribe, ServerSpeed: tt.speed}
			farm := &models.FarmTarget{X: tt.x, Y: tt.y, Troops: tt.troops}
			if got := e.RoundTrip(farm); got != tt.want {
				t.Errorf("RoundTrip() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimator_RoundTripMonotonicInDistance(t *testing.T) {
	e := Estimator{Tribe: models.TribeRomans, ServerSpeed: 1}
	troops := map[string]int{"t4": 5}

	prev := 0
	for _, x := range []int{5, 10, 20, 40, 80} {
		farm := &models.FarmTarget{X: x, Troops: troops}
		got := e.RoundTrip(farm)
		if got <= prev {
			t.Fatalf("expected travel time to grow with distance, got %d after %d", got, prev)
		}
		prev = got
	}
}

func TestEstimator_ZeroServerSpeedTreatedAsOne(t *testing.T) {
	slow := Estimator{Tribe: models.TribeRomans, ServerSpeed: 0}
	base := Estimator{Tribe: models.TribeRomans, ServerSpeed: 1}
	farm := &models.FarmTarget{X: 30, Troops: map[string]int{"t1": 1}}
	if slow.RoundTrip(farm) != base.RoundTrip(farm) {
		t.Error("expected unset server speed to behave like 1x")
	}
}
