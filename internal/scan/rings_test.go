package scan

import "testing"

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func chebyshev(a, b Coord) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func TestRingCoords_CountAndUniqueness(t *testing.T) {
	center := Coord{X: 5, Y: -3}
	for radius := 1; radius <= 4; radius++ {
		coords := RingCoords(center.X, center.Y, radius)

		// A square of side 2r+1 minus the center tile.
		want := (2*radius+1)*(2*radius+1) - 1
		if len(coords) != want {
			t.Errorf("radius %d: expected %d tiles, got %d", radius, want, len(coords))
		}

		seen := make(map[Coord]struct{})
		for _, c := range coords {
			if _, dup := seen[c]; dup {
				t.Errorf("radius %d: duplicate coordinate %+v", radius, c)
			}
			seen[c] = struct{}{}
			if c == center {
				t.Error("center tile must be excluded")
			}
		}
	}
}

func TestRingCoords_ClosestFirst(t *testing.T) {
	center := Coord{X: 0, Y: 0}
	coords := RingCoords(0, 0, 5)

	prev := 0
	for _, c := range coords {
		d := chebyshev(center, c)
		if d < prev {
			t.Fatalf("ring order broken: distance %d after %d at %+v", d, prev, c)
		}
		if d > prev+1 {
			t.Fatalf("ring skipped: distance jumped from %d to %d at %+v", prev, d, c)
		}
		prev = d
	}
	if prev != 5 {
		t.Errorf("expected outermost ring 5, got %d", prev)
	}
}

func TestRingCoords_ZeroRadius(t *testing.T) {
	if coords := RingCoords(0, 0, 0); len(coords) != 0 {
		t.Errorf("expected no tiles for radius 0, got %d", len(coords))
	}
}

func TestEstimateScanTime(t *testing.T) {
	tiles, seconds := EstimateScanTime(10)
	if tiles != 440 {
		t.Errorf("expected 440 tiles for radius 10, got %d", tiles)
	}
	if seconds != 220 {
		t.Errorf("expected 220 seconds, got %d", seconds)
	}
}
