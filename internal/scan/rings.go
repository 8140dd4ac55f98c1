package scan

// Coord is one map coordinate.
type Coord struct {
	X int
	Y int
}

// RingCoords generates the coordinates around (centerX, centerY) ring
// by ring: all tiles at Chebyshev distance r, for r = 1..radius, so the
// closest tiles are visited first. The center itself is excluded.
func RingCoords(centerX, centerY, radius int) []Coord {
	var coords []Coord
	seen := make(map[Coord]struct{})

	push := func(x, y int) {
		c := Coord{X: x, Y: y}
		if _, dup := seen[c]; dup {
			return
		}
		seen[c] = struct{}{}
		coords = append(coords, c)
	}

	for r := 1; r <= radius; r++ {
		// Top edge, left to right.
		for dx := -r; dx <= r; dx++ {
			push(centerX+dx, centerY+r)
		}
		// Right edge, top to bottom.
		for dy := r - 1; dy >= -r; dy-- {
			push(centerX+r, centerY+dy)
		}
		// Bottom edge, right to left.
		for dx := r - 1; dx >= -r; dx-- {
			push(centerX+dx, centerY-r)
		}
		// Left edge, bottom to top.
		for dy := -r + 1; dy <= r-1; dy++ {
			push(centerX-r, centerY+dy)
		}
	}

	return coords
}

// EstimateScanTime returns the tile count for a radius and a rough
// duration in seconds, assuming ~0.5s per tile for fetch and parse.
func EstimateScanTime(radius int) (tiles int, seconds int) {
	for r := 1; r <= radius; r++ {
		tiles += 8 * r
	}
	return tiles, tiles / 2
}
