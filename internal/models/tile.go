package models

// TileType classifies what occupies a map tile.
type TileType string

const (
	TileVillage         TileType = "village"
	TileOasisUnoccupied TileType = "oasis_unoccupied"
	TileOasisOccupied   TileType = "oasis_occupied"
	TileWilderness      TileType = "wilderness"
	TileEmpty           TileType = "empty"
)

// ScannedTile is the transient result of classifying one coordinate.
// It is never persisted; matches are converted into FarmTargets.
type ScannedTile struct {
	X          int
	Y          int
	Type       TileType
	Name       string
	PlayerName string
	Alliance   string
	Population int // 0 = unknown
	Distance   float64
	IsCapital  bool
	Tribe      string
}

// ScanFilter holds the criteria a scanned tile must pass before it is
// added as a farm target.
type ScanFilter struct {
	Radius                 int
	MaxPopulation          int
	IncludeNatars          bool
	IncludePlayerVillages  bool
	IncludeUnoccupiedOases bool
	IncludeOccupiedOases   bool
	ExcludeAlliances       []string // case-insensitive substring match
	ExcludePlayers         []string // case-insensitive substring match
}

// DefaultScanFilter returns the permissive baseline filter.
func DefaultScanFilter() ScanFilter {
	return ScanFilter{
		Radius:                 10,
		MaxPopulation:          50,
		IncludeNatars:          true,
		IncludePlayerVillages:  true,
		IncludeUnoccupiedOases: true,
		IncludeOccupiedOases:   true,
	}
}
