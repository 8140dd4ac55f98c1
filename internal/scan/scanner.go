// Package scan walks map coordinates around a center point, classifies
// each tile through an external classifier, and auto-adds tiles that
// pass the filter to a farm list.
package scan

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabe/raider/internal/logger"
	"github.com/gabe/raider/internal/models"
)

// Classifier identifies what occupies one map coordinate. A nil tile
// or an error means the coordinate could not be read; the scan counts
// it and moves on.
type Classifier interface {
	Classify(ctx context.Context, x, y int) (*models.ScannedTile, error)
}

// Store is the slice of the farm store the scanner needs.
type Store interface {
	IsCoordinateInAnyList(x, y int) (string, bool)
	AddFarmToList(listName, name string, x, y int, troops map[string]int, notes string) (int, error)
	Flush() error
}

// History is the scan-history surface the scanner needs.
type History interface {
	Contains(x, y int) bool
	Record(x, y int)
	Flush() error
}

// Stats is the contract a completed scan reports.
type Stats struct {
	Scanned          int
	Found            int
	Added            int
	SkippedDuplicate int
	SkippedFilter    int
	Errors           int
}

// Scanner runs map scans.
type Scanner struct {
	store      Store
	history    History
	classifier Classifier
	log        logger.Logger
}

// New creates a scanner.
func New(store Store, history History, classifier Classifier, log logger.Logger) *Scanner {
	return &Scanner{
		store:      store,
		history:    history,
		classifier: classifier,
		log:        log,
	}
}

// Scan classifies the tiles around (centerX, centerY) out to
// filter.Radius and adds every match to targetList. Coordinates already
// present in any list or in scan history are skipped before
// classification, which is the expensive step. Every coordinate that is
// classified, successfully or not, is recorded in history.
func (s *Scanner) Scan(ctx context.Context, centerX, centerY int, filter models.ScanFilter, targetList string) (Stats, error) {
	var stats Stats

	coords := RingCoords(centerX, centerY, filter.Radius)
	s.log.Info("scanning map",
		logger.Int("tiles", len(coords)),
		logger.Int("center_x", centerX),
		logger.Int("center_y", centerY),
		logger.Int("radius", filter.Radius),
		logger.String("target_list", targetList))

	for _, c := range coords {
		if ctx.Err() != nil {
			s.log.Info("scan interrupted",
				logger.Int("scanned", stats.Scanned),
				logger.Int("added", stats.Added))
			break
		}

		if list, ok := s.store.IsCoordinateInAnyList(c.X, c.Y); ok {
			s.log.Debug("coordinate already in list",
				logger.Int("x", c.X), logger.Int("y", c.Y),
				logger.String("list", list))
			stats.SkippedDuplicate++
			continue
		}
		if s.history.Contains(c.X, c.Y) {
			stats.SkippedDuplicate++
			continue
		}

		tile, err := s.classifier.Classify(ctx, c.X, c.Y)
		stats.Scanned++
		s.history.Record(c.X, c.Y)

		if err != nil || tile == nil {
			stats.Errors++
			if err != nil {
				s.log.Warn("tile classification failed",
					logger.Int("x", c.X), logger.Int("y", c.Y),
					logger.Error(err))
			}
			continue
		}

		if tile.Type == models.TileEmpty || tile.Type == models.TileWilderness {
			continue
		}
		if !MatchesFilter(tile, filter) {
			stats.SkippedFilter++
			continue
		}
		stats.Found++

		name := tile.Name
		if name == "" {
			name = fmt.Sprintf("(%d|%d)", c.X, c.Y)
		}
		notes := fmt.Sprintf("pop:%d type:%s player:%s", tile.Population, tile.Type, tile.PlayerName)

		if _, err := s.store.AddFarmToList(targetList, name, c.X, c.Y, nil, notes); err != nil {
			s.log.Warn("failed to add farm",
				logger.Int("x", c.X), logger.Int("y", c.Y),
				logger.Error(err))
			continue
		}
		stats.Added++
	}

	if err := s.history.Flush(); err != nil {
		s.log.Error("failed to save scan history", logger.Error(err))
	}
	if err := s.store.Flush(); err != nil {
		s.log.Error("failed to save farm list", logger.Error(err))
	}

	s.log.Info("scan complete",
		logger.Int("scanned", stats.Scanned),
		logger.Int("found", stats.Found),
		logger.Int("added", stats.Added),
		logger.Int("skipped_duplicate", stats.SkippedDuplicate),
		logger.Int("skipped_filter", stats.SkippedFilter),
		logger.Int("errors", stats.Errors))
	return stats, ctx.Err()
}

// MatchesFilter applies the filter chain: type toggles, Natar
// exclusion, max population (0 = unknown, allowed), then alliance and
// player substring exclusions, both case-insensitive.
func MatchesFilter(tile *models.ScannedTile, filter models.ScanFilter) bool {
	switch tile.Type {
	case models.TileOasisUnoccupied:
		if !filter.IncludeUnoccupiedOases {
			return false
		}
	case models.TileOasisOccupied:
		if !filter.IncludeOccupiedOases {
			return false
		}
	case models.TileVillage:
		if !filter.IncludePlayerVillages {
			return false
		}
	}

	if !filter.IncludeNatars && strings.Contains(strings.ToLower(tile.PlayerName), "natar") {
		return false
	}

	if tile.Population > 0 && tile.Population > filter.MaxPopulation {
		return false
	}

	if tile.Alliance != "" {
		lower := strings.ToLower(tile.Alliance)
		for _, excluded := range filter.ExcludeAlliances {
			if strings.Contains(lower, strings.ToLower(excluded)) {
				return false
			}
		}
	}

	if tile.PlayerName != "" {
		lower := strings.ToLower(tile.PlayerName)
		for _, excluded := range filter.ExcludePlayers {
			if strings.Contains(lower, strings.ToLower(excluded)) {
				return false
			}
		}
	}

	return true
}
