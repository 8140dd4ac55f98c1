package scan

import (
	"context"

	"github.com/gabe/raider/internal/logger"
	"github.com/gabe/raider/internal/models"
)

// DryRunClassifier reports every coordinate as wilderness without
// fetching anything. It stands in for the browser-backed classifier so
// scans can be exercised end to end; nothing gets added.
type DryRunClassifier struct {
	log logger.Logger
}

// NewDryRunClassifier creates a dry-run classifier.
func NewDryRunClassifier(log logger.Logger) *DryRunClassifier {
	return &DryRunClassifier{log: log}
}

// Classify returns a wilderness tile for every coordinate.
func (d *DryRunClassifier) Classify(ctx context.Context, x, y int) (*models.ScannedTile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.log.Debug("dry run: would classify tile", logger.Int("x", x), logger.Int("y", y))
	return &models.ScannedTile{X: x, Y: y, Type: models.TileWilderness}, nil
}
