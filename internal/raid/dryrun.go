package raid

import (
	"context"

	"github.com/gabe/raider/internal/logger"
	"github.com/gabe/raider/internal/models"
)

// DryRunDispatcher reports every raid as sent without driving a
// browser. It is the default dispatcher until a browser-backed one is
// wired in, and leaves OneWayTravelSecs at 0 so scheduling falls back
// to the travel estimate.
type DryRunDispatcher struct {
	log logger.Logger
}

// NewDryRunDispatcher creates a dry-run dispatcher.
func NewDryRunDispatcher(log logger.Logger) *DryRunDispatcher {
	return &DryRunDispatcher{log: log}
}

// Dispatch logs the would-be raid and succeeds.
func (d *DryRunDispatcher) Dispatch(ctx context.Context, target *models.FarmTarget) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	d.log.Info("dry run: would send raid",
		logger.String("farm", target.Name),
		logger.Int("x", target.X),
		logger.Int("y", target.Y))
	return Result{}, nil
}
