// Package raid decides when each farm target is due and drives the
// dispatcher. All dispatching is strictly sequential: the underlying
// browser driver cannot be shared, so there is one loop and one target
// in flight at a time.
package raid

import (
	"context"
	"time"

	"github.com/gabe/raider/internal/logger"
	"github.com/gabe/raider/internal/models"
	"github.com/gabe/raider/internal/travel"
)

// Result is what the dispatcher reports back after sending a raid.
// OneWayTravelSecs is the authoritative one-way duration parsed from
// the game's confirmation page, or 0 when it could not be read.
type Result struct {
	OneWayTravelSecs int
}

// Dispatcher sends a single raid. Implementations drive the browser;
// this package never touches it directly.
type Dispatcher interface {
	Dispatch(ctx context.Context, target *models.FarmTarget) (Result, error)
}

// Store is the slice of the farm store the scheduler needs. Commit
// runs a target mutation under the store lock and persists it.
type Store interface {
	EnabledFarms() []*models.FarmTarget
	Commit(apply func()) error
}

// WaveStats summarizes a one-shot raid wave.
type WaveStats struct {
	Sent    int
	Failed  int
	Skipped int
}

// LoopStats summarizes a continuous scheduling run.
type LoopStats struct {
	Sent   int
	Failed int
}

// Scheduler owns the raid timing state machine. Per target:
// due -> dispatch -> scheduled (now + travel time) on success,
// or retry backoff (now + 60s) on failure.
type Scheduler struct {
	store      Store
	dispatcher Dispatcher
	estimator  travel.Estimator
	log        logger.Logger
	poll       time.Duration
	backoff    time.Duration
	delay      time.Duration
	now        func() time.Time
	onDispatch func(target *models.FarmTarget, ok bool)
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithPollInterval sets the pause between scheduling passes.
func WithPollInterval(d time.Duration) Option {
	return func(s *Scheduler) { s.poll = d }
}

// WithBackoff sets the retry delay after a failed dispatch.
func WithBackoff(d time.Duration) Option {
	return func(s *Scheduler) { s.backoff = d }
}

// WithDispatchDelay sets the pause between consecutive dispatches.
func WithDispatchDelay(d time.Duration) Option {
	return func(s *Scheduler) { s.delay = d }
}

// WithClock injects a time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithOnDispatch sets a callback invoked after every dispatch attempt.
func WithOnDispatch(fn func(target *models.FarmTarget, ok bool)) Option {
	return func(s *Scheduler) { s.onDispatch = fn }
}

// New creates a scheduler.
func New(store Store, dispatcher Dispatcher, estimator travel.Estimator, log logger.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:      store,
		dispatcher: dispatcher,
		estimator:  estimator,
		log:        log,
		poll:       7 * time.Second,
		backoff:    60 * time.Second,
		delay:      500 * time.Millisecond,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunWave dispatches once to every enabled target with a non-empty
// troop composition, regardless of schedule. Targets without troops
// are counted as skipped.
func (s *Scheduler) RunWave(ctx context.Context) WaveStats {
	var stats WaveStats

	for _, farm := range s.store.EnabledFarms() {
		if ctx.Err() != nil {
			break
		}
		if !farm.HasTroops() {
			s.log.Info("skipping farm without troops",
				logger.String("farm", farm.Name),
				logger.Int("id", farm.ID))
			stats.Skipped++
			continue
		}
		if s.dispatchOne(ctx, farm) {
			stats.Sent++
		} else {
			stats.Failed++
		}
		s.pause(ctx)
	}

	s.log.Info("raid wave complete",
		logger.Int("sent", stats.Sent),
		logger.Int("failed", stats.Failed),
		logger.Int("skipped", stats.Skipped))
	return stats
}

// Run is the continuous scheduling loop. It starts with an initial
// sweep of every due or unscheduled target, then polls until the
// context is cancelled, dispatching targets as their troops return.
// Cancellation is checked between targets, never mid-dispatch.
func (s *Scheduler) Run(ctx context.Context) LoopStats {
	var stats LoopStats

	// Initial wave: anything due or never scheduled.
	now := s.now().Unix()
	for _, farm := range s.store.EnabledFarms() {
		if ctx.Err() != nil {
			return stats
		}
		if !farm.HasTroops() {
			continue
		}
		if farm.NextRaidAt <= now {
			s.record(&stats, s.dispatchOne(ctx, farm))
			s.pause(ctx)
		}
	}

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("raid loop stopped",
				logger.Int("sent", stats.Sent),
				logger.Int("failed", stats.Failed))
			return stats
		case <-ticker.C:
			s.pass(ctx, &stats)
		}
	}
}

// pass dispatches every enabled target whose schedule has come due.
// Exactly one attempt per due target, in list insertion order.
func (s *Scheduler) pass(ctx context.Context, stats *LoopStats) {
	now := s.now().Unix()
	for _, farm := range s.store.EnabledFarms() {
		if ctx.Err() != nil {
			return
		}
		if !farm.HasTroops() {
			continue
		}
		if farm.NextRaidAt > 0 && now >= farm.NextRaidAt {
			s.log.Info("troops returned, re-raiding",
				logger.String("farm", farm.Name),
				logger.Int("x", farm.X),
				logger.Int("y", farm.Y))
			s.record(stats, s.dispatchOne(ctx, farm))
			s.pause(ctx)
		}
	}
}

func (s *Scheduler) record(stats *LoopStats, ok bool) {
	if ok {
		stats.Sent++
	} else {
		stats.Failed++
	}
}

// dispatchOne sends a single raid and reschedules the target. On
// success next_raid_at = now + round-trip travel time, preferring the
// authoritative duration from the dispatcher over the estimate. On
// failure next_raid_at = now + backoff.
func (s *Scheduler) dispatchOne(ctx context.Context, farm *models.FarmTarget) bool {
	now := s.now()

	res, err := s.dispatcher.Dispatch(ctx, farm)
	if err != nil {
		s.log.Warn("raid failed, backing off",
			logger.String("farm", farm.Name),
			logger.Duration("backoff", s.backoff),
			logger.Error(err))
		s.commit(farm, false, func() {
			farm.NextRaidAt = now.Unix() + int64(s.backoff/time.Second)
		})
		return false
	}

	roundTrip := farm.TravelTime
	if res.OneWayTravelSecs > 0 {
		roundTrip = 2 * res.OneWayTravelSecs
	} else if roundTrip == 0 {
		roundTrip = s.estimator.RoundTrip(farm)
	}

	s.commit(farm, true, func() {
		farm.TravelTime = roundTrip
		if roundTrip > 0 {
			farm.NextRaidAt = now.Unix() + int64(roundTrip)
		}
		farm.LastRaid = now.Format("15:04:05")
		farm.RaidsSent++
	})

	s.log.Info("raid sent",
		logger.String("farm", farm.Name),
		logger.Int("x", farm.X),
		logger.Int("y", farm.Y),
		logger.Int("round_trip_secs", roundTrip))
	return true
}

// commit applies the reschedule under the store lock and persists it.
// A failed write is logged and the state stays in memory; the next
// commit retries the write.
func (s *Scheduler) commit(farm *models.FarmTarget, ok bool, apply func()) {
	if err := s.store.Commit(apply); err != nil {
		s.log.Error("failed to save farm list", logger.Error(err))
	}
	if s.onDispatch != nil {
		s.onDispatch(farm, ok)
	}
}

// pause waits the inter-dispatch delay, returning early on cancellation.
func (s *Scheduler) pause(ctx context.Context) {
	if s.delay <= 0 {
		return
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
