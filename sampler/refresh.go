package sampler

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// DefaultRefreshInterval is how often a displayed sample is redrawn.
const DefaultRefreshInterval = 15 * time.Second

// Refresher redraws a sample on a fixed interval.
type Refresher struct {
	clock    quartz.Clock
	interval time.Duration
	rng      IntSource
}

// NewRefresher creates a refresher. A non-positive interval uses
// DefaultRefreshInterval.
func NewRefresher(clock quartz.Clock, interval time.Duration, rng IntSource) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{clock: clock, interval: interval, rng: rng}
}

// Interval returns the redraw interval.
func (r *Refresher) Interval() time.Duration {
	return r.interval
}

// Start delivers one sample immediately and then one per interval until ctx
// is done or fn returns an error. Wait on the returned waiter to block until
// the refresher stops.
func (r *Refresher) Start(ctx context.Context, combos map[string][]float64, fn func(Sample) error) (quartz.Waiter, error) {
	if err := fn(ResolveSample(combos, r.rng)); err != nil {
		return nil, err
	}
	return r.clock.TickerFunc(ctx, r.interval, func() error {
		return fn(ResolveSample(combos, r.rng))
	}, "sampler", "refresh"), nil
}
