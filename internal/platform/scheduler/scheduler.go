// Package scheduler drives the periodic market-tier refresh behind the
// dashboard ticker.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"te_dashboard/internal/platform/clock"
)

// Intervals the presentation layer may select. Zero means off.
var Intervals = []time.Duration{0, time.Minute, 5 * time.Minute, 15 * time.Minute}

// ValidInterval reports whether d is one of the selectable intervals.
func ValidInterval(d time.Duration) bool {
	for _, v := range Intervals {
		if d == v {
			return true
		}
	}
	return false
}

// RefreshFunc performs one forced refresh of the market tier.
type RefreshFunc func(ctx context.Context) error

// Scheduler runs RefreshFunc on a fixed interval selected by the user.
// Interval changes come only from explicit selection, never from cache
// logic. A manual RefreshNow shares the refresh path with timer ticks;
// duplicate in-flight fetches per fingerprint are collapsed downstream in
// the cache layer, so the two may overlap safely.
type Scheduler struct {
	refresh RefreshFunc
	clock   clock.Clock

	mu       sync.Mutex
	interval time.Duration
	ticker   clock.Ticker
	stop     chan struct{}
	lastRun  time.Time

	updates chan time.Time
}

// New creates a stopped Scheduler. clk nil defaults to the wall clock.
func New(refresh RefreshFunc, clk clock.Clock) *Scheduler {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Scheduler{
		refresh: refresh,
		clock:   clk,
		updates: make(chan time.Time, 1),
	}
}

// Updates notifies the presentation layer after each completed refresh.
// Delivery is best-effort; a slow consumer misses ticks instead of
// blocking the scheduler.
func (s *Scheduler) Updates() <-chan time.Time {
	return s.updates
}

// Interval returns the currently selected interval, zero when off.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// LastRun returns the completion time of the most recent refresh, zero if
// none has run.
func (s *Scheduler) LastRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun
}

// SetInterval switches the timer to one of the selectable intervals.
// Zero stops it. Only explicit user selection calls this.
func (s *Scheduler) SetInterval(d time.Duration) error {
	if !ValidInterval(d) {
		return fmt.Errorf("interval %s not selectable", d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if d == s.interval {
		return nil
	}
	s.interval = d

	// Stop the running loop before starting one with the new period.
	if s.stop != nil {
		close(s.stop)
		s.ticker.Stop()
		s.stop = nil
		s.ticker = nil
	}
	if d == 0 {
		slog.Info("auto-refresh off")
		return nil
	}

	s.ticker = s.clock.NewTicker(d)
	s.stop = make(chan struct{})
	go s.loop(s.ticker, s.stop)
	slog.Info("auto-refresh on", "interval", d)
	return nil
}

// Stop turns the timer off.
func (s *Scheduler) Stop() {
	_ = s.SetInterval(0)
}

func (s *Scheduler) loop(t clock.Ticker, stop chan struct{}) {
	for {
		select {
		case <-t.C():
			s.runRefresh()
		case <-stop:
			return
		}
	}
}

// RefreshNow performs one forced refresh immediately, independent of the
// timer state.
func (s *Scheduler) RefreshNow(ctx context.Context) error {
	err := s.refresh(ctx)
	s.finish()
	return err
}

func (s *Scheduler) runRefresh() {
	if err := s.refresh(context.Background()); err != nil {
		slog.Warn("scheduled refresh failed", "error", err)
	}
	s.finish()
}

// finish records the run and notifies without blocking.
func (s *Scheduler) finish() {
	now := s.clock.Now()
	s.mu.Lock()
	s.lastRun = now
	s.mu.Unlock()

	select {
	case s.updates <- now:
	default:
	}
}
