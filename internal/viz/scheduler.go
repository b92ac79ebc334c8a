package viz

import (
	"time"

	"netglobe/internal/debug"
)

// Scheduler is an owned, restartable tick source. The owner selects on C();
// a stopped scheduler returns a nil channel, which never fires, so a
// stale loop cannot keep drawing after Stop.
type Scheduler struct {
	name     string
	interval time.Duration
	ticker   *time.Ticker
}

// NewScheduler creates a stopped scheduler
func NewScheduler(name string, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Scheduler{
		name:     name,
		interval: interval,
	}
}

// Start begins ticking; starting a running scheduler is a no-op
func (s *Scheduler) Start() {
	if s.ticker != nil {
		return
	}
	s.ticker = time.NewTicker(s.interval)
	debug.Event("scheduler started", "name", s.name, "interval", s.interval)
}

// Stop halts ticking; stopping a stopped scheduler is a no-op
func (s *Scheduler) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
	debug.Event("scheduler stopped", "name", s.name)
}

// Running reports whether the scheduler is ticking
func (s *Scheduler) Running() bool {
	return s.ticker != nil
}

// C returns the tick channel, or nil when stopped
func (s *Scheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// Interval returns the tick period
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}
