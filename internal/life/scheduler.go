package life

import (
	"sync"
	"time"
)

// DefaultInterval is the tick cadence used when a caller does not supply
// one. 150ms is comfortable for terminal repaints and stays configurable.
const DefaultInterval = 150 * time.Millisecond

// Scheduler runs an action repeatedly at a fixed interval. Implementations
// must not overlap invocations: one tick completes before the next begins.
// The returned cancel stops future ticks; an in-flight tick always runs to
// completion.
type Scheduler interface {
	Schedule(interval time.Duration, tick func()) (cancel func())
}

// TickerScheduler drives ticks from a background time.Ticker goroutine.
// Suitable for headless runs and tests; cooperative hosts should prefer
// LoopScheduler.
type TickerScheduler struct{}

// Schedule starts the ticker goroutine and returns its cancel.
func (TickerScheduler) Schedule(interval time.Duration, tick func()) func() {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-t.C:
				tick()
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			t.Stop()
			close(done)
		})
	}
}

// LoopScheduler defers ticks to a cooperative host loop: a TUI event loop
// or a frame callback. The host calls Fire on its own cadence; while
// nothing is scheduled Fire is a no-op, which is what makes Stop effective
// without cancelling the host's own timer.
type LoopScheduler struct {
	tick func()
}

// Schedule registers the tick action. The interval is the host's concern.
func (s *LoopScheduler) Schedule(_ time.Duration, tick func()) func() {
	s.tick = tick
	return func() { s.tick = nil }
}

// Fire runs the scheduled action, if any.
func (s *LoopScheduler) Fire() {
	if s.tick != nil {
		s.tick()
	}
}
