package life

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"lifecal/internal/grid"
	"lifecal/internal/surface"
	"lifecal/pkg/rng"
)

// Controller owns the run/stop state machine and drives repeated
// generation advancement through a host scheduler. All simulation mutation
// funnels through it, guarded by one mutex per full tick, so a read pass
// can never observe a partially written next generation.
type Controller struct {
	mu       sync.Mutex
	engine   *Engine
	renderer *Renderer
	sched    Scheduler
	interval time.Duration
	cancel   func()
	rng      *rng.RNG
	stats    Stats
	log      *zap.Logger
}

// NewController wires the engine and renderer to a scheduler. A nil logger
// disables diagnostics.
func NewController(engine *Engine, renderer *Renderer, sched Scheduler, interval time.Duration, seed int64, log *zap.Logger) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		engine:   engine,
		renderer: renderer,
		sched:    sched,
		interval: interval,
		rng:      rng.New(seed),
		log:      log,
	}
}

// Running reports whether a schedule is active.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

// Start begins repeated stepping. Calling Start while already running is a
// no-op; at most one schedule is ever active.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		return
	}
	c.cancel = c.sched.Schedule(c.interval, c.Step)
	c.log.Info("simulation started", zap.Duration("interval", c.interval))
}

// Stop cancels the active schedule. Calling Stop while stopped is a no-op.
// An in-flight tick completes; only future ticks are prevented.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel == nil {
		return
	}
	c.cancel()
	c.cancel = nil
	c.log.Info("simulation stopped", zap.Int("generations", c.stats.Generations))
}

// Step advances exactly one generation: full read pass, then full write
// pass.
func (c *Controller) Step() {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.engine.NextGeneration()
	c.renderer.Render(next)
	c.stats.Record(len(next))
}

// Clear sets every cell dead. Idempotent.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range c.engine.Index().Keys() {
		surface.SetDead(c.engine.Surface(), k)
	}
}

// Randomize independently sets each cell alive with probability pct/100,
// dead otherwise.
func (c *Controller) Randomize(pct int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	srf := c.engine.Surface()
	for _, k := range c.engine.Index().Keys() {
		if c.rng.Chance(pct) {
			surface.SetAlive(srf, k, c.renderer.PickColor())
		} else {
			surface.SetDead(srf, k)
		}
	}
}

// ApplyPattern sets exactly the named cells alive with the given color.
// Malformed keys and keys outside the grid are skipped with a diagnostic;
// other cells are untouched.
func (c *Controller) ApplyPattern(keys []grid.Key, col surface.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	srf := c.engine.Surface()
	for _, k := range keys {
		if !k.Valid() {
			c.log.Warn("skipping malformed date key", zap.String("key", string(k)))
			continue
		}
		if _, ok := c.engine.Index().Lookup(k); !ok {
			c.log.Debug("pattern key outside grid", zap.String("key", string(k)))
			continue
		}
		surface.SetAlive(srf, k, col)
	}
}

// Population counts currently alive cells.
func (c *Controller) Population() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, k := range c.engine.Index().Keys() {
		if surface.IsAlive(c.engine.Surface(), k) {
			n++
		}
	}
	return n
}

// Stats returns a snapshot of the run statistics.
func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
