package services

import (
	"context"
	"sync"
	"time"

	"floatclock/internal/clock"
	"floatclock/internal/events"
)

// ClockService pushes a rendered clock.View to the page on every tick and
// whenever the settings change.
type ClockService struct {
	prefs    PreferencesService
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewClockService(prefs PreferencesService, interval time.Duration) *ClockService {
	if interval <= 0 || interval > time.Second {
		interval = time.Second
	}
	return &ClockService{prefs: prefs, interval: interval, now: time.Now}
}

// Current renders the view for the present instant.
func (c *ClockService) Current() clock.View {
	if c.prefs.State() != StateReady {
		return clock.Placeholder()
	}
	return clock.Render(c.now(), c.prefs.Settings())
}

// Startup starts the tick loop; it also re-renders on every settings change.
func (c *ClockService) Startup(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	c.ctx = ctx
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	unsubscribe := c.prefs.Subscribe(func(Change) { c.emit() })

	go func() {
		defer c.wg.Done()
		defer unsubscribe()
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		c.emit()
		for {
			select {
			case <-ticker.C:
				c.emit()
			case <-loopCtx.Done():
				return
			}
		}
	}()
}

func (c *ClockService) emit() {
	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()
	events.Emit(ctx, events.ClockTick, c.Current())
}

func (c *ClockService) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}
