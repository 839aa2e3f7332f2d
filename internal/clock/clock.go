// Package clock provides the playback clock the engine is driven by: a
// position that advances in real time and can be seeked, delivering
// periodic time-update callbacks the way a media element does.
package clock

import (
	"context"
	"sync"
	"time"
)

// Clock simulates audio playback over a fixed duration.
type Clock struct {
	mu       sync.Mutex
	pos      float64 // seconds
	duration float64 // seconds
	rate     float64
	paused   bool
}

func New(duration float64) *Clock {
	return &Clock{duration: duration, rate: 1}
}

// Seek rewrites the position, clamped to the media bounds. Fire and
// forget: the next tick reports the new position.
func (c *Clock) Seek(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pos = clamp(seconds, 0, c.duration)
}

func (c *Clock) Position() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

func (c *Clock) Duration() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// SetRate changes playback speed; values at or below zero are ignored.
func (c *Clock) SetRate(rate float64) {
	if rate <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate = rate
}

// TogglePause flips the paused state and returns the new value.
func (c *Clock) TogglePause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = !c.paused
	return c.paused
}

// Tick advances the position by dt seconds of wall time (scaled by the
// playback rate) and returns the new position. Paused clocks hold still.
func (c *Clock) Tick(dt float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		c.pos = clamp(c.pos+dt*c.rate, 0, c.duration)
	}
	return c.pos
}

// Ended reports whether the position has reached the media duration.
func (c *Clock) Ended() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos >= c.duration
}

// Run delivers time updates at the given interval until the media ends
// or the context is cancelled. onTick runs on Run's goroutine, one call
// at a time, matching the single-threaded event model the engine
// expects.
func (c *Clock) Run(ctx context.Context, interval time.Duration, onTick func(at float64)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	onTick(c.Position())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			onTick(c.Tick(interval.Seconds()))
			if c.Ended() {
				return
			}
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
