package clock

import (
	"context"
	"testing"
	"time"
)

func TestSeekClampsToBounds(t *testing.T) {
	c := New(100)
	if c.Duration() != 100 {
		t.Fatalf("expected duration 100, got %v", c.Duration())
	}

	c.Seek(50)
	if c.Position() != 50 {
		t.Errorf("expected 50, got %v", c.Position())
	}

	c.Seek(-10)
	if c.Position() != 0 {
		t.Errorf("expected clamp to 0, got %v", c.Position())
	}

	c.Seek(500)
	if c.Position() != 100 {
		t.Errorf("expected clamp to duration, got %v", c.Position())
	}
}

func TestTickAdvancesByRate(t *testing.T) {
	c := New(100)

	if got := c.Tick(0.25); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}

	c.SetRate(2)
	if got := c.Tick(0.25); got != 0.75 {
		t.Errorf("expected 0.75, got %v", got)
	}

	// Invalid rates are ignored.
	c.SetRate(0)
	if got := c.Tick(0.25); got != 1.25 {
		t.Errorf("expected 1.25, got %v", got)
	}
}

func TestTickStopsAtDuration(t *testing.T) {
	c := New(1)
	c.Seek(0.9)
	if got := c.Tick(0.5); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
	if !c.Ended() {
		t.Error("expected clock to report ended")
	}
}

func TestPauseHoldsPosition(t *testing.T) {
	c := New(10)
	if !c.TogglePause() {
		t.Fatal("expected paused")
	}
	if got := c.Tick(1); got != 0 {
		t.Errorf("paused clock moved to %v", got)
	}
	if c.TogglePause() {
		t.Fatal("expected unpaused")
	}
	if got := c.Tick(1); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestRunDeliversTicksUntilEnd(t *testing.T) {
	c := New(0.05)
	var ticks []float64

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c.Run(ctx, 10*time.Millisecond, func(at float64) {
		ticks = append(ticks, at)
	})

	if len(ticks) < 2 {
		t.Fatalf("expected several ticks, got %d", len(ticks))
	}
	if last := ticks[len(ticks)-1]; last != 0.05 {
		t.Errorf("expected final tick at duration, got %v", last)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	c := New(1000)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		c.Run(ctx, 5*time.Millisecond, func(float64) {})
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}
