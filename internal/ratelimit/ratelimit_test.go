package ratelimit

import (
	"testing"
	"time"
)

// fakeClock steps time manually so grant windows are deterministic.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGate(cooldown time.Duration) (*Gate, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	g := New(cooldown)
	g.now = clock.now
	return g, clock
}

func TestFirstAcquireAlwaysGranted(t *testing.T) {
	g, _ := newTestGate(2 * time.Second)
	if !g.TryAcquire() {
		t.Fatal("first TryAcquire on a fresh gate must be granted")
	}
}

func TestDeniedWithinCooldown(t *testing.T) {
	g, clock := newTestGate(2 * time.Second)
	if !g.TryAcquire() {
		t.Fatal("first TryAcquire must be granted")
	}

	clock.advance(500 * time.Millisecond)
	if g.TryAcquire() {
		t.Error("TryAcquire within cooldown must be denied")
	}

	clock.advance(1 * time.Second)
	if g.TryAcquire() {
		t.Error("TryAcquire still within cooldown must be denied")
	}
}

func TestGrantedAfterCooldown(t *testing.T) {
	g, clock := newTestGate(2 * time.Second)
	if !g.TryAcquire() {
		t.Fatal("first TryAcquire must be granted")
	}

	clock.advance(2 * time.Second)
	if !g.TryAcquire() {
		t.Error("TryAcquire after exactly one cooldown must be granted")
	}
}

func TestDenialLeavesStateUnchanged(t *testing.T) {
	g, clock := newTestGate(2 * time.Second)
	if !g.TryAcquire() {
		t.Fatal("first TryAcquire must be granted")
	}

	// A denied call must not push the window forward.
	clock.advance(1900 * time.Millisecond)
	if g.TryAcquire() {
		t.Fatal("TryAcquire within cooldown must be denied")
	}
	clock.advance(100 * time.Millisecond)
	if !g.TryAcquire() {
		t.Error("denial must not reset the cooldown window")
	}
}

func TestNonPositiveCooldownUsesDefault(t *testing.T) {
	g := New(0)
	if g.cooldown != DefaultCooldown {
		t.Errorf("expected default cooldown %v, got %v", DefaultCooldown, g.cooldown)
	}
}

func TestNoMoreThanOneGrantPerWindow(t *testing.T) {
	g, clock := newTestGate(time.Second)

	grants := 0
	for i := 0; i < 40; i++ {
		if g.TryAcquire() {
			grants++
		}
		clock.advance(100 * time.Millisecond)
	}
	// 4 seconds elapsed in total; at one grant per second at most 5
	// grants are possible (including the initial one).
	if grants > 5 {
		t.Errorf("got %d grants in 4s with 1s cooldown, want at most 5", grants)
	}
}
