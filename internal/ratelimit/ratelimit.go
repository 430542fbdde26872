// Package ratelimit provides the process-wide cooldown gate in front of the
// generative-language capability.
//
// The gate is deliberately coarse: one shared timestamp, no queuing, no
// per-caller tracking. The contract is "no more than one grant per cooldown
// window" across every assistant-backed feature in the process.
package ratelimit

import (
	"sync"
	"time"
)

// DefaultCooldown is the minimum time between successive grants when the
// configuration does not override it.
const DefaultCooldown = 2 * time.Second

// Gate is a single-timestamp cooldown guard. The zero value is not usable;
// construct with New. A Gate is safe for concurrent use.
type Gate struct {
	mu          sync.Mutex
	cooldown    time.Duration
	lastGranted time.Time
	now         func() time.Time
}

// New creates a Gate with the given cooldown. A non-positive cooldown falls
// back to DefaultCooldown. The first TryAcquire on a fresh gate is always
// granted.
func New(cooldown time.Duration) *Gate {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Gate{
		cooldown: cooldown,
		now:      time.Now,
	}
}

// TryAcquire reports whether a call may proceed. On a grant it records the
// current time as the last granted timestamp; on a denial the state is left
// unchanged.
func (g *Gate) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if !g.lastGranted.IsZero() && now.Sub(g.lastGranted) < g.cooldown {
		return false
	}
	g.lastGranted = now
	return true
}
