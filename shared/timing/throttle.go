// Package timing gates fixed-rate simulation steps against a wall clock.
package timing

import "time"

// Throttle gates simulation steps by wall clock. A frame that arrives late
// still gets only one step and the schedule restarts from that frame, so the
// simulation slows down under load instead of catching up. Frames up to a
// quarter step early count as on time, which absorbs vsync jitter without
// raising the average rate.
type Throttle struct {
	interval time.Duration
	slack    time.Duration
	now      func() time.Time
	next     time.Time
}

// NewThrottle allows tps steps per second. now is the clock; nil uses
// time.Now.
func NewThrottle(tps int, now func() time.Time) *Throttle {
	if now == nil {
		now = time.Now
	}
	interval := time.Second / time.Duration(tps)
	return &Throttle{
		interval: interval,
		slack:    interval / 4,
		now:      now,
	}
}

// Ready reports whether the frame happening now may run a step. Call it once
// per frame.
func (t *Throttle) Ready() bool {
	now := t.now()
	if t.next.IsZero() {
		t.next = now
	}
	if now.Before(t.next.Add(-t.slack)) {
		return false
	}
	t.next = t.next.Add(t.interval)
	if !t.next.After(now) {
		// Behind schedule: drop the backlog.
		t.next = now.Add(t.interval)
	}
	return true
}
