// Package autosave schedules trailing-edge saves after a quiet period.
//
// The debouncer owns no timer or goroutine. The host event loop calls
// Touch on every document change and polls Due from its own tick.
package autosave

import "time"

// DefaultDelay is the quiet period before a pending save fires.
const DefaultDelay = time.Second

// Debouncer tracks a single pending save deadline.
type Debouncer struct {
	delay    time.Duration
	deadline time.Time
	pending  bool
}

// New returns a debouncer with the given quiet period. Non-positive
// delays fall back to DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Touch records a change at now, pushing the deadline back.
func (d *Debouncer) Touch(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.pending = true
}

// Due reports whether the pending save should run at now. It returns true
// at most once per burst of changes.
func (d *Debouncer) Due(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}

// Pending reports whether a save is scheduled.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Deadline returns the time the pending save fires. It is zero when
// nothing is pending.
func (d *Debouncer) Deadline() time.Time {
	if !d.pending {
		return time.Time{}
	}
	return d.deadline
}

// Cancel drops the pending save, used after a manual flush.
func (d *Debouncer) Cancel() {
	d.pending = false
}
