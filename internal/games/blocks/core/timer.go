package core

import "time"

// Timer is the single gravity clock of a session. It accumulates elapsed
// time and reports how many intervals have passed. Arming an already armed
// timer is refused so at most one logical timer is ever active.
type Timer struct {
	interval time.Duration
	acc      time.Duration
	armed    bool
}

// Arm starts the timer with interval. Returns false if already armed.
func (t *Timer) Arm(interval time.Duration) bool {
	if t.armed {
		return false
	}
	t.interval = interval
	t.acc = 0
	t.armed = true
	return true
}

// Disarm stops the timer and drops any partial interval.
func (t *Timer) Disarm() {
	t.armed = false
	t.acc = 0
}

// Armed reports whether the timer is running.
func (t *Timer) Armed() bool {
	return t.armed
}

// Interval returns the interval the timer was armed with.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Advance adds dt and returns how many whole intervals elapsed.
func (t *Timer) Advance(dt time.Duration) int {
	if !t.armed || t.interval <= 0 || dt <= 0 {
		return 0
	}
	t.acc += dt
	fires := int(t.acc / t.interval)
	t.acc -= time.Duration(fires) * t.interval
	return fires
}
