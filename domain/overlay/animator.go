package overlay

import (
	"image"
	"sync"
	"time"
)

// LaserAnimator drives the laser redraw cadence. While running, every laser
// draw may request one follow-up repaint after Delay; at most one request is
// pending at any time and Stop revokes it.
type LaserAnimator struct {
	sched      Scheduler
	invalidate Invalidator
	delay      time.Duration

	mu      sync.Mutex
	running bool
	pending Cancel
	fires   uint64
}

// NewLaserAnimator returns a stopped animator.
func NewLaserAnimator(sched Scheduler, invalidate Invalidator, delay time.Duration) *LaserAnimator {
	if delay <= 0 {
		delay = 80 * time.Millisecond
	}
	return &LaserAnimator{sched: sched, invalidate: invalidate, delay: delay}
}

// Start marks the animation active. Returns false if it was already running.
func (a *LaserAnimator) Start() bool {
	if a == nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return false
	}
	a.running = true
	return true
}

// Stop halts the animation and cancels any pending repaint. Returns false if
// it was not running.
func (a *LaserAnimator) Stop() bool {
	if a == nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return false
	}
	a.running = false
	if a.pending != nil {
		a.pending()
		a.pending = nil
	}
	return true
}

// SetDelay changes the delay used by subsequent requests.
func (a *LaserAnimator) SetDelay(d time.Duration) {
	if a == nil || d <= 0 {
		return
	}
	a.mu.Lock()
	a.delay = d
	a.mu.Unlock()
}

// Running reports whether the animation is active.
func (a *LaserAnimator) Running() bool {
	if a == nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Pending reports whether a repaint is currently scheduled.
func (a *LaserAnimator) Pending() bool {
	if a == nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}

// Fires returns how many scheduled repaints have been delivered.
func (a *LaserAnimator) Fires() uint64 {
	if a == nil {
		return 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.fires
}

// Request schedules a repaint of region after the configured delay. It is a
// no-op when stopped or when a repaint is already pending.
func (a *LaserAnimator) Request(region image.Rectangle) {
	if a == nil || a.sched == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running || a.pending != nil {
		return
	}
	var cancelled bool
	cancel := a.sched.After(a.delay, func() { a.fire(region, &cancelled) })
	a.pending = func() {
		cancelled = true
		if cancel != nil {
			cancel()
		}
	}
}

func (a *LaserAnimator) fire(region image.Rectangle, cancelled *bool) {
	a.mu.Lock()
	if *cancelled || !a.running {
		a.mu.Unlock()
		return
	}
	a.pending = nil
	a.fires++
	inv := a.invalidate
	a.mu.Unlock()
	if inv != nil {
		inv(region)
	}
}
