package overlay

import (
	"sync"
	"sync/atomic"
	"time"
)

// LoopScheduler runs every callback on one goroutine, the way Tk runs after
// handlers on its event loop. Hosts without Tk post all renderer work
// (resizes, scan toggles) through After so paints and recomputation never
// overlap.
type LoopScheduler struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoopScheduler starts the loop goroutine. Close stops it.
func NewLoopScheduler() *LoopScheduler {
	s := &LoopScheduler{queue: make(chan func(), 64), done: make(chan struct{})}
	go s.run()
	return s
}

func (s *LoopScheduler) run() {
	for {
		select {
		case fn := <-s.queue:
			fn()
		case <-s.done:
			return
		}
	}
}

// After queues fn on the loop once d has elapsed. Cancelling before fn runs
// drops it.
func (s *LoopScheduler) After(d time.Duration, fn func()) Cancel {
	var cancelled atomic.Bool
	job := func() {
		if !cancelled.Load() {
			fn()
		}
	}
	post := func() {
		select {
		case s.queue <- job:
		case <-s.done:
		}
	}
	if d <= 0 {
		select {
		case s.queue <- job:
		default:
			// queue full; never block the loop goroutine on its own queue
			go post()
		}
		return func() { cancelled.Store(true) }
	}
	t := time.AfterFunc(d, post)
	return func() {
		cancelled.Store(true)
		t.Stop()
	}
}

// Close stops the loop. Callbacks still queued are dropped.
func (s *LoopScheduler) Close() {
	s.once.Do(func() { close(s.done) })
}
