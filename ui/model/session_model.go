package model

import (
	"time"
)

// SessionModel tracks how long the current scan has been running, the
// accumulated scanning time and how many scans were started. Presenters poll
// Values() and push them into the view. The zero value is ready to use.
type SessionModel struct {
	active      bool
	scanStart   time.Time
	current     time.Duration
	accumulated time.Duration
	scans       int
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick folds the current scanning flag at time now into the totals.
func (m *SessionModel) OnTick(scanning bool, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case scanning && !m.active:
		m.active = true
		m.scanStart = now
		m.current = 0
		m.scans++
	case scanning:
		m.current = now.Sub(m.scanStart)
	case m.active:
		m.current = now.Sub(m.scanStart)
		m.accumulated += m.current
		m.active = false
	}
}

// Values returns the current (or last) scan duration and the total, which
// includes the running scan.
func (m *SessionModel) Values() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.current
	total = m.accumulated
	if m.active {
		total += session
	}
	return
}

// Scans returns how many scans have been started.
func (m *SessionModel) Scans() int {
	if m == nil {
		return 0
	}
	return m.scans
}

// Active reports whether a scan is running.
func (m *SessionModel) Active() bool { return m != nil && m.active }
