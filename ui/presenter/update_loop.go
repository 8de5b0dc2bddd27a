package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// Each Tick polls the preview size, flushes state changes, refreshes session
// timing and finally calls Schedule to arm the next tick. The zero value is
// usable (methods are nil-safe).
type Loop struct {
	Viewfinder *ViewfinderPresenter
	State      *StatePresenter
	Session    *SessionPresenter
	Schedule   func()
}

func NewLoop(vf *ViewfinderPresenter, state *StatePresenter, sess *SessionPresenter, schedule func()) *Loop {
	return &Loop{Viewfinder: vf, State: state, Session: sess, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	l.Viewfinder.Poll()
	l.State.Tick(now)
	l.Session.Tick(now)
	if l.Schedule != nil {
		l.Schedule()
	}
}
