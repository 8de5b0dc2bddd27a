package presenter

import (
	"time"

	"github.com/soocke/viewfinder-go/ui/model"
)

// ScanEnabledModel reports whether scanning is enabled.
type ScanEnabledModel interface{ Enabled() bool }

// SessionView displays scan durations and the number of scans.
type SessionView interface {
	SetSession(session, total time.Duration, scans int)
}

// SessionPresenter pushes scan timing from the session model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	scan ScanEnabledModel
	view SessionView
}

func NewSessionPresenter(sess *model.SessionModel, scan ScanEnabledModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, scan: scan, view: view}
}

// Tick advances the session model and refreshes the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.scan == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.scan.Enabled(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t, p.sess.Scans())
}
