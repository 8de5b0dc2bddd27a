package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows scan durations and the scan count.
type SessionStats interface {
	SetSession(d time.Duration)
	SetTotal(d time.Duration)
	SetScans(n int)
}

type sessionStats struct {
	sessionLbl *LabelWidget
	totalLbl   *LabelWidget
	scansLbl   *LabelWidget
}

// NewSessionStats grids the three labels in parent starting at (row, 0).
func NewSessionStats(parent *FrameWidget, row int) SessionStats {
	s := &sessionStats{sessionLbl: Label(Width(14)), totalLbl: Label(Width(14)), scansLbl: Label(Width(10))}
	for i, l := range []*LabelWidget{s.sessionLbl, s.totalLbl, s.scansLbl} {
		Grid(l, In(parent), Row(row+i), Column(0), Sticky("w"), Padx("0.2m"))
	}
	s.SetSession(0)
	s.SetTotal(0)
	s.SetScans(0)
	return s
}

func clock(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func (s *sessionStats) SetSession(d time.Duration) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt("Scan: " + clock(d)))
}

func (s *sessionStats) SetTotal(d time.Duration) {
	if s == nil || s.totalLbl == nil {
		return
	}
	s.totalLbl.Configure(Txt("Total: " + clock(d)))
}

func (s *sessionStats) SetScans(n int) {
	if s == nil || s.scansLbl == nil {
		return
	}
	s.scansLbl.Configure(Txt(fmt.Sprintf("Scans: %d", n)))
}
