package model

import (
	"testing"
	"time"

	"github.com/soocke/viewfinder-go/domain/framing"
)

func TestSessionModel_TwoScans(t *testing.T) {
	m := NewSessionModel()
	t0 := time.Unix(100, 0)

	m.OnTick(true, t0)
	m.OnTick(true, t0.Add(4*time.Second))
	if s, total := m.Values(); s != 4*time.Second || total != 4*time.Second {
		t.Fatalf("running scan: session=%v total=%v", s, total)
	}

	m.OnTick(false, t0.Add(5*time.Second))
	m.OnTick(false, t0.Add(9*time.Second))
	if s, total := m.Values(); s != 5*time.Second || total != 5*time.Second {
		t.Fatalf("stopped scan should keep 5s: session=%v total=%v", s, total)
	}

	m.OnTick(true, t0.Add(10*time.Second))
	m.OnTick(true, t0.Add(12*time.Second))
	if s, total := m.Values(); s != 2*time.Second || total != 7*time.Second {
		t.Fatalf("second scan: session=%v total=%v", s, total)
	}
	if m.Scans() != 2 || !m.Active() {
		t.Fatalf("expected 2 scans and active, got %d active=%v", m.Scans(), m.Active())
	}
}

func TestSessionModel_NilSafe(t *testing.T) {
	var m *SessionModel
	m.OnTick(true, time.Now())
	if s, total := m.Values(); s != 0 || total != 0 || m.Scans() != 0 {
		t.Fatalf("nil model should report zeros")
	}
}

func TestScanModel_SetEnabledReportsChange(t *testing.T) {
	var m ScanModel
	if !m.SetEnabled(true) || !m.Enabled() {
		t.Fatalf("first enable should change state")
	}
	if m.SetEnabled(true) {
		t.Fatalf("repeat enable should not report change")
	}
	if !m.SetEnabled(false) || m.Enabled() {
		t.Fatalf("disable should change state")
	}
}

func TestViewportModel_Orientation(t *testing.T) {
	m := NewViewportModel()
	if !m.SetSize(400, 800) || m.SetSize(400, 800) {
		t.Fatalf("SetSize change reporting wrong")
	}
	if m.Orientation() != framing.Portrait {
		t.Fatalf("tall viewport should be portrait")
	}
	if got := m.ToggleOrientation(); got != framing.NotPortrait || !m.Overridden() {
		t.Fatalf("toggle should pin landscape, got %v", got)
	}
	m.SetSize(800, 400)
	if m.Orientation() != framing.NotPortrait {
		t.Fatalf("override should hold")
	}
	m.ClearOrientation()
	m.SetSize(300, 900)
	if m.Orientation() != framing.Portrait {
		t.Fatalf("cleared override should follow size")
	}
}
