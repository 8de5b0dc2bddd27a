package presenter

import (
	"testing"
)

type mockModel struct{ enabled bool }

func (m *mockModel) Enabled() bool { return m.enabled }
func (m *mockModel) SetEnabled(b bool) bool {
	changed := m.enabled != b
	m.enabled = b
	return changed
}

type mockLaser struct{ started, stopped int }

func (l *mockLaser) StartLaser() { l.started++ }
func (l *mockLaser) StopLaser()  { l.stopped++ }

type mockScanView struct {
	editableCalls int
	lastEditable  bool
}

func (v *mockScanView) ParamsEditable(b bool) { v.editableCalls++; v.lastEditable = b }

func TestScanPresenter_EnableDisable_Idempotent(t *testing.T) {
	m := &mockModel{}
	laser := &mockLaser{}
	view := &mockScanView{}
	p := NewScanPresenter(m, laser, view, discardLogger)

	p.Enable()
	if !m.Enabled() || laser.started != 1 || view.lastEditable || view.editableCalls != 1 {
		t.Fatalf("enable failed: enabled=%v started=%d editableCalls=%d lastEditable=%v", m.Enabled(), laser.started, view.editableCalls, view.lastEditable)
	}
	if p.Session() == "" {
		t.Fatalf("expected a session id while scanning")
	}
	first := p.Session()
	p.Enable()
	if laser.started != 1 || p.Session() != first {
		t.Fatalf("enable not idempotent: started=%d", laser.started)
	}

	p.Disable()
	if m.Enabled() || laser.stopped != 1 || !view.lastEditable || view.editableCalls != 2 || p.Session() != "" {
		t.Fatalf("disable failed: enabled=%v stopped=%d editableCalls=%d lastEditable=%v", m.Enabled(), laser.stopped, view.editableCalls, view.lastEditable)
	}
	p.Disable()
	if laser.stopped != 1 {
		t.Fatalf("disable not idempotent: stopped=%d", laser.stopped)
	}
}

func TestScanPresenter_ToggleNewSessionEachTime(t *testing.T) {
	m := &mockModel{}
	laser := &mockLaser{}
	p := NewScanPresenter(m, laser, &mockScanView{}, nil)
	p.Toggle()
	a := p.Session()
	p.Toggle()
	p.Toggle()
	if b := p.Session(); b == "" || b == a {
		t.Fatalf("expected fresh session id, got %q then %q", a, b)
	}
	if laser.started != 2 || laser.stopped != 1 {
		t.Fatalf("unexpected laser calls started=%d stopped=%d", laser.started, laser.stopped)
	}
}

func TestScanPresenter_NilDependencies(t *testing.T) {
	var p *ScanPresenter
	p.Toggle()
	NewScanPresenter(nil, nil, nil, nil).Toggle()
}
