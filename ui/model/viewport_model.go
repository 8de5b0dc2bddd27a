package model

import (
	"github.com/soocke/viewfinder-go/domain/framing"
)

// ViewportModel holds the measured preview size and the orientation the
// overlay should assume. Updates occur on the UI thread; no locking.
//
// Orientation follows the aspect ratio of the size unless an override is set
// with ToggleOrientation or SetOrientation.
type ViewportModel struct {
	width, height int
	override      *framing.Orientation
}

func NewViewportModel() *ViewportModel { return &ViewportModel{} }

// SetSize records a new size and reports whether it differs from the last one.
// Non-positive sizes are stored as-is; the renderer rejects them.
func (m *ViewportModel) SetSize(w, h int) bool {
	if m == nil || (w == m.width && h == m.height) {
		return false
	}
	m.width, m.height = w, h
	return true
}

// Size returns the last recorded size.
func (m *ViewportModel) Size() (int, int) {
	if m == nil {
		return 0, 0
	}
	return m.width, m.height
}

// Orientation returns the override if set, otherwise the orientation implied
// by the recorded size.
func (m *ViewportModel) Orientation() framing.Orientation {
	if m == nil {
		return framing.NotPortrait
	}
	if m.override != nil {
		return *m.override
	}
	return framing.OrientationForSize(m.width, m.height)
}

// SetOrientation pins the orientation.
func (m *ViewportModel) SetOrientation(o framing.Orientation) {
	if m == nil {
		return
	}
	m.override = &o
}

// ClearOrientation returns to size-derived orientation.
func (m *ViewportModel) ClearOrientation() {
	if m == nil {
		return
	}
	m.override = nil
}

// Overridden reports whether the orientation is pinned.
func (m *ViewportModel) Overridden() bool { return m != nil && m.override != nil }

// ToggleOrientation pins the opposite of the current orientation and returns it.
func (m *ViewportModel) ToggleOrientation() framing.Orientation {
	next := framing.Portrait
	if m.Orientation() == framing.Portrait {
		next = framing.NotPortrait
	}
	m.SetOrientation(next)
	return next
}
