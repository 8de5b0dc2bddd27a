package model

import (
	"sync/atomic"
)

// ScanModel tracks whether the laser scan is enabled. The zero value is
// disabled and usable. Atomic because Tk callbacks and presenter ticks may race.
type ScanModel struct{ enabled atomic.Bool }

// Enabled reports whether scanning is on.
func (m *ScanModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the flag and reports whether it changed.
func (m *ScanModel) SetEnabled(b bool) bool {
	if m == nil {
		return false
	}
	return m.enabled.Swap(b) != b
}
