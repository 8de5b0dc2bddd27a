package presenter

import (
	"log/slog"

	"github.com/google/uuid"
)

// ScanModel provides enabled state access.
type ScanModel interface {
	Enabled() bool
	SetEnabled(bool) bool
}

// LaserControl narrows what the presenter needs from the overlay renderer.
type LaserControl interface {
	StartLaser()
	StopLaser()
}

// ScanView updates UI elements affected by scan toggling. The state label is
// owned by StatePresenter.
type ScanView interface {
	ParamsEditable(bool)
}

// ScanPresenter owns presentation logic for toggling the laser scan.
type ScanPresenter struct {
	model   ScanModel
	laser   LaserControl
	view    ScanView
	logger  *slog.Logger
	session string
}

func NewScanPresenter(model ScanModel, laser LaserControl, view ScanView, logger *slog.Logger) *ScanPresenter {
	return &ScanPresenter{model: model, laser: laser, view: view, logger: logger}
}

func (s *ScanPresenter) ready() bool {
	return s != nil && s.model != nil && s.laser != nil && s.view != nil
}

// Enable starts the laser animation and locks the parameter panel. Idempotent.
func (s *ScanPresenter) Enable() {
	if !s.ready() || s.model.Enabled() {
		return
	}
	s.model.SetEnabled(true)
	s.session = uuid.NewString()
	s.laser.StartLaser()
	s.view.ParamsEditable(false)
	if s.logger != nil {
		s.logger.Info("scan started", "session", s.session)
	}
}

// Disable stops the laser animation and unlocks the parameter panel. Idempotent.
func (s *ScanPresenter) Disable() {
	if !s.ready() || !s.model.Enabled() {
		return
	}
	s.model.SetEnabled(false)
	s.laser.StopLaser()
	s.view.ParamsEditable(true)
	if s.logger != nil {
		s.logger.Info("scan stopped", "session", s.session)
	}
	s.session = ""
}

// Toggle flips enabled state delegating to Enable/Disable.
func (s *ScanPresenter) Toggle() {
	if !s.ready() {
		return
	}
	if s.model.Enabled() {
		s.Disable()
		return
	}
	s.Enable()
}

// Session returns the id of the running scan, or "" when stopped.
func (s *ScanPresenter) Session() string {
	if s == nil {
		return ""
	}
	return s.session
}
