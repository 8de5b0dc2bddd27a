package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/viewfinder-go/config"
	"github.com/soocke/viewfinder-go/ui/model"
	"github.com/soocke/viewfinder-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Space reserved around the preview for the sidebar and window chrome.
const (
	sidebarWidth  = 280
	chromeHeight  = 24
	chromePadding = 12
)

// Handlers are the user actions wired by the app.
type Handlers struct {
	OnToggleScan func()
	OnRotate     func()
	OnToggleDark func()
	OnExit       func()
	OnApply      func(*config.Config)
}

// RootView composes the top-level layout: the preview on the left and a
// sidebar with controls, state, session stats and the parameter form.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Session SessionStats
	Params  ParamsPanel
	Preview Preview

	// Widgets
	StateLabel  *TLabelWidget
	OrientLabel *TLabelWidget
}

// UI abstracts the subset of view operations needed by presenters.
type UI interface {
	SetStateLabel(text string)
	ParamsEditable(enabled bool)
	UpdatePreview(img image.Image)
	PreviewSize() (int, int)
	SetSession(session, total time.Duration, scans int)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	GridColumnConfigure(App, 0, Weight(1))
	GridRowConfigure(App, 0, Weight(1))

	rv.Preview = NewPreview(0, 0, 1)

	side := Frame()
	Grid(side, Row(0), Column(1), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))

	rv.StateLabel = TLabel(Txt("State: <none>"), Style(theme.StyleStateLabel))
	Grid(rv.StateLabel, In(side), Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	rv.OrientLabel = TLabel(Txt("Orientation: auto"), Style(theme.StyleAccentLabel))
	Grid(rv.OrientLabel, In(side), Row(1), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	buttons := []struct {
		label string
		style string
		fn    func()
	}{
		{"Toggle Scan", theme.StylePrimaryButton, h.OnToggleScan},
		{"Rotate", theme.StylePrimaryButton, h.OnRotate},
		{"Dark Mode", theme.StylePrimaryButton, h.OnToggleDark},
		{"Exit", theme.StyleDangerButton, h.OnExit},
	}
	row := 2
	for _, b := range buttons {
		fn := b.fn
		if fn == nil {
			fn = func() {}
		}
		btn := TButton(Txt(b.label), Style(b.style), Command(fn))
		Grid(btn, In(side), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		row++
	}

	stats := Frame()
	Grid(stats, In(side), Row(row), Column(0), Columnspan(2), Sticky("we"), Pady("0.3m"))
	rv.Session = NewSessionStats(stats, 0)
	row++

	form := Frame()
	Grid(form, In(side), Row(row), Column(0), Columnspan(2), Sticky("we"))
	rv.Params = NewParamsPanel(rv.cfg, rv.cfgPath, rv.logger, h.OnApply)
	rv.Params.Build(form, 0)
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetOrientationLabel shows the orientation the overlay assumes.
func (rv *RootView) SetOrientationLabel(text string) {
	if rv != nil && rv.OrientLabel != nil {
		rv.OrientLabel.Configure(Txt("Orientation: " + text))
	}
}

// ParamsEditable toggles the parameter form.
func (rv *RootView) ParamsEditable(enabled bool) {
	if rv != nil && rv.Params != nil {
		rv.Params.SetEditable(enabled)
	}
}

// UpdatePreview proxies to the preview view.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv == nil || rv.Preview == nil {
		return
	}
	func() {
		defer func() { _ = recover() }() // widget may be gone during shutdown
		rv.Preview.UpdatePreview(img)
	}()
}

// PreviewSize derives the preview area from the root window geometry.
func (rv *RootView) PreviewSize() (int, int) {
	r, ok := model.ParseGeometry(WmGeometry(App))
	if !ok {
		return 0, 0
	}
	w, h := model.Inset(r.Dx(), r.Dy(), sidebarWidth+chromePadding, chromeHeight)
	if rv != nil && rv.Preview != nil {
		rv.Preview.SetMaxSize(w, h)
	}
	return w, h
}

// SetSession updates the session labels.
func (rv *RootView) SetSession(session, total time.Duration, scans int) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
	rv.Session.SetScans(scans)
}
