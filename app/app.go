package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/viewfinder-go/config"
	"github.com/soocke/viewfinder-go/ui/theme"
	"github.com/soocke/viewfinder-go/ui/view"
)

const (
	tick = 100 * time.Millisecond
)

type app struct {
	title   string
	width   int
	height  int
	logger  *slog.Logger
	c       *AppContainer
	afterID string
}

// NewApp prepares the Tk window and the component container.
func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := &app{title: title, width: cfg.WindowWidth, height: cfg.WindowHeight, logger: logger}
	a.c = BuildContainer(cfg, cfgPath, logger, tkScheduler{})
	a.c.Loop.Schedule = a.scheduleUpdate
	return a
}

func (a *app) Start() {
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", a.width, a.height))
	view.ApplyStyles(theme.CurrentPalette())

	a.c.RootView.Build(view.Handlers{
		OnToggleScan: a.c.ScanPresenter.Toggle,
		OnRotate: func() {
			o := a.c.Viewfinder.Rotate()
			a.c.RootView.SetOrientationLabel(o.String())
		},
		OnToggleDark: func() { view.ApplyStyles(a.c.ToggleDark()) },
		OnExit:       a.exitHandler,
		OnApply:      a.c.ApplyConfig,
	})
	a.c.Viewfinder.Renderer().Setup()

	// Kick off update loop.
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) update() {
	func() {
		defer func() {
			if r := recover(); r != nil {
				if a.logger != nil {
					a.logger.Error("update tick panicked", "panic", fmt.Sprint(r))
				}
				a.scheduleUpdate()
			}
		}()
		a.c.Loop.Tick()
	}()
}

func (a *app) exitHandler() {
	a.c.ScanPresenter.Disable()
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}
