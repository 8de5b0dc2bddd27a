package app

import (
	"image/color"
	"log/slog"

	"github.com/soocke/viewfinder-go/config"
	"github.com/soocke/viewfinder-go/domain/overlay"
	"github.com/soocke/viewfinder-go/ui/images"
	"github.com/soocke/viewfinder-go/ui/model"
	"github.com/soocke/viewfinder-go/ui/presenter"
	"github.com/soocke/viewfinder-go/ui/theme"
	"github.com/soocke/viewfinder-go/ui/view"
)

// AppContainer assembles models, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	CfgPath  string
	Logger   *slog.Logger
	Scan     *model.ScanModel
	Session  *model.SessionModel
	Viewport *model.ViewportModel
	RootView *view.RootView
	UI       view.UI

	// Presenters
	Viewfinder       *presenter.ViewfinderPresenter
	ScanPresenter    *presenter.ScanPresenter
	StatePresenter   *presenter.StatePresenter
	SessionPresenter *presenter.SessionPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. Widgets are created later by
// RootView.Build; presenters only talk to the view through its interfaces.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger, sched overlay.Scheduler) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := theme.Load(); err != nil && logger != nil {
		logger.Error("palette load failed", "error", err)
	}
	theme.SetDark(cfg.DarkMode)
	pal := theme.CurrentPalette()

	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}
	c.Scan = &model.ScanModel{}
	c.Session = model.NewSessionModel()
	c.Viewport = model.NewViewportModel()
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	cache, err := images.NewLayerCache(cfg.LayerCacheSize)
	if err != nil && logger != nil {
		logger.Warn("layer cache disabled", "error", err)
	}
	c.Viewfinder = presenter.NewViewfinderPresenter(presenter.ViewfinderOptions{
		Calculator: cfg.Calculator(),
		Params:     presenter.ParamsFromConfig(cfg, pal),
		Viewport:   c.Viewport,
		View:       c.UI,
		Scheduler:  sched,
		Cache:      cache,
		Background: previewBackground(pal),
		Logger:     logger,
	})
	c.ScanPresenter = presenter.NewScanPresenter(c.Scan, c.Viewfinder.Renderer(), c.UI, logger)
	c.StatePresenter = presenter.NewStatePresenter(c.UI)
	c.Viewfinder.Renderer().AddListener(c.StatePresenter.OnState)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Scan, c.UI)
	c.Loop = presenter.NewLoop(c.Viewfinder, c.StatePresenter, c.SessionPresenter, nil)
	return c
}

// ToggleDark flips the palette, persists the choice and repaints.
func (c *AppContainer) ToggleDark() theme.PaletteSnapshot {
	c.Config.DarkMode = theme.ToggleDark()
	pal := theme.CurrentPalette()
	c.Viewfinder.SetParams(presenter.ParamsFromConfig(c.Config, pal))
	c.Viewfinder.SetBackground(previewBackground(pal))
	c.save()
	return pal
}

// ApplyConfig pushes edited parameters into the renderer.
func (c *AppContainer) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	c.Config = cfg
	c.Viewfinder.SetCalculator(cfg.Calculator())
	c.Viewfinder.SetParams(presenter.ParamsFromConfig(cfg, theme.CurrentPalette()))
}

func (c *AppContainer) save() {
	if c.CfgPath == "" {
		return
	}
	if err := c.Config.Save(c.CfgPath); err != nil && c.Logger != nil {
		c.Logger.Error("config save failed", "error", err)
	}
}

func previewBackground(pal theme.PaletteSnapshot) color.Color {
	if col, err := theme.ParseHex(pal.PreviewBg); err == nil {
		return col
	}
	return color.Black
}
