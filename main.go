package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/viewfinder-go/app"
	"github.com/soocke/viewfinder-go/config"
	"github.com/soocke/viewfinder-go/debug"
	"github.com/soocke/viewfinder-go/domain/framing"
	"github.com/soocke/viewfinder-go/ui/images"
	"github.com/soocke/viewfinder-go/ui/presenter"
	"github.com/soocke/viewfinder-go/ui/theme"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "path to config.json (default: user config dir)")
		debugOn  = flag.Bool("debug", false, "verbose logging and runtime stats")
		render   = flag.String("render", "", "render one frame to this PNG file and exit")
		width    = flag.Int("width", 1920, "frame width for -render")
		height   = flag.Int("height", 1080, "frame height for -render")
		portrait = flag.Bool("portrait", false, "assume portrait orientation for -render")
		scanning = flag.Bool("scanning", false, "draw mask and laser for -render")
		frames   = flag.Int("frames", 5, "laser frames to advance for -render -scanning")
	)
	flag.Parse()

	logger := NewLogger(slog.LevelInfo)

	path := *cfgPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Warn("no default config path", "error", err)
		}
		path = p
	}
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logger.Error("config load failed, using defaults", "path", path, "error", err)
		}
		cfg = loaded
	}
	if *debugOn {
		cfg.Debug = true
	}
	if cfg.Debug {
		logger = NewLogger(slog.LevelDebug)
		ctx := context.Background()
		debug.StartGoroutineLogger(ctx, 5*time.Second, logger)
		debug.StartMemLogger(ctx, 5*time.Second, logger)
	}

	if *render != "" {
		if err := renderPNG(cfg, logger, *render, *width, *height, *portrait, *scanning, *frames); err != nil {
			logger.Error("render failed", "error", err)
			os.Exit(1)
		}
		return
	}

	application := app.NewApp("Viewfinder", cfg, path, logger)
	application.Start()
}

func renderPNG(cfg *config.Config, logger *slog.Logger, out string, w, h int, portrait, scanning bool, frames int) error {
	if err := theme.Load(); err != nil {
		logger.Warn("palette load failed", "error", err)
	}
	theme.SetDark(cfg.DarkMode)
	req := presenter.RenderRequest{Width: w, Height: h, Scanning: scanning, Frames: frames}
	if portrait {
		o := framing.Portrait
		req.Orientation = &o
	}
	if bg, err := theme.ParseHex(theme.CurrentPalette().PreviewBg); err == nil {
		req.Background = bg
	}
	img, err := presenter.RenderFrame(cfg, theme.CurrentPalette(), req, logger)
	if err != nil {
		return err
	}
	if err := images.SavePNG(out, img); err != nil {
		return err
	}
	logger.Info("frame rendered", "path", out, "width", w, "height", h, "scanning", scanning)
	return nil
}
