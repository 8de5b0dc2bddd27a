package presenter

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/soocke/viewfinder-go/config"
	"github.com/soocke/viewfinder-go/domain/framing"
	"github.com/soocke/viewfinder-go/domain/overlay"
	"github.com/soocke/viewfinder-go/ui/model"
	"github.com/soocke/viewfinder-go/ui/theme"
)

// RenderRequest describes one off-screen frame.
type RenderRequest struct {
	Width, Height int
	// Orientation pins the orientation; nil derives it from the size.
	Orientation *framing.Orientation
	Scanning    bool
	// Frames is how many laser frames to draw before returning; the laser
	// alpha of the result is the table entry at Frames-1.
	Frames     int
	Background color.Color
}

// dropScheduler never runs anything; off-screen frames are driven explicitly.
type dropScheduler struct{}

func (dropScheduler) After(time.Duration, func()) overlay.Cancel { return func() {} }

// RenderFrame draws a single viewfinder frame without a window.
func RenderFrame(cfg *config.Config, pal theme.PaletteSnapshot, req RenderRequest, logger *slog.Logger) (*image.RGBA, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, framing.ErrInvalidDimensions
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	vp := model.NewViewportModel()
	if req.Orientation != nil {
		vp.SetOrientation(*req.Orientation)
	}
	vf := NewViewfinderPresenter(ViewfinderOptions{
		Calculator: cfg.Calculator(),
		Params:     ParamsFromConfig(cfg, pal),
		Viewport:   vp,
		Scheduler:  dropScheduler{},
		Background: req.Background,
		Logger:     logger,
	})
	vf.Resize(req.Width, req.Height)
	if _, ok := vf.Renderer().FramingRect(); !ok {
		return nil, errors.New("no framing rectangle for requested size")
	}
	if !req.Scanning {
		return vf.Frame(), nil
	}
	vf.Renderer().StartLaser()
	defer vf.Renderer().StopLaser()
	img := vf.Frame()
	for i := 1; i < req.Frames; i++ {
		img, _ = vf.composer.Compose(req.Width, req.Height, vf.Renderer().LaserRegion())
	}
	return img, nil
}
