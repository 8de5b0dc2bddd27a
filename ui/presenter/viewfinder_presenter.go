package presenter

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/soocke/viewfinder-go/domain/framing"
	"github.com/soocke/viewfinder-go/domain/overlay"
	"github.com/soocke/viewfinder-go/ui/images"
	"github.com/soocke/viewfinder-go/ui/model"
)

// PreviewView shows composed frames and reports the space available for them.
type PreviewView interface {
	UpdatePreview(img image.Image)
	PreviewSize() (int, int)
}

// ViewfinderPresenter owns the overlay renderer for the preview area. It
// feeds size and orientation changes into the renderer, coalesces repaint
// requests into one scheduled paint, and pushes composed frames to the view.
type ViewfinderPresenter struct {
	renderer *overlay.Renderer
	viewport *model.ViewportModel
	composer *FrameComposer
	view     PreviewView
	sched    overlay.Scheduler
	logger   *slog.Logger

	dirty     image.Rectangle
	full      bool
	scheduled bool
	paints    uint64
}

// ViewfinderOptions configures NewViewfinderPresenter.
type ViewfinderOptions struct {
	Calculator *framing.Calculator
	Params     overlay.Params
	Viewport   *model.ViewportModel
	View       PreviewView
	Scheduler  overlay.Scheduler
	Cache      *images.LayerCache
	Background color.Color
	Logger     *slog.Logger
}

// NewViewfinderPresenter wires a renderer whose orientation comes from the
// viewport model and whose invalidations schedule a paint. Scheduler is
// required: paints and laser frames run on it, and every other presenter
// method must be called from that same goroutine.
func NewViewfinderPresenter(opts ViewfinderOptions) *ViewfinderPresenter {
	vp := opts.Viewport
	if vp == nil {
		vp = model.NewViewportModel()
	}
	sched := opts.Scheduler
	if sched == nil {
		panic("presenter: ViewfinderOptions.Scheduler is required")
	}
	p := &ViewfinderPresenter{viewport: vp, view: opts.View, sched: sched, logger: opts.Logger}
	p.renderer = overlay.NewRenderer(overlay.Options{
		Calculator:  opts.Calculator,
		Params:      opts.Params,
		Orientation: vp.Orientation,
		Invalidate:  p.Invalidate,
		Scheduler:   sched,
		Logger:      opts.Logger,
	})
	p.composer = NewFrameComposer(p.renderer, opts.Cache, opts.Background)
	return p
}

// Renderer exposes the underlying renderer.
func (p *ViewfinderPresenter) Renderer() *overlay.Renderer { return p.renderer }

// Viewport exposes the viewport model.
func (p *ViewfinderPresenter) Viewport() *model.ViewportModel { return p.viewport }

// Resize records a new preview size.
func (p *ViewfinderPresenter) Resize(w, h int) {
	if p == nil || !p.viewport.SetSize(w, h) {
		return
	}
	p.renderer.OnSizeChanged(w, h)
}

// Poll reads the preview size from the view and applies it.
func (p *ViewfinderPresenter) Poll() {
	if p == nil || p.view == nil {
		return
	}
	p.Resize(p.view.PreviewSize())
}

// Rotate pins the opposite orientation and returns it.
func (p *ViewfinderPresenter) Rotate() framing.Orientation {
	o := p.viewport.ToggleOrientation()
	p.renderer.OnOrientationChanged(o)
	return o
}

// AutoOrientation drops a pinned orientation so it follows the preview aspect.
func (p *ViewfinderPresenter) AutoOrientation() {
	p.viewport.ClearOrientation()
	p.renderer.OnOrientationChanged(p.viewport.Orientation())
}

// SetParams applies new drawing parameters.
func (p *ViewfinderPresenter) SetParams(params overlay.Params) {
	p.composer.Bump()
	p.renderer.SetParams(params)
}

// SetBackground changes the preview fill.
func (p *ViewfinderPresenter) SetBackground(col color.Color) {
	p.composer.SetBackground(col)
	p.Invalidate(image.Rectangle{})
}

// SetCalculator swaps the framing calculator (config change).
func (p *ViewfinderPresenter) SetCalculator(c *framing.Calculator) {
	p.renderer.SetCalculator(c)
}

// Invalidate marks region dirty and schedules a paint if none is pending.
// An empty region means the whole preview.
func (p *ViewfinderPresenter) Invalidate(region image.Rectangle) {
	if p == nil {
		return
	}
	if region.Empty() {
		p.full = true
	} else {
		p.dirty = p.dirty.Union(region)
	}
	if p.scheduled {
		return
	}
	p.scheduled = true
	p.sched.After(0, p.Paint)
}

// Paint composes the dirty region and pushes the frame to the view.
func (p *ViewfinderPresenter) Paint() {
	if p == nil {
		return
	}
	p.scheduled = false
	region := p.dirty
	if p.full {
		region = image.Rectangle{}
	}
	p.dirty, p.full = image.Rectangle{}, false

	w, h := p.viewport.Size()
	if w <= 0 || h <= 0 {
		return
	}
	img, painted := p.composer.Compose(w, h, region)
	p.paints++
	if p.logger != nil {
		p.logger.Debug("viewfinder paint", "region", painted.String(), "state", p.renderer.State().String())
	}
	if p.view != nil {
		p.view.UpdatePreview(img)
	}
}

// Frame composes and returns a full frame without touching the view.
func (p *ViewfinderPresenter) Frame() *image.RGBA {
	w, h := p.viewport.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	img, _ := p.composer.Compose(w, h, image.Rectangle{})
	return img
}

// Paints returns the number of frames pushed so far.
func (p *ViewfinderPresenter) Paints() uint64 { return p.paints }
