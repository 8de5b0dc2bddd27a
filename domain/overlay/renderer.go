package overlay

import (
	"image"
	"log/slog"
	"sync"
	"sync/atomic"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"github.com/soocke/viewfinder-go/domain/framing"
)

// Options configures a Renderer. Only Calculator is required.
type Options struct {
	Calculator *framing.Calculator
	Params     Params
	// Orientation, when set, is queried on every recomputation and takes
	// precedence over values passed to OnOrientationChanged.
	Orientation framing.OrientationProvider
	Invalidate  Invalidator
	Scheduler   Scheduler
	Logger      *slog.Logger
}

// Renderer owns the published framing rectangle and paints the viewfinder
// (mask, corner brackets, laser line) relative to it.
//
// The rectangle is replaced atomically on every recomputation and never
// mutated, so FramingRect may be read from any goroutine. Drawing and
// notifications are expected to arrive on the host's event loop.
type Renderer struct {
	calc        *framing.Calculator
	params      Params
	provider    framing.OrientationProvider
	invalidate  Invalidator
	logger      *slog.Logger
	laser       *LaserAnimator
	rect        atomic.Pointer[image.Rectangle]
	width       int
	height      int
	orientation framing.Orientation
	phase       int

	mu        sync.Mutex // guards state and listeners
	state     State
	listeners []StateListener
}

// NewRenderer builds an uninitialized renderer.
func NewRenderer(opts Options) *Renderer {
	calc := opts.Calculator
	if calc == nil {
		calc = framing.DefaultCalculator()
	}
	params := opts.Params
	params.normalize()
	r := &Renderer{
		calc:       calc,
		params:     params,
		provider:   opts.Orientation,
		invalidate: opts.Invalidate,
		logger:     opts.Logger,
	}
	r.laser = NewLaserAnimator(opts.Scheduler, r.requestRepaint, params.AnimationDelay)
	return r
}

// Setup recomputes the framing rectangle from the last known view size and
// requests a full repaint. Safe to call repeatedly.
func (r *Renderer) Setup() {
	r.updateFramingRect()
	r.requestRepaint(image.Rectangle{})
}

// OnSizeChanged records the new view size, recomputes and invalidates.
func (r *Renderer) OnSizeChanged(width, height int) {
	r.width, r.height = width, height
	if r.updateFramingRect() {
		r.requestRepaint(image.Rectangle{})
	}
}

// OnOrientationChanged records the new orientation, recomputes and invalidates.
func (r *Renderer) OnOrientationChanged(o framing.Orientation) {
	r.orientation = o
	if r.updateFramingRect() {
		r.requestRepaint(image.Rectangle{})
	}
}

// SetParams swaps the drawing parameters (theme or config change) and
// requests a full repaint.
func (r *Renderer) SetParams(p Params) {
	p.normalize()
	r.params = p
	r.laser.SetDelay(p.AnimationDelay)
	r.requestRepaint(image.Rectangle{})
}

// Params returns the drawing parameters in effect.
func (r *Renderer) Params() Params { return r.params }

// SetCalculator replaces the calculator and recomputes.
func (r *Renderer) SetCalculator(c *framing.Calculator) {
	if c == nil {
		return
	}
	r.calc = c
	if r.updateFramingRect() {
		r.requestRepaint(image.Rectangle{})
	}
}

// FramingRect returns the published rectangle, if any.
func (r *Renderer) FramingRect() (image.Rectangle, bool) {
	p := r.rect.Load()
	if p == nil {
		return image.Rectangle{}, false
	}
	return *p, true
}

// Orientation returns the orientation the next recomputation will use.
func (r *Renderer) Orientation() framing.Orientation {
	if r.provider != nil {
		return r.provider()
	}
	return r.orientation
}

func (r *Renderer) updateFramingRect() bool {
	o := r.Orientation()
	rect, err := r.calc.Compute(r.width, r.height, o)
	if err != nil {
		if r.logger != nil {
			r.logger.Debug("framing rect deferred", "error", err)
		}
		return false
	}
	r.rect.Store(&rect)
	if r.logger != nil {
		r.logger.Debug("framing rect updated", "rect", rect.String(), "orientation", o.String(), "width", r.width, "height", r.height)
	}
	r.syncState()
	return true
}

// Draw is the paint entry point: a no-op until a rectangle exists, then the
// corner brackets. Mask and laser are drawn by the host while scanning.
func (r *Renderer) Draw(s Surface) {
	if _, ok := r.FramingRect(); !ok || s == nil {
		return
	}
	r.DrawBorder(s)
}

// DrawMask shades everything outside the framing rectangle with four strips.
func (r *Renderer) DrawMask(s Surface) {
	fr, ok := r.FramingRect()
	if !ok || s == nil {
		return
	}
	b := s.Bounds()
	c := r.params.MaskColor
	s.FillRect(image.Rect(b.Min.X, b.Min.Y, b.Max.X, fr.Min.Y), c, c.A)
	s.FillRect(image.Rect(b.Min.X, fr.Min.Y, fr.Min.X, fr.Max.Y+1), c, c.A)
	s.FillRect(image.Rect(fr.Max.X+1, fr.Min.Y, b.Max.X, fr.Max.Y+1), c, c.A)
	s.FillRect(image.Rect(b.Min.X, fr.Max.Y+1, b.Max.X, b.Max.Y), c, c.A)
}

// DrawBorder strokes the four L-shaped corner brackets.
func (r *Renderer) DrawBorder(s Surface) {
	fr, ok := r.FramingRect()
	if !ok || s == nil {
		return
	}
	s.StrokePath(BorderPath(fr, r.params.LineLength), StrokeStyle{
		Color:        r.params.BorderColor,
		Width:        r.params.StrokeWidth,
		Join:         graphics.LineJoinRound,
		Cap:          graphics.LineCapRound,
		CornerRadius: r.params.CornerRadius,
	})
}

// DrawLaser paints the pulsing scan line through the middle of the framing
// rectangle, advances the phase and, while animating, asks for a repaint of
// LaserRegion after the animation delay.
func (r *Renderer) DrawLaser(s Surface) {
	fr, ok := r.FramingRect()
	if !ok || s == nil {
		return
	}
	if r.phase >= len(r.params.LaserAlpha) {
		r.phase = 0
	}
	alpha := r.params.LaserAlpha[r.phase]
	r.phase = (r.phase + 1) % len(r.params.LaserAlpha)
	middle := fr.Min.Y + fr.Dy()/2
	s.FillRect(image.Rect(fr.Min.X+2, middle-1, fr.Max.X-1, middle+2), r.params.LaserColor, alpha)
	r.laser.Request(fr.Inset(-r.params.PointSize))
}

// LaserRegion is the area repainted for each animation frame.
func (r *Renderer) LaserRegion() image.Rectangle {
	fr, ok := r.FramingRect()
	if !ok {
		return image.Rectangle{}
	}
	return fr.Inset(-r.params.PointSize)
}

// Phase returns the index of the alpha the next laser draw will use.
func (r *Renderer) Phase() int { return r.phase }

// StartLaser begins the laser animation and requests a repaint of the laser
// region so the first frame is drawn.
func (r *Renderer) StartLaser() {
	if !r.laser.Start() {
		return
	}
	r.syncState()
	r.requestRepaint(r.LaserRegion())
}

// StopLaser halts the animation; a pending repaint is cancelled.
func (r *Renderer) StopLaser() {
	if !r.laser.Stop() {
		return
	}
	r.syncState()
	r.requestRepaint(image.Rectangle{})
}

// Animator exposes the laser animator for inspection.
func (r *Renderer) Animator() *LaserAnimator { return r.laser }

// AddListener registers a state transition listener.
func (r *Renderer) AddListener(l StateListener) {
	if l == nil {
		return
	}
	r.mu.Lock()
	r.listeners = append(r.listeners, l)
	r.mu.Unlock()
}

// State returns the current lifecycle state.
func (r *Renderer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Renderer) syncState() {
	next := StateUninitialized
	if _, ok := r.FramingRect(); ok {
		next = StateIdle
		if r.laser.Running() {
			next = StateAnimating
		}
	}
	r.mu.Lock()
	prev := r.state
	if prev == next {
		r.mu.Unlock()
		return
	}
	r.state = next
	listeners := append([]StateListener(nil), r.listeners...)
	r.mu.Unlock()
	if r.logger != nil {
		r.logger.Debug("viewfinder state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range listeners {
		l(prev, next)
	}
}

func (r *Renderer) requestRepaint(region image.Rectangle) {
	if r.invalidate != nil {
		r.invalidate(region)
	}
}

// BorderPath returns the four corner brackets of fr, each a two-segment
// subpath of length lineLength along both adjoining edges.
func BorderPath(fr image.Rectangle, lineLength int) path.Path {
	l, t := float64(fr.Min.X), float64(fr.Min.Y)
	rt, b := float64(fr.Max.X), float64(fr.Max.Y)
	n := float64(lineLength)
	brackets := [4][3]vec.Vec2{
		{{X: l + n, Y: t}, {X: l, Y: t}, {X: l, Y: t + n}},
		{{X: rt - n, Y: t}, {X: rt, Y: t}, {X: rt, Y: t + n}},
		{{X: l + n, Y: b}, {X: l, Y: b}, {X: l, Y: b - n}},
		{{X: rt - n, Y: b}, {X: rt, Y: b}, {X: rt, Y: b - n}},
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, br := range brackets {
			buf[0] = br[0]
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			for _, pt := range br[1:] {
				buf[0] = pt
				if !yield(path.CmdLineTo, buf[:]) {
					return
				}
			}
		}
	}
}
