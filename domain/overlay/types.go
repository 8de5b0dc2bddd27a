package overlay

import (
	"image"
	"image/color"
	"time"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// State enumerates the renderer lifecycle.
type State int

const (
	StateUninitialized State = iota // no framing rectangle yet
	StateIdle                       // rectangle present, laser not animating
	StateAnimating                  // laser redraws are being scheduled
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// StateListener is called on each state transition.
type StateListener func(prev, next State)

// StrokeStyle describes how a path is stroked. CornerRadius > 0 rounds every
// interior vertex of the path before stroking.
type StrokeStyle struct {
	Color        color.Color
	Width        float64
	Join         graphics.LineJoinStyle
	Cap          graphics.LineCapStyle
	CornerRadius float64
}

// Surface is the drawing target the renderer issues primitives against.
type Surface interface {
	Bounds() image.Rectangle
	// FillRect fills r with c, replacing the color's own alpha with alpha.
	FillRect(r image.Rectangle, c color.Color, alpha uint8)
	StrokePath(p path.Path, style StrokeStyle)
}

// Invalidator asks the host to repaint region. An empty region means the
// whole surface.
type Invalidator func(region image.Rectangle)

// Cancel revokes a scheduled callback. Calling it after the callback fired is a no-op.
type Cancel func()

// Scheduler posts fn to the host's event queue after d. fn must not run
// before After returns.
type Scheduler interface {
	After(d time.Duration, fn func()) Cancel
}

// DefaultLaserAlpha is the pulse table cycled by the laser line.
var DefaultLaserAlpha = []uint8{0, 64, 128, 192, 255, 192, 128, 64}

// Params groups the drawing constants normally looked up from the host theme.
type Params struct {
	MaskColor   color.NRGBA
	BorderColor color.NRGBA
	LaserColor  color.NRGBA
	LineLength  int
	StrokeWidth float64
	// CornerRadius rounds the bracket corners; 0 draws them sharp.
	CornerRadius float64
	// PointSize is the margin added around the framing rect for laser redraws.
	PointSize      int
	AnimationDelay time.Duration
	LaserAlpha     []uint8
}

// DefaultParams returns the stock viewfinder look.
func DefaultParams() Params {
	return Params{
		MaskColor:      color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x60},
		BorderColor:    color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff},
		LaserColor:     color.NRGBA{R: 0xcc, G: 0x00, B: 0x00, A: 0xff},
		LineLength:     60,
		StrokeWidth:    4,
		CornerRadius:   4,
		PointSize:      10,
		AnimationDelay: 80 * time.Millisecond,
		LaserAlpha:     append([]uint8(nil), DefaultLaserAlpha...),
	}
}

func (p *Params) normalize() {
	if len(p.LaserAlpha) != len(DefaultLaserAlpha) {
		p.LaserAlpha = append([]uint8(nil), DefaultLaserAlpha...)
	}
	if p.StrokeWidth <= 0 {
		p.StrokeWidth = 1
	}
	if p.CornerRadius < 0 {
		p.CornerRadius = 0
	}
	if p.LineLength < 0 {
		p.LineLength = 0
	}
	if p.PointSize < 0 {
		p.PointSize = 0
	}
	if p.AnimationDelay <= 0 {
		p.AnimationDelay = 80 * time.Millisecond
	}
}
