package images

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"

	"github.com/soocke/viewfinder-go/domain/overlay"
)

// Canvas is an overlay.Surface backed by an *image.RGBA. Fills composite
// with source-over; strokes are rasterised with x/image/vector.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	clip image.Rectangle
	ras  *vector.Rasterizer
	str  stroker
}

// NewCanvas allocates a transparent w x h canvas.
func NewCanvas(w, h int) *Canvas {
	return NewCanvasFrom(acquireRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))))
}

// NewCanvasFrom draws directly into img.
func NewCanvasFrom(img *image.RGBA) *Canvas {
	return &Canvas{img: img, clip: img.Bounds()}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds implements overlay.Surface.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// SetClip restricts subsequent drawing to r. An empty r resets the clip to
// the full canvas.
func (c *Canvas) SetClip(r image.Rectangle) {
	if r.Empty() {
		c.clip = c.img.Bounds()
		return
	}
	c.clip = r.Intersect(c.img.Bounds())
}

// Clip returns the active clip rectangle.
func (c *Canvas) Clip() image.Rectangle { return c.clip }

// Clear replaces every pixel inside the clip with col.
func (c *Canvas) Clear(col color.Color) {
	xdraw.Draw(c.img, c.clip, image.NewUniform(col), image.Point{}, xdraw.Src)
}

// FillRect implements overlay.Surface.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color, alpha uint8) {
	r = r.Canon().Intersect(c.clip)
	if r.Empty() || alpha == 0 {
		return
	}
	xdraw.Draw(c.img, r, image.NewUniform(withAlpha(col, alpha)), image.Point{}, xdraw.Over)
}

// StrokePath implements overlay.Surface.
func (c *Canvas) StrokePath(p path.Path, style overlay.StrokeStyle) {
	if p == nil || style.Width <= 0 || c.clip.Empty() {
		return
	}
	if style.CornerRadius > 0 {
		p = overlay.RoundCorners(p, style.CornerRadius)
	}
	// The rasteriser covers only the clip; its origin maps to clip.Min.
	w, h := c.clip.Dx(), c.clip.Dy()
	if c.ras == nil {
		c.ras = vector.NewRasterizer(w, h)
	} else {
		c.ras.Reset(w, h)
	}
	if !c.str.outline(c.ras, p, style, float64(c.clip.Min.X), float64(c.clip.Min.Y)) {
		return
	}
	col := style.Color
	if col == nil {
		col = color.Black
	}
	c.ras.DrawOp = xdraw.Over
	c.ras.Draw(c.img, c.clip, image.NewUniform(col), image.Point{})
}

func withAlpha(col color.Color, alpha uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	n.A = alpha
	return n
}

var _ overlay.Surface = (*Canvas)(nil)
