package presenter

import (
	"image"
	"image/color"

	"github.com/soocke/viewfinder-go/domain/overlay"
	"github.com/soocke/viewfinder-go/ui/images"
)

// FrameComposer produces the preview bitmap: a cached static layer
// (background, mask while scanning, corner brackets) with the laser line
// painted on top of the dirty region.
type FrameComposer struct {
	renderer   *overlay.Renderer
	cache      *images.LayerCache
	background color.Color
	generation uint64
	frame      *images.Canvas
	last       images.LayerKey
}

// NewFrameComposer returns a composer drawing r. cache may be nil.
func NewFrameComposer(r *overlay.Renderer, cache *images.LayerCache, background color.Color) *FrameComposer {
	if background == nil {
		background = color.Transparent
	}
	return &FrameComposer{renderer: r, cache: cache, background: background}
}

// SetBackground changes the fill behind the overlay.
func (c *FrameComposer) SetBackground(col color.Color) {
	if col == nil {
		col = color.Transparent
	}
	c.background = col
	c.Bump()
}

// Bump invalidates cached static layers after a parameter change.
func (c *FrameComposer) Bump() { c.generation++ }

// Compose repaints region of a w x h frame and returns the frame along with
// the region actually repainted. A size change or empty region repaints
// everything. The returned image is reused by the next call.
func (c *FrameComposer) Compose(w, h int, region image.Rectangle) (*image.RGBA, image.Rectangle) {
	if c.frame == nil || c.frame.Bounds() != image.Rect(0, 0, w, h) {
		c.frame = images.NewCanvas(w, h)
		region = image.Rectangle{}
	}
	bounds := c.frame.Bounds()
	scanning := c.renderer.Animator().Running()
	fr, _ := c.renderer.FramingRect()
	key := images.LayerKey{Size: bounds.Size(), Rect: fr, Masked: scanning, Generation: c.generation}
	// a different static layer invalidates every pixel
	if key != c.last {
		region = image.Rectangle{}
		c.last = key
	}
	if region.Empty() {
		region = bounds
	}
	region = region.Intersect(bounds)
	if region.Empty() {
		return c.frame.Image(), region
	}

	static := c.cache.GetOrRender(key, func(cv *images.Canvas) {
		cv.Clear(c.background)
		if scanning {
			c.renderer.DrawMask(cv)
		}
		c.renderer.Draw(cv)
	})
	images.CopyRegion(c.frame.Image(), static, region)

	if scanning && region.Overlaps(c.renderer.LaserRegion()) {
		c.frame.SetClip(region)
		c.renderer.DrawLaser(c.frame)
		c.frame.SetClip(image.Rectangle{})
	}
	return c.frame.Image(), region
}
