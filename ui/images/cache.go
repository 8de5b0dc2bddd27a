package images

import (
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LayerKey identifies a rendered static layer (background, mask and border)
// for one surface size, framing rectangle and parameter generation.
type LayerKey struct {
	Size       image.Point
	Rect       image.Rectangle
	Masked     bool
	Generation uint64
}

// LayerCache keeps recently rendered static layers so laser frames only
// repaint the laser region on top of a cached copy.
type LayerCache struct {
	layers *lru.Cache[LayerKey, *image.RGBA]
	hits   uint64
	misses uint64
}

// NewLayerCache returns a cache holding at most size layers. Evicted layers
// are recycled, so callers must not keep a layer past the next GetOrRender.
func NewLayerCache(size int) (*LayerCache, error) {
	if size < 1 {
		size = 1
	}
	c, err := lru.NewWithEvict(size, func(_ LayerKey, img *image.RGBA) { recycleRGBA(img) })
	if err != nil {
		return nil, err
	}
	return &LayerCache{layers: c}, nil
}

// GetOrRender returns the cached layer for key, rendering it with render on
// a fresh canvas of key.Size when missing. Callers must not modify the result.
func (c *LayerCache) GetOrRender(key LayerKey, render func(*Canvas)) *image.RGBA {
	if c != nil {
		if img, ok := c.layers.Get(key); ok {
			c.hits++
			return img
		}
		c.misses++
	}
	cv := NewCanvas(key.Size.X, key.Size.Y)
	if render != nil {
		render(cv)
	}
	if c != nil {
		c.layers.Add(key, cv.Image())
	}
	return cv.Image()
}

// Purge drops every cached layer.
func (c *LayerCache) Purge() {
	if c == nil {
		return
	}
	c.layers.Purge()
}

// Len returns the number of cached layers.
func (c *LayerCache) Len() int {
	if c == nil {
		return 0
	}
	return c.layers.Len()
}

// Stats returns cache hit and miss counts.
func (c *LayerCache) Stats() (hits, misses uint64) {
	if c == nil {
		return 0, 0
	}
	return c.hits, c.misses
}
