package images

import (
	"image"
	"sync"
)

// Pool of RGBA backing buffers. Full-window layers are large and are
// replaced on every resize or parameter change, so evicted layers are
// recycled instead of left to the GC.
var layerPool sync.Pool // stores *image.RGBA

// acquireRGBA returns a transparent RGBA image covering rect, reusing a
// pooled buffer when one is large enough.
func acquireRGBA(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := layerPool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		return image.NewRGBA(rect)
	}
	img.Pix = img.Pix[:needed]
	clear(img.Pix)
	img.Stride = w * 4
	img.Rect = rect
	return img
}

// recycleRGBA hands img back to the pool. The caller must not touch it again.
func recycleRGBA(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	layerPool.Put(img)
}
