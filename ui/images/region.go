package images

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"
)

// ClampRegion intersects r with bounds. An empty r means all of bounds.
func ClampRegion(bounds, r image.Rectangle) image.Rectangle {
	if r.Empty() {
		return bounds
	}
	return r.Intersect(bounds)
}

// ExtractRegion returns the part of frame inside r (clamped to the frame) and
// the clamped rectangle in frame coordinates. The returned image shares
// pixels with frame.
func ExtractRegion(frame *image.RGBA, r image.Rectangle) (*image.RGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	clamped := ClampRegion(frame.Bounds(), r)
	if clamped.Empty() {
		return nil, image.Rectangle{}, errors.New("region outside frame")
	}
	sub, ok := frame.SubImage(clamped).(*image.RGBA)
	if !ok {
		return nil, image.Rectangle{}, errors.New("unexpected sub image type")
	}
	return sub, clamped, nil
}

// CopyRegion copies the pixels of src inside r into dst, replacing what was
// there. It returns the rectangle actually copied.
func CopyRegion(dst, src *image.RGBA, r image.Rectangle) image.Rectangle {
	if dst == nil || src == nil {
		return image.Rectangle{}
	}
	sub, clamped, err := ExtractRegion(src, r)
	if err != nil {
		return image.Rectangle{}
	}
	clamped = clamped.Intersect(dst.Bounds())
	xdraw.Draw(dst, clamped, sub, clamped.Min, xdraw.Src)
	return clamped
}
