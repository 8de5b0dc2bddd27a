package images

import (
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"github.com/soocke/viewfinder-go/domain/framing"
	"github.com/soocke/viewfinder-go/domain/overlay"
)

var red = color.NRGBA{R: 255, A: 255}

func hline(x0, x1, y float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x0, Y: y}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y}})
	}
}

func TestCanvas_FillRectExact(t *testing.T) {
	c := NewCanvas(40, 40)
	c.FillRect(image.Rect(10, 10, 20, 20), red, 255)
	if got := c.Image().RGBAAt(10, 10); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("expected opaque red at (10,10), got %v", got)
	}
	if got := c.Image().RGBAAt(19, 19); got.A != 255 {
		t.Fatalf("expected (19,19) filled, got %v", got)
	}
	if got := c.Image().RGBAAt(20, 20); got.A != 0 {
		t.Fatalf("expected (20,20) untouched, got %v", got)
	}
}

func TestCanvas_FillRectAlphaOverridesColor(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(image.Rect(0, 0, 10, 10), red, 128)
	if got := c.Image().RGBAAt(5, 5); got.A != 128 {
		t.Fatalf("expected alpha 128, got %v", got)
	}
	c.FillRect(image.Rect(0, 0, 10, 10), red, 0)
	if got := c.Image().RGBAAt(5, 5); got.A != 128 {
		t.Fatalf("zero alpha fill must be a no-op, got %v", got)
	}
}

func TestCanvas_ClipRestrictsDrawing(t *testing.T) {
	c := NewCanvas(40, 40)
	c.SetClip(image.Rect(0, 0, 15, 15))
	c.FillRect(image.Rect(10, 10, 20, 20), red, 255)
	if got := c.Image().RGBAAt(12, 12); got.A != 255 {
		t.Fatalf("expected inside clip filled, got %v", got)
	}
	if got := c.Image().RGBAAt(16, 16); got.A != 0 {
		t.Fatalf("expected outside clip untouched, got %v", got)
	}
	c.SetClip(image.Rectangle{})
	if c.Clip() != c.Bounds() {
		t.Fatalf("empty clip should reset to bounds, got %v", c.Clip())
	}
}

func TestCanvas_StrokeLine(t *testing.T) {
	for _, cp := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound} {
		c := NewCanvas(40, 40)
		c.StrokePath(hline(5, 35, 20), overlay.StrokeStyle{Color: red, Width: 4, Cap: cp, Join: graphics.LineJoinRound})
		img := c.Image()
		for _, y := range []int{18, 19, 20, 21} {
			if got := img.RGBAAt(20, y); got.A < 250 || got.R < 250 {
				t.Fatalf("cap %v: expected (20,%d) covered, got %v", cp, y, got)
			}
		}
		if got := img.RGBAAt(20, 10); got.A != 0 {
			t.Fatalf("cap %v: expected (20,10) empty, got %v", cp, got)
		}
		capPixel := img.RGBAAt(4, 19)
		if cp == graphics.LineCapRound && capPixel.A < 250 {
			t.Fatalf("round cap should cover (4,19), got %v", capPixel)
		}
		if cp == graphics.LineCapButt && capPixel.A != 0 {
			t.Fatalf("butt cap should leave (4,19) empty, got %v", capPixel)
		}
	}
}

func TestCanvas_StrokeHonoursClip(t *testing.T) {
	c := NewCanvas(40, 40)
	c.SetClip(image.Rect(20, 0, 40, 40))
	c.StrokePath(hline(5, 35, 20), overlay.StrokeStyle{Color: red, Width: 4})
	if got := c.Image().RGBAAt(10, 20); got.A != 0 {
		t.Fatalf("expected clipped pixel empty, got %v", got)
	}
	if got := c.Image().RGBAAt(30, 20); got.A < 250 {
		t.Fatalf("expected pixel inside clip covered, got %v", got)
	}
}

func TestCanvas_RendersViewfinder(t *testing.T) {
	r := overlay.NewRenderer(overlay.Options{Calculator: framing.DefaultCalculator(), Params: overlay.DefaultParams()})
	r.OnSizeChanged(400, 400)
	fr, ok := r.FramingRect()
	if !ok || fr != image.Rect(75, 75, 325, 325) {
		t.Fatalf("unexpected framing rect %v", fr)
	}

	mask := NewCanvas(400, 400)
	r.DrawMask(mask)
	if got := mask.Image().RGBAAt(0, 0); got.A != 0x60 {
		t.Fatalf("expected mask alpha 0x60 outside rect, got %v", got)
	}
	if got := mask.Image().RGBAAt(200, 200); got.A != 0 {
		t.Fatalf("mask must not touch the interior, got %v", got)
	}

	border := NewCanvas(400, 400)
	r.Draw(border)
	bc := overlay.DefaultParams().BorderColor
	if got := border.Image().RGBAAt(110, 74); got.A < 250 || got.B < bc.B-5 {
		t.Fatalf("expected bracket pixel at (110,74), got %v", got)
	}
	if got := border.Image().RGBAAt(200, 74); got.A != 0 {
		t.Fatalf("top edge between brackets must stay clear, got %v", got)
	}
	if got := border.Image().RGBAAt(200, 200); got.A != 0 {
		t.Fatalf("interior must stay clear, got %v", got)
	}
}

func TestExtractRegion_Clamps(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	sub, r, err := ExtractRegion(frame, image.Rect(-10, 90, 50, 120))
	if err != nil || sub == nil {
		t.Fatalf("expected region, got err=%v", err)
	}
	if r != image.Rect(0, 90, 50, 100) {
		t.Fatalf("unexpected clamp %v", r)
	}
	if _, _, err := ExtractRegion(frame, image.Rect(200, 200, 210, 210)); err == nil {
		t.Fatalf("expected error for region outside frame")
	}
	if _, _, err := ExtractRegion(nil, image.Rect(0, 0, 1, 1)); err == nil {
		t.Fatalf("expected error for nil frame")
	}
	if _, r, _ := ExtractRegion(frame, image.Rectangle{}); r != frame.Bounds() {
		t.Fatalf("empty region should select the whole frame, got %v", r)
	}
}

func TestCopyRegion(t *testing.T) {
	src := NewCanvas(20, 20)
	src.FillRect(src.Bounds(), red, 255)
	dst := NewCanvas(20, 20)
	got := CopyRegion(dst.Image(), src.Image(), image.Rect(5, 5, 10, 10))
	if got != image.Rect(5, 5, 10, 10) {
		t.Fatalf("unexpected copied rect %v", got)
	}
	if dst.Image().RGBAAt(6, 6).A != 255 || dst.Image().RGBAAt(11, 11).A != 0 {
		t.Fatalf("copy touched wrong pixels")
	}
}

func TestLayerCache_GetOrRender(t *testing.T) {
	c, err := NewLayerCache(2)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	renders := 0
	render := func(cv *Canvas) { renders++; cv.FillRect(cv.Bounds(), red, 255) }
	key := LayerKey{Size: image.Pt(10, 10), Rect: image.Rect(1, 1, 9, 9)}
	a := c.GetOrRender(key, render)
	b := c.GetOrRender(key, render)
	if renders != 1 || a != b {
		t.Fatalf("expected single render and shared layer, renders=%d", renders)
	}
	c.GetOrRender(LayerKey{Size: image.Pt(10, 10), Generation: 1}, render)
	c.GetOrRender(LayerKey{Size: image.Pt(10, 10), Generation: 2}, render)
	if c.Len() != 2 {
		t.Fatalf("expected eviction down to 2 layers, got %d", c.Len())
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 3 {
		t.Fatalf("unexpected stats hits=%d misses=%d", hits, misses)
	}
	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("purge left %d layers", c.Len())
	}
}

func TestScaleToFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	got := ScaleToFit(src, 100, 100)
	if b := got.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("expected 100x50 got %v", b)
	}
	if small := ScaleToFit(src, 800, 800); small != image.Image(src) {
		t.Fatalf("image that fits must be returned unchanged")
	}
}

func TestAcquireRGBA_ClearsRecycledBuffer(t *testing.T) {
	img := acquireRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	recycleRGBA(img)
	got := acquireRGBA(image.Rect(0, 0, 4, 4))
	if got.Bounds() != image.Rect(0, 0, 4, 4) || got.Stride != 16 || len(got.Pix) != 64 {
		t.Fatalf("unexpected geometry %v stride=%d len=%d", got.Bounds(), got.Stride, len(got.Pix))
	}
	for i, b := range got.Pix {
		if b != 0 {
			t.Fatalf("pixel byte %d not cleared", i)
		}
	}
	if empty := acquireRGBA(image.Rectangle{}); len(empty.Pix) != 0 {
		t.Fatalf("empty rect should have no pixels")
	}
}
