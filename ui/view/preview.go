package view

import (
	"image"

	"github.com/soocke/viewfinder-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Preview shows the composed viewfinder frame in a label.
type Preview interface {
	UpdatePreview(img image.Image)
	SetMaxSize(w, h int)
	Reset()
}

type preview struct {
	label     *LabelWidget
	prevPhoto *Img // disposed before replacement so old pixel data is freed
	maxW      int
	maxH      int
}

const (
	placeholderW = 320
	placeholderH = 180
)

// NewPreview creates the preview label at row/column of the root grid.
func NewPreview(row, col, rowspan int) Preview {
	photo := NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, placeholderW, placeholderH)))))
	lbl := Label(Image(photo), Borderwidth(1), Relief("sunken"), Anchor("nw"))
	Grid(lbl, Row(row), Column(col), Rowspan(rowspan), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))
	return &preview{label: lbl, prevPhoto: photo}
}

func (v *preview) UpdatePreview(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	if v.maxW > 0 && v.maxH > 0 {
		img = images.ScaleToFit(img, v.maxW, v.maxH)
	}
	photo := NewPhoto(Data(images.EncodePNG(img)))
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}

func (v *preview) Reset() {
	v.UpdatePreview(image.NewRGBA(image.Rect(0, 0, placeholderW, placeholderH)))
}

// SetMaxSize bounds displayed frames; larger frames are scaled down.
func (v *preview) SetMaxSize(w, h int) {
	if v == nil {
		return
	}
	v.maxW, v.maxH = w, h
}
