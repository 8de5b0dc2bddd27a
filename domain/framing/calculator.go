package framing

import (
	"fmt"
	"image"
)

// Calculator derives the framing rectangle from the view size and orientation.
// It holds no state besides its configuration; Compute is pure.
type Calculator struct {
	Constraints Constraints
	// SquarePortrait forces height == width in portrait, ignoring the
	// portrait-height constraint. This is the stock behaviour.
	SquarePortrait bool
}

// NewCalculator returns a calculator over the given constraint table.
func NewCalculator(c Constraints, squarePortrait bool) *Calculator {
	return &Calculator{Constraints: c, SquarePortrait: squarePortrait}
}

// DefaultCalculator uses DefaultConstraints with a square portrait frame.
func DefaultCalculator() *Calculator {
	return NewCalculator(DefaultConstraints(), true)
}

// Compute returns the framing rectangle centered in a viewWidth x viewHeight
// view. When the hard minima exceed the view the rectangle extends past its
// edges; callers that need containment must check for it.
func (c *Calculator) Compute(viewWidth, viewHeight int, o Orientation) (image.Rectangle, error) {
	if viewWidth <= 0 || viewHeight <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, viewWidth, viewHeight)
	}
	var width, height int
	if o != Portrait {
		width = c.Constraints.LandscapeWidth.Dimension(viewWidth)
		height = c.Constraints.LandscapeHeight.Dimension(viewHeight)
	} else {
		width = c.Constraints.PortraitWidth.Dimension(viewWidth)
		if c.SquarePortrait {
			height = width
		} else {
			height = c.Constraints.PortraitHeight.Dimension(viewHeight)
		}
	}
	left := (viewWidth - width) / 2
	top := (viewHeight - height) / 2
	return image.Rect(left, top, left+width, top+height), nil
}

// Compute runs the default calculator.
func Compute(viewWidth, viewHeight int, o Orientation) (image.Rectangle, error) {
	return DefaultCalculator().Compute(viewWidth, viewHeight, o)
}
