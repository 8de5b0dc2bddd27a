package framing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when the view has not been measured yet
	// or reports a zero/negative size.
	ErrInvalidDimensions = errors.New("framing: invalid view dimensions")
	// ErrInvalidConstraint is returned by Constraints.Validate.
	ErrInvalidConstraint = errors.New("framing: invalid size constraint")
)

// Orientation enumerates how the display is currently held.
type Orientation int

const (
	NotPortrait Orientation = iota
	Portrait
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case NotPortrait:
		return "landscape"
	default:
		return "unknown"
	}
}

// OrientationProvider reports the orientation of the current display.
type OrientationProvider func() Orientation

// OrientationForSize treats a view taller than it is wide as portrait.
func OrientationForSize(width, height int) Orientation {
	if height > width {
		return Portrait
	}
	return NotPortrait
}

// Reference resolutions the hard maxima are derived from.
const (
	MinFrameWidth  = 240
	MinFrameHeight = 240

	referenceLong  = 1920
	referenceShort = 1080
)

// SizeConstraint bounds one axis of the framing rectangle: the ratio of the
// view resolution it wants, clamped to [HardMin, HardMax].
type SizeConstraint struct {
	Ratio   float64 `json:"ratio"`
	HardMin int     `json:"hard_min"`
	HardMax int     `json:"hard_max"`
}

// Dimension returns floor(Ratio*resolution) clamped to the hard bounds.
func (c SizeConstraint) Dimension(resolution int) int {
	dim := int(c.Ratio * float64(resolution))
	if dim < c.HardMin {
		return c.HardMin
	}
	if dim > c.HardMax {
		return c.HardMax
	}
	return dim
}

func (c SizeConstraint) validate(name string) error {
	if c.Ratio <= 0 || c.Ratio > 1 {
		return fmt.Errorf("%w: %s ratio %v outside (0,1]", ErrInvalidConstraint, name, c.Ratio)
	}
	if c.HardMin <= 0 || c.HardMin > c.HardMax {
		return fmt.Errorf("%w: %s bounds [%d,%d]", ErrInvalidConstraint, name, c.HardMin, c.HardMax)
	}
	return nil
}

// Constraints is the fixed table of per-orientation, per-axis constraints.
// PortraitHeight is only consulted when the calculator does not force a
// square frame in portrait.
type Constraints struct {
	LandscapeWidth  SizeConstraint `json:"landscape_width"`
	LandscapeHeight SizeConstraint `json:"landscape_height"`
	PortraitWidth   SizeConstraint `json:"portrait_width"`
	PortraitHeight  SizeConstraint `json:"portrait_height"`
}

// DefaultConstraints returns the stock table: 5/8 of the view in landscape,
// 7/8 of the width in portrait.
func DefaultConstraints() Constraints {
	landscapeWidth := SizeConstraint{Ratio: 5.0 / 8, HardMin: MinFrameWidth}
	landscapeWidth.HardMax = int(referenceLong * landscapeWidth.Ratio)
	landscapeHeight := SizeConstraint{Ratio: 5.0 / 8, HardMin: MinFrameHeight}
	landscapeHeight.HardMax = int(referenceShort * landscapeHeight.Ratio)
	portraitWidth := SizeConstraint{Ratio: 7.0 / 8, HardMin: MinFrameWidth}
	portraitWidth.HardMax = int(referenceShort * portraitWidth.Ratio)
	portraitHeight := SizeConstraint{Ratio: 3.0 / 8, HardMin: MinFrameHeight}
	portraitHeight.HardMax = int(referenceLong * portraitHeight.Ratio)
	return Constraints{
		LandscapeWidth:  landscapeWidth,
		LandscapeHeight: landscapeHeight,
		PortraitWidth:   portraitWidth,
		PortraitHeight:  portraitHeight,
	}
}

// Validate reports the first malformed constraint.
func (c Constraints) Validate() error {
	if err := c.LandscapeWidth.validate("landscape width"); err != nil {
		return err
	}
	if err := c.LandscapeHeight.validate("landscape height"); err != nil {
		return err
	}
	if err := c.PortraitWidth.validate("portrait width"); err != nil {
		return err
	}
	return c.PortraitHeight.validate("portrait height")
}
