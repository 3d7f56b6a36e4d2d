package imgproc

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gocv.io/x/gocv"
)

type HSV struct {
	H uint32  // 0 <= H < 360
	S float64 // 0 <= S <= 1
	V float64 // 0 <= V <= 1
}

const (
	CW  = "cw"
	CCW = "ccw"
)

var (
	ErrUnknownDirection = errors.New("unknown hue direction")
	ErrInvalidHueWindow = errors.New("invalid hue window")
)

// Rotates the hue `H` by a number of `degrees` in the given `direction`, wrapping around 360.
// Direction is either `cw` or `ccw`
func (col *HSV) RotateHue(degrees uint32, direction string) error {
	degrees %= 360

	switch direction {
	case CW:
		col.H = (col.H + degrees) % 360
	case CCW:
		col.H = (col.H + 360 - degrees) % 360
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}
	return nil
}

// Converts an HSV color to RGBA, where `A` is implicitly set to 255 (solid)
func (col HSV) RGBA() color.RGBA {
	r, g, b := colorful.Hsv(float64(col.H), col.S, col.V).RGB255()
	return color.RGBA{r, g, b, 255}
}

// Scalar returns the color in OpenCV's 8-bit HSV units (H/2, S*255, V*255)
func (col HSV) Scalar() gocv.Scalar {
	return gocv.NewScalar(
		float64(col.H/2),
		math.Round(col.S*255),
		math.Round(col.V*255),
		0,
	)
}

// HSVRange is an inclusive HSV threshold window
type HSVRange struct {
	Lower HSV
	Upper HSV
}

// NewHueWindow builds a window of +-tolerance degrees around hue, accepting any
// saturation and value at or above the given minimums. Windows crossing 0 deg are rejected.
func NewHueWindow(hue, tolerance uint32, minSat, minVal float64) (HSVRange, error) {
	if tolerance >= 180 {
		return HSVRange{}, fmt.Errorf("%w: tolerance %d", ErrInvalidHueWindow, tolerance)
	}

	lower := HSV{H: hue % 360, S: minSat, V: minVal}
	upper := HSV{H: hue % 360, S: 1, V: 1}
	if err := lower.RotateHue(tolerance, CCW); err != nil {
		return HSVRange{}, err
	}
	if err := upper.RotateHue(tolerance, CW); err != nil {
		return HSVRange{}, err
	}
	// An upper edge of exactly 360 deg wraps to 0, keep it as the top of the hue circle
	if upper.H == 0 && lower.H > 0 {
		upper.H = 359
	}

	r := HSVRange{Lower: lower, Upper: upper}
	return r, r.Validate()
}

func (r HSVRange) Validate() error {
	if r.Lower.H > r.Upper.H {
		return fmt.Errorf("%w: hue %d-%d wraps around 0", ErrInvalidHueWindow, r.Lower.H, r.Upper.H)
	}
	if r.Lower.S > r.Upper.S || r.Lower.V > r.Upper.V {
		return fmt.Errorf("%w: lower bound %+v above upper %+v", ErrInvalidHueWindow, r.Lower, r.Upper)
	}
	return nil
}

// Scalars returns the window bounds for gocv.InRangeWithScalar
func (r HSVRange) Scalars() (lower, upper gocv.Scalar) {
	return r.Lower.Scalar(), r.Upper.Scalar()
}
