package imgproc

import (
	"errors"
	"fmt"
	"math"

	"github.com/DaniruKun/circle-tracker/aim"
	"github.com/DaniruKun/circle-tracker/control"
	"gocv.io/x/gocv"
)

var ErrEmptyFrame = errors.New("empty frame")

var _ control.Detector[gocv.Mat] = (*CircleDetector)(nil)

// CircleDetector finds colored circles with an HSV threshold followed by a Hough transform.
// Intermediate Mats are reused between frames; it is not safe for concurrent use.
type CircleDetector struct {
	cfg          Config
	lower, upper gocv.Scalar

	hsv     gocv.Mat
	mask    gocv.Mat
	masked  gocv.Mat
	circles gocv.Mat
}

func NewCircleDetector(cfg Config) (*CircleDetector, error) {
	if err := cfg.HueWindow.Validate(); err != nil {
		return nil, err
	}
	if cfg.Channel < 0 || cfg.Channel > 2 {
		return nil, fmt.Errorf("channel %d out of range", cfg.Channel)
	}
	if cfg.MinRadius > cfg.MaxRadius {
		return nil, fmt.Errorf("radius bounds %d-%d", cfg.MinRadius, cfg.MaxRadius)
	}

	lower, upper := cfg.HueWindow.Scalars()
	return &CircleDetector{
		cfg:     cfg,
		lower:   lower,
		upper:   upper,
		hsv:     gocv.NewMat(),
		mask:    gocv.NewMat(),
		masked:  gocv.NewMat(),
		circles: gocv.NewMat(),
	}, nil
}

// Detect returns the circles found in a BGR frame in the order the transform reports them
func (d *CircleDetector) Detect(frame gocv.Mat) ([]aim.Candidate, error) {
	if frame.Empty() {
		return nil, ErrEmptyFrame
	}

	gocv.CvtColor(frame, &d.hsv, gocv.ColorBGRToHSV)
	gocv.InRangeWithScalar(d.hsv, d.lower, d.upper, &d.mask)

	// Keep one channel of the frame where the mask is set, zero elsewhere
	channels := gocv.Split(frame)
	gocv.BitwiseAnd(channels[d.cfg.Channel], d.mask, &d.masked)
	for _, ch := range channels {
		ch.Close()
	}

	gocv.HoughCirclesWithParams(d.masked, &d.circles, gocv.HoughGradient,
		d.cfg.DP, d.cfg.MinDist,
		d.cfg.Param1, d.cfg.Param2,
		d.cfg.MinRadius, d.cfg.MaxRadius)

	if d.circles.Empty() || d.circles.Cols() == 0 {
		return nil, nil
	}

	candidates := make([]aim.Candidate, d.circles.Cols())
	for i := range candidates {
		candidates[i] = aim.Candidate{
			Center: aim.Point{
				X: roundPx(d.circles.GetFloatAt(0, i*3)),
				Y: roundPx(d.circles.GetFloatAt(0, i*3+1)),
			},
			Radius: roundPx(d.circles.GetFloatAt(0, i*3+2)),
		}
	}
	return candidates, nil
}

func (d *CircleDetector) Close() error {
	var errs []error
	for _, m := range []*gocv.Mat{&d.hsv, &d.mask, &d.masked, &d.circles} {
		errs = append(errs, m.Close())
	}
	return errors.Join(errs...)
}

// roundPx rounds halves to even, so .5 centres land on the same pixel as numpy's around
func roundPx(v float32) int {
	return int(math.RoundToEven(float64(v)))
}
