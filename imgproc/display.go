package imgproc

import (
	"fmt"
	"image"

	"github.com/DaniruKun/circle-tracker/aim"
	"github.com/DaniruKun/circle-tracker/control"
	"gocv.io/x/gocv"
)

// QuitKey stops the loop when pressed in the preview window
const QuitKey = 'q'

var (
	referenceColor = HSV{H: 0, S: 1, V: 1}            // red
	centerColor    = HSV{H: 60, S: 1, V: 100.0 / 255} // olive
	outlineColor   = HSV{H: 300, S: 1, V: 1}          // magenta
	lineColor      = HSV{H: 120, S: 1, V: 1}          // green
	textColor      = HSV{}                            // black
)

var _ control.Observer[gocv.Mat] = (*Display)(nil)

// Display shows annotated frames for the operator. It never influences the
// control decisions; pressing QuitKey calls stop.
type Display struct {
	window *gocv.Window
	stop   func()
}

func NewDisplay(name string, stop func()) *Display {
	return &Display{window: gocv.NewWindow(name), stop: stop}
}

// Observe draws the annotation on frame in place and shows it
func (d *Display) Observe(frame gocv.Mat, a control.Annotation) {
	Annotate(&frame, a)

	d.window.IMShow(frame)
	if d.window.WaitKey(1) == QuitKey && d.stop != nil {
		d.stop()
	}
}

func (d *Display) Close() error {
	return d.window.Close()
}

// Annotate draws the reference point, every candidate and the chosen target onto img
func Annotate(img *gocv.Mat, a control.Annotation) {
	ref := toImagePoint(a.Reference)
	gocv.Circle(img, ref, 5, referenceColor.RGBA(), 2)

	for _, c := range a.Candidates {
		center := toImagePoint(c.Center)
		gocv.Circle(img, center, 1, centerColor.RGBA(), 3)
		gocv.Circle(img, center, c.Radius, outlineColor.RGBA(), 3)
	}

	if !a.Found {
		return
	}

	gocv.Line(img, ref, toImagePoint(a.Selection.Candidate.Center), lineColor.RGBA(), 3)
	gocv.PutText(img, fmt.Sprintf("%.1f", a.Selection.Distance), ref,
		gocv.FontHersheySimplex, 1, textColor.RGBA(), 2)
}

func toImagePoint(p aim.Point) image.Point {
	return image.Point{X: p.X, Y: p.Y}
}
