package imgproc

import (
	"errors"
	"fmt"
	"image"

	"github.com/DaniruKun/circle-tracker/control"
	"github.com/vova616/screenshot"
	"gocv.io/x/gocv"
)

var ErrSourceClosed = errors.New("frame source closed")

var (
	_ control.FrameSource[gocv.Mat] = (*Capture)(nil)
	_ control.FrameSource[gocv.Mat] = (*Screen)(nil)
)

// Source produces BGR frames. The returned Mat is owned by the source and
// only valid until the next call to Acquire.
type Source interface {
	Acquire() (gocv.Mat, error)
	Size() (width, height int)
	Close() error
}

// Capture reads frames from a camera or a video file
type Capture struct {
	video *gocv.VideoCapture
	frame gocv.Mat
	name  string
}

// Opens the camera with the given device id
func OpenCamera(id int) (*Capture, error) {
	video, err := gocv.VideoCaptureDevice(id)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", id, err)
	}
	return &Capture{video: video, frame: gocv.NewMat(), name: fmt.Sprintf("camera %d", id)}, nil
}

// Opens a video file, frames are read at decode speed
func OpenFile(filePath string) (*Capture, error) {
	video, err := gocv.VideoCaptureFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open video file %s: %w", filePath, err)
	}
	return &Capture{video: video, frame: gocv.NewMat(), name: filePath}, nil
}

func (c *Capture) Acquire() (gocv.Mat, error) {
	if ok := c.video.Read(&c.frame); !ok {
		return c.frame, fmt.Errorf("%w: %s", ErrSourceClosed, c.name)
	}
	if c.frame.Empty() {
		return c.frame, fmt.Errorf("%w: %s", ErrEmptyFrame, c.name)
	}
	return c.frame, nil
}

func (c *Capture) Size() (width, height int) {
	return int(c.video.Get(gocv.VideoCaptureFrameWidth)), int(c.video.Get(gocv.VideoCaptureFrameHeight))
}

func (c *Capture) Close() error {
	return errors.Join(c.frame.Close(), c.video.Close())
}

// Screen grabs frames directly from the display
type Screen struct {
	rect  image.Rectangle
	frame gocv.Mat
}

// NewScreen captures rect, or the whole primary screen when rect is empty
func NewScreen(rect image.Rectangle) (*Screen, error) {
	if rect.Empty() {
		full, err := screenshot.ScreenRect()
		if err != nil {
			return nil, fmt.Errorf("screen bounds: %w", err)
		}
		rect = full
	}
	return &Screen{rect: rect, frame: gocv.NewMat()}, nil
}

func (s *Screen) Acquire() (gocv.Mat, error) {
	img, err := screenshot.CaptureRect(s.rect)
	if err != nil {
		return s.frame, fmt.Errorf("capture screen %v: %w", s.rect, err)
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return s.frame, fmt.Errorf("convert screen capture: %w", err)
	}

	s.frame.Close()
	s.frame = mat
	return s.frame, nil
}

func (s *Screen) Size() (width, height int) {
	return s.rect.Dx(), s.rect.Dy()
}

func (s *Screen) Close() error {
	return s.frame.Close()
}
