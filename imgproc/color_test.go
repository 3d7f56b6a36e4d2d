package imgproc

import (
	"errors"
	"fmt"
	"image/color"
	"testing"
)

func TestRotateHue(t *testing.T) {
	hsv := HSV{H: 0, S: 1, V: 1}

	if err := hsv.RotateHue(1, "ccw"); err != nil {
		t.Fatal(err)
	}
	if hsv.H != 359 {
		t.Error("expected hue of 359, got: ", hsv.H)
	}

	if err := hsv.RotateHue(2, "cw"); err != nil {
		t.Fatal(err)
	}
	if hsv.H != 1 {
		t.Error("expected hue of 1, got: ", hsv.H)
	}

	if err := hsv.RotateHue(720, "cw"); err != nil {
		t.Fatal(err)
	}
	if hsv.H != 1 {
		t.Error("expected full turns to leave hue at 1, got: ", hsv.H)
	}

	if err := hsv.RotateHue(10, "up"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestRGBA(t *testing.T) {
	var tests = []struct {
		hsv  HSV
		rgba color.RGBA
	}{
		{HSV{0, 0, 0}, color.RGBA{0, 0, 0, 255}},
		{HSV{0, 0, 1}, color.RGBA{255, 255, 255, 255}},
		{HSV{0, 1, 1}, color.RGBA{255, 0, 0, 255}},
		{HSV{120, 1, 1}, color.RGBA{0, 255, 0, 255}},
		{HSV{240, 1, 1}, color.RGBA{0, 0, 255, 255}},
		{HSV{300, 1, 1}, color.RGBA{255, 0, 255, 255}},
	}

	for _, tt := range tests {
		testname := fmt.Sprintf("HSV %v -> RGBA %v", tt.hsv, tt.rgba)
		t.Run(testname, func(t *testing.T) {
			res := tt.hsv.RGBA()
			if res != tt.rgba {
				t.Errorf("got %+v, want %+v", res, tt.rgba)
			}
		})
	}
}

func TestScalar(t *testing.T) {
	s := HSV{H: 180, S: 50.0 / 255, V: 1}.Scalar()

	if s.Val1 != 90 || s.Val2 != 50 || s.Val3 != 255 {
		t.Errorf("got %+v, want {90 50 255}", s)
	}
}

func TestNewHueWindow(t *testing.T) {
	r, err := NewHueWindow(220, 40, 50.0/255, 50.0/255)
	if err != nil {
		t.Fatal(err)
	}
	if r != DefaultHueWindow() {
		t.Errorf("got %+v, want default window %+v", r, DefaultHueWindow())
	}

	lower, upper := r.Scalars()
	if lower.Val1 != 90 || upper.Val1 != 130 {
		t.Errorf("OpenCV hue bounds: got %v-%v, want 90-130", lower.Val1, upper.Val1)
	}
}

func TestNewHueWindow_UpperEdgeAt360(t *testing.T) {
	r, err := NewHueWindow(340, 20, 0, 0)
	if err != nil {
		t.Fatalf("expected window 320-360 to be valid, got %v", err)
	}
	if r.Lower.H != 320 || r.Upper.H != 359 {
		t.Errorf("got hue %d-%d, want 320-359", r.Lower.H, r.Upper.H)
	}

	lower, upper := r.Scalars()
	if lower.Val1 != 160 || upper.Val1 != 179 {
		t.Errorf("OpenCV hue bounds: got %v-%v, want 160-179", lower.Val1, upper.Val1)
	}
}

func TestNewHueWindow_Invalid(t *testing.T) {
	var tests = []struct {
		name      string
		hue       uint32
		tolerance uint32
	}{
		{"wraps below zero", 10, 20},
		{"wraps above 359", 350, 20},
		{"tolerance too wide", 180, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHueWindow(tt.hue, tt.tolerance, 0, 0); !errors.Is(err, ErrInvalidHueWindow) {
				t.Errorf("expected ErrInvalidHueWindow, got %v", err)
			}
		})
	}
}
