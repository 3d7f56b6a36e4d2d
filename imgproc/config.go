package imgproc

type Config struct {
	HueWindow HSVRange // Color window a target must fall in

	// Hough circle transform parameters
	DP        float64 // Inverse accumulator resolution
	MinDist   float64 // Minimum distance between circle centers
	Param1    float64 // Canny upper threshold
	Param2    float64 // Accumulator threshold
	MinRadius int
	MaxRadius int

	Channel int // BGR channel of the masked frame fed to the transform

	ShowGUI    bool   // Show GUI with live visuals or not
	WindowName string // Title of the preview window
}

// Blue targets, 180-260 deg hue with saturation and value of at least 50/255
func DefaultHueWindow() HSVRange {
	return HSVRange{
		Lower: HSV{H: 180, S: 50.0 / 255, V: 50.0 / 255},
		Upper: HSV{H: 260, S: 1, V: 1},
	}
}

func DefaultConfig() Config {
	return Config{
		HueWindow:  DefaultHueWindow(),
		DP:         1.2,
		MinDist:    100,
		Param1:     100,
		Param2:     30,
		MinRadius:  30,
		MaxRadius:  100,
		Channel:    2,
		ShowGUI:    true,
		WindowName: "circle-tracker",
	}
}
