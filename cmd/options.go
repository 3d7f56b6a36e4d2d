package cmd

import (
	"github.com/DaniruKun/circle-tracker/aim"
	"github.com/DaniruKun/circle-tracker/imgproc"
	"github.com/spf13/cobra"
)

type options struct {
	Port         string
	Baud         int
	Camera       int
	File         string
	Screen       bool
	Center       aim.Point
	AutoCenter   bool
	Hue          uint32
	HueTolerance uint32
	ShowGUI      bool
	DryRun       bool
	LogLevel     string
	JSONLogs     bool
}

func optionsFromFlags(cmd *cobra.Command) (options, error) {
	var (
		o   options
		err error
	)
	f := cmd.Flags()

	if o.Port, err = f.GetString("port"); err != nil {
		return o, err
	}
	if o.Baud, err = f.GetInt("baud"); err != nil {
		return o, err
	}
	if o.Camera, err = f.GetInt("camera"); err != nil {
		return o, err
	}
	if o.File, err = f.GetString("file"); err != nil {
		return o, err
	}
	if o.Screen, err = f.GetBool("screen"); err != nil {
		return o, err
	}
	if o.Center.X, err = f.GetInt("center-x"); err != nil {
		return o, err
	}
	if o.Center.Y, err = f.GetInt("center-y"); err != nil {
		return o, err
	}
	if o.AutoCenter, err = f.GetBool("auto-center"); err != nil {
		return o, err
	}
	if o.Hue, err = f.GetUint32("hue"); err != nil {
		return o, err
	}
	if o.HueTolerance, err = f.GetUint32("hue-tolerance"); err != nil {
		return o, err
	}
	if o.ShowGUI, err = f.GetBool("gui"); err != nil {
		return o, err
	}
	if o.DryRun, err = f.GetBool("dry-run"); err != nil {
		return o, err
	}
	if o.LogLevel, err = f.GetString("log-level"); err != nil {
		return o, err
	}
	if o.JSONLogs, err = f.GetBool("json"); err != nil {
		return o, err
	}
	return o, nil
}

// reference returns the aim point, derived from the frame size when AutoCenter is set
func (o options) reference(width, height int) aim.Point {
	if o.AutoCenter && width > 0 && height > 0 {
		return aim.Point{X: width / 2, Y: height / 2}
	}
	return o.Center
}

func (o options) detectorConfig() (imgproc.Config, error) {
	cfg := imgproc.DefaultConfig()
	cfg.ShowGUI = o.ShowGUI

	defaults := cfg.HueWindow
	window, err := imgproc.NewHueWindow(o.Hue, o.HueTolerance, defaults.Lower.S, defaults.Lower.V)
	if err != nil {
		return cfg, err
	}
	cfg.HueWindow = window
	return cfg, nil
}
