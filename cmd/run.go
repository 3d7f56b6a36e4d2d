package cmd

import (
	"context"
	"errors"
	"image"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/DaniruKun/circle-tracker/actuator"
	"github.com/DaniruKun/circle-tracker/aim"
	"github.com/DaniruKun/circle-tracker/control"
	"github.com/DaniruKun/circle-tracker/imgproc"
	"github.com/DaniruKun/circle-tracker/utils"
	"gocv.io/x/gocv"
)

// lineStream prints one command per line for --dry-run and never closes the
// underlying writer, so stdout survives shutdown
type lineStream struct{ w io.Writer }

func (s lineStream) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		return n, err
	}
	_, err = io.WriteString(s.w, "\n")
	return n, err
}

func (lineStream) Close() error { return nil }

func run(ctx context.Context, opts options) error {
	logger := utils.NewLogger(os.Stderr, opts.LogLevel, opts.JSONLogs)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	detectorCfg, err := opts.detectorConfig()
	if err != nil {
		return err
	}

	src, err := openSource(opts)
	if err != nil {
		logger.Error("could not open frame source", "error", err)
		return err
	}
	defer src.Close()

	detector, err := imgproc.NewCircleDetector(detectorCfg)
	if err != nil {
		return err
	}
	defer detector.Close()

	var link *actuator.Link
	if opts.DryRun {
		link = actuator.NewLink(lineStream{os.Stdout}, logger)
	} else {
		link, err = actuator.Open(actuator.Config{Port: opts.Port, Baud: opts.Baud, ReadTimeout: actuator.DefaultTimeout}, logger)
		if err != nil {
			logger.Error("could not open serial link", "error", err)
			return err
		}
	}

	ref := opts.reference(src.Size())
	ctrl := aim.NewController(aim.DefaultConfig(ref))

	loop := control.NewLoop[gocv.Mat](ctrl, src, detector, link, logger)
	if detectorCfg.ShowGUI {
		display := imgproc.NewDisplay(detectorCfg.WindowName, stop)
		defer display.Close()
		loop.Observer = display
	}

	err = loop.Run(ctx)
	if endOfFile(opts, err) {
		logger.Info("end of video file", "file", opts.File)
		return nil
	}
	if err != nil {
		logger.Error("tracking stopped", "error", err)
	}
	return err
}

func openSource(opts options) (imgproc.Source, error) {
	switch {
	case opts.File != "":
		return imgproc.OpenFile(opts.File)
	case opts.Screen:
		return imgproc.NewScreen(image.Rectangle{})
	default:
		return imgproc.OpenCamera(opts.Camera)
	}
}

// endOfFile reports whether err only means a --file video ran out of frames
func endOfFile(opts options, err error) bool {
	return opts.File != "" && errors.Is(err, imgproc.ErrSourceClosed)
}
