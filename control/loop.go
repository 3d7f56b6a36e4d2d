// Package control runs the per-frame aim loop: acquire, detect, select, command, render.
package control

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DaniruKun/circle-tracker/aim"
)

var (
	ErrFrameSource = errors.New("frame source failed")
	ErrDetector    = errors.New("detector failed")
	ErrTransport   = errors.New("transport failed")
)

// FrameSource yields the next frame, blocking until one is available.
type FrameSource[F any] interface {
	Acquire() (F, error)
}

// Detector finds circle candidates in a frame.
type Detector[F any] interface {
	Detect(frame F) ([]aim.Candidate, error)
}

// Observer receives every processed frame. It must not feed back into the loop
// other than by cancelling its context.
type Observer[F any] interface {
	Observe(frame F, a Annotation)
}

// Transport delivers commands to the actuator.
type Transport interface {
	Send(cmd aim.Command) error
	Close() error
}

// Annotation describes what the loop decided for one frame.
type Annotation struct {
	Reference  aim.Point
	Candidates []aim.Candidate
	Selection  aim.Selection
	Found      bool
}

// Stats counts loop activity.
type Stats struct {
	Frames   int
	Commands int
}

// Loop wires the collaborators around an aim.Controller.
type Loop[F any] struct {
	Source    FrameSource[F]
	Detector  Detector[F]
	Transport Transport
	Observer  Observer[F] // optional

	ctrl   *aim.Controller
	logger *slog.Logger
	sleep  func(time.Duration)
	stats  Stats
}

// NewLoop creates a loop for ctrl. Observer may be set on the returned value.
func NewLoop[F any](ctrl *aim.Controller, src FrameSource[F], det Detector[F], tr Transport, logger *slog.Logger) *Loop[F] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop[F]{
		Source:    src,
		Detector:  det,
		Transport: tr,
		ctrl:      ctrl,
		logger:    logger,
		sleep:     time.Sleep,
	}
}

// Stats returns the counters of the last run.
func (l *Loop[F]) Stats() Stats {
	return l.stats
}

// Run processes frames until ctx is cancelled or a collaborator fails.
// On cancellation the stop command is sent once and the transport closed.
func (l *Loop[F]) Run(ctx context.Context) error {
	l.stats = Stats{}
	interval := l.ctrl.Config().CommandInterval

	l.logger.Info("control loop started",
		"reference", l.ctrl.Config().Reference,
		"interval", interval,
	)

	for {
		select {
		case <-ctx.Done():
			err := l.shutdown()
			l.logger.Info("control loop stopped", "frames", l.stats.Frames, "commands", l.stats.Commands)
			return err
		default:
		}

		frame, err := l.Source.Acquire()
		if err != nil {
			return l.abort(fmt.Errorf("%w: %w", ErrFrameSource, err))
		}
		l.stats.Frames++

		candidates, err := l.Detector.Detect(frame)
		if err != nil {
			return l.abort(fmt.Errorf("%w: %w", ErrDetector, err))
		}

		ann := Annotation{
			Reference:  l.ctrl.Config().Reference,
			Candidates: candidates,
		}
		ann.Selection, ann.Found = l.ctrl.Select(candidates)

		if ann.Found {
			cmd := l.ctrl.Command(ann.Selection)
			l.logger.Debug("sending command", "command", cmd.String(), "distance", ann.Selection.Distance)

			if err := l.Transport.Send(cmd); err != nil {
				err = fmt.Errorf("%w: %w", ErrTransport, err)
				if cerr := l.Transport.Close(); cerr != nil {
					err = errors.Join(err, cerr)
				}
				l.logger.Error("transport failure, aborting", "error", err)
				return err
			}
			l.stats.Commands++
			l.sleep(interval)
		}

		if l.Observer != nil {
			l.Observer.Observe(frame, ann)
		}
	}
}

// shutdown neutralises the actuator and releases the transport.
func (l *Loop[F]) shutdown() error {
	var errs []error
	if err := l.Transport.Send(aim.StopCommand); err != nil {
		errs = append(errs, fmt.Errorf("%w: stop command: %w", ErrTransport, err))
	} else {
		l.stats.Commands++
	}
	if err := l.Transport.Close(); err != nil {
		errs = append(errs, fmt.Errorf("%w: close: %w", ErrTransport, err))
	}
	return errors.Join(errs...)
}

func (l *Loop[F]) abort(cause error) error {
	l.logger.Error("control loop aborted", "error", cause, "frames", l.stats.Frames)
	return errors.Join(cause, l.shutdown())
}
