// Package actuator talks to the microcontroller that moves the pointing device.
package actuator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/DaniruKun/circle-tracker/aim"
	"github.com/DaniruKun/circle-tracker/utils"
	"github.com/tarm/serial"
)

const (
	DefaultPort     = "COM7"
	DefaultBaud     = 115200
	DefaultTimeout  = time.Second
	PortEnvVariable = "AIM_SERIAL_PORT"
)

var (
	ErrShortWrite    = errors.New("short write")
	ErrInvalidConfig = errors.New("invalid serial config")
)

// Config holds the serial connection parameters, fixed at startup.
type Config struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
}

// DefaultConfig returns the microcontroller defaults, taking the port from
// AIM_SERIAL_PORT when set.
func DefaultConfig() Config {
	return Config{
		Port:        utils.EnvOr(PortEnvVariable, DefaultPort),
		Baud:        DefaultBaud,
		ReadTimeout: DefaultTimeout,
	}
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("%w: empty port", ErrInvalidConfig)
	}
	if c.Baud <= 0 {
		return fmt.Errorf("%w: baud rate %d", ErrInvalidConfig, c.Baud)
	}
	return nil
}

// Link writes ASCII commands to a byte stream. No response is read.
type Link struct {
	w      io.WriteCloser
	name   string
	logger *slog.Logger
	closed bool
}

// Open connects to the serial port described by cfg.
func Open(cfg Config, logger *slog.Logger) (*Link, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Port,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Port, err)
	}

	link := NewLink(port, logger)
	link.name = cfg.Port
	link.logger.Info("serial link open", "port", cfg.Port, "baud", cfg.Baud)
	return link, nil
}

// NewLink wraps any stream as a command link.
func NewLink(w io.WriteCloser, logger *slog.Logger) *Link {
	if logger == nil {
		logger = slog.Default()
	}
	return &Link{w: w, name: "stream", logger: logger}
}

// Send writes the encoded command. It does not wait for an acknowledgement.
func (l *Link) Send(cmd aim.Command) error {
	if l.closed {
		return fmt.Errorf("send %s: %w", cmd, io.ErrClosedPipe)
	}

	payload := []byte(cmd.String())
	n, err := l.w.Write(payload)
	if err != nil {
		return fmt.Errorf("write %s to %s: %w", cmd, l.name, err)
	}
	if n != len(payload) {
		return fmt.Errorf("write %s to %s: %w (%d of %d bytes)", cmd, l.name, ErrShortWrite, n, len(payload))
	}
	return nil
}

// Close releases the underlying stream. Calling it twice is a no-op.
func (l *Link) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.logger.Info("serial link closed", "port", l.name)
	return l.w.Close()
}
