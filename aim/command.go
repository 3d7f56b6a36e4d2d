package aim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedCommand = errors.New("malformed command")

// StopCommand puts the actuator back to neutral. It is sent once on shutdown.
var StopCommand = Command{}

// Command is a two-axis correction for the actuator.
type Command struct {
	Horizontal int
	Vertical   int
}

// String encodes the command the way the microcontroller expects it, e.g. "50x-200z".
func (c Command) String() string {
	return fmt.Sprintf("%dx%dz", c.Horizontal, c.Vertical)
}

// ParseCommand decodes a "<h>x<v>z" directive. Only the exact output of String is accepted.
func ParseCommand(s string) (Command, error) {
	body, ok := strings.CutSuffix(s, "z")
	if !ok {
		return Command{}, fmt.Errorf("%w: %q has no z terminator", ErrMalformedCommand, s)
	}

	h, v, ok := strings.Cut(body, "x")
	if !ok {
		return Command{}, fmt.Errorf("%w: %q has no x separator", ErrMalformedCommand, s)
	}

	horizontal, err := parseField(h)
	if err != nil {
		return Command{}, fmt.Errorf("%w: horizontal %q", ErrMalformedCommand, h)
	}
	vertical, err := parseField(v)
	if err != nil {
		return Command{}, fmt.Errorf("%w: vertical %q", ErrMalformedCommand, v)
	}

	return Command{Horizontal: horizontal, Vertical: vertical}, nil
}

// parseField accepts only the canonical base-10 form String produces: no '+', no "-0", no leading zeros.
func parseField(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if strconv.Itoa(n) != s {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

// Gains are the proportional multipliers applied to the pixel offset.
type Gains struct {
	Kpx int
	Kpy int
}

// DefaultGains returns the fixed gains the actuator firmware is tuned for.
func DefaultGains() Gains {
	return Gains{Kpx: 5, Kpy: 10}
}

// Command converts an offset into a correction. dy is positive upwards, the
// vertical axis is negated for the actuator.
func (g Gains) Command(dx, dy int) Command {
	return Command{
		Horizontal: g.Kpx * dx,
		Vertical:   -g.Kpy * dy,
	}
}

// Offset returns the offset of p from ref with the vertical axis flipped so up is positive.
func Offset(ref, p Point) (dx, dy int) {
	return p.X - ref.X, ref.Y - p.Y
}
