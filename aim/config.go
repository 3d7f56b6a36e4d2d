package aim

import "time"

// DefaultCommandInterval bounds the rate at which commands reach the actuator.
const DefaultCommandInterval = 30 * time.Millisecond

// DefaultReference is the centre of a 1280x720 frame.
var DefaultReference = Point{X: 640, Y: 360}

// Config is fixed at startup and never changed afterwards.
type Config struct {
	Reference       Point
	Gains           Gains
	CommandInterval time.Duration
}

// DefaultConfig returns a Config aiming at ref with the standard gains and rate limit.
func DefaultConfig(ref Point) Config {
	return Config{
		Reference:       ref,
		Gains:           DefaultGains(),
		CommandInterval: DefaultCommandInterval,
	}
}

// Controller turns a frame's candidates into an actuator command.
type Controller struct {
	cfg Config
}

func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

// Config returns a copy of the controller configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Select picks the candidate closest to the reference point.
func (c *Controller) Select(candidates []Candidate) (Selection, bool) {
	return SelectClosest(c.cfg.Reference, candidates)
}

// Command computes the correction that moves the aim onto sel.
func (c *Controller) Command(sel Selection) Command {
	dx, dy := Offset(c.cfg.Reference, sel.Candidate.Center)
	return c.cfg.Gains.Command(dx, dy)
}
