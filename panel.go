// Package panel contains drivers for command-mode display panels.
//
// A panel driver owns the power rails and reset line of one physical panel
// and brings it up or down through a fixed sequence of rail toggles, reset
// pulses, settle delays and Display Command Set (DCS) writes over a
// command-only link. Pixel transport is not handled here; that belongs to
// the host controller that owns the link.
package panel

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
)

var debug bool

func init() {
	debug = os.Getenv("PANEL_DEBUG") != ""
}

// Errors
var (
	// ErrDeferred means a required resource is not available yet and the
	// caller should retry the operation later.
	ErrDeferred = errors.New("panel: resource not ready")

	// ErrNotFound means a named resource is not described for this panel.
	ErrNotFound = errors.New("panel: resource not found")

	// ErrNoDriver means no registered driver matches the compatible string.
	ErrNoDriver = errors.New("panel: no matching driver")

	// ErrInvalidMode means a timing descriptor failed validation.
	ErrInvalidMode = errors.New("panel: invalid display mode")
)

// Panel is a display panel attached to a command-mode link.
//
// The host framework owns the call order: Prepare → Enable → Disable →
// Unprepare, at most one call active at a time per panel. Drivers trust
// that order and do not detect illegal transitions.
type Panel interface {
	// Prepare powers the panel up and takes it out of sleep. After a
	// successful Prepare the panel accepts commands but shows no image.
	Prepare() error

	// Enable turns the display output on.
	Enable() error

	// Disable turns the display output off.
	Disable() error

	// Unprepare puts the panel to sleep and powers it down.
	Unprepare() error

	// Modes adds the supported timing descriptors to the connector and
	// returns how many were added.
	Modes(c *Connector) (int, error)
}

// Config is the panel probe configuration.
type Config struct {
	// Logger receives driver diagnostics. Nil uses the logrus standard
	// logger.
	Logger logrus.FieldLogger
}

func (c *Config) logger() logrus.FieldLogger {
	if c == nil || c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}
