// Package power abstracts the supply rails feeding a panel.
package power

import (
	"fmt"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
)

// Supply is a switchable power rail.
type Supply interface {
	String() string

	// Enable powers the rail.
	Enable() error

	// Disable cuts the rail.
	Disable() error
}

// GPIO is a rail switched through an enable line.
type GPIO struct {
	name      string
	pin       gpio.PinOut
	activeLow bool
	enabled   bool
}

// NewGPIO returns a rail switched by the given enable line. The line is
// driven to its inactive level immediately so the rail starts off.
func NewGPIO(name string, pin gpio.PinOut, activeLow bool) (*GPIO, error) {
	if pin == nil || pin == gpio.INVALID {
		return nil, fmt.Errorf("power: %s: enable pin is invalid", name)
	}
	s := &GPIO{name: name, pin: pin, activeLow: activeLow}
	if err := pin.Out(s.level(false)); err != nil {
		return nil, errors.Wrapf(err, "power: %s", name)
	}
	return s, nil
}

func (s *GPIO) String() string {
	return fmt.Sprintf("supply %s on %s", s.name, s.pin)
}

func (s *GPIO) level(on bool) gpio.Level {
	if s.activeLow {
		return gpio.Level(!on)
	}
	return gpio.Level(on)
}

// Enable powers the rail. Enabling an enabled rail is a no-op.
func (s *GPIO) Enable() error {
	if s.enabled {
		return nil
	}
	if err := s.pin.Out(s.level(true)); err != nil {
		return errors.Wrapf(err, "power: %s: enable", s.name)
	}
	s.enabled = true
	return nil
}

// Disable cuts the rail.
func (s *GPIO) Disable() error {
	if !s.enabled {
		return nil
	}
	if err := s.pin.Out(s.level(false)); err != nil {
		return errors.Wrapf(err, "power: %s: disable", s.name)
	}
	s.enabled = false
	return nil
}

// Enabled reports whether the rail is powered.
func (s *GPIO) Enabled() bool {
	return s.enabled
}

// Fixed is an always-on rail without a switchable enable line.
type Fixed string

func (s Fixed) String() string {
	return fmt.Sprintf("fixed supply %s", string(s))
}

// Enable is a no-op, the rail is hardwired.
func (s Fixed) Enable() error { return nil }

// Disable is a no-op, the rail is hardwired.
func (s Fixed) Disable() error { return nil }

var (
	_ Supply = (*GPIO)(nil)
	_ Supply = Fixed("")
)
