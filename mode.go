package panel

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// ModeType qualifies a timing descriptor.
type ModeType uint8

const (
	// ModeTypeDriver marks a mode supplied by the panel driver rather
	// than probed from the sink.
	ModeTypeDriver ModeType = 1 << iota

	// ModeTypePreferred marks the mode the driver wants the framework
	// to pick.
	ModeTypePreferred
)

// Mode is a display timing descriptor.
//
// For command-mode panels the sync timings are nominal: the host never
// drives a continuous pixel stream, but the framework still wants a fully
// populated descriptor to size transfers and compute the refresh rate.
type Mode struct {
	// PixelClock is the nominal dot clock.
	PixelClock physic.Frequency

	HDisplay   int // active columns
	HSyncStart int
	HSyncEnd   int
	HTotal     int

	VDisplay   int // active rows
	VSyncStart int
	VSyncEnd   int
	VTotal     int

	// Physical size of the active area in millimeters.
	WidthMM  int
	HeightMM int

	Type ModeType
}

// Name returns the conventional "<width>x<height>" mode name.
func (m *Mode) Name() string {
	return fmt.Sprintf("%dx%d", m.HDisplay, m.VDisplay)
}

// VRefresh returns the vertical refresh rate in Hz, rounded to the
// nearest integer.
func (m *Mode) VRefresh() int {
	total := int64(m.HTotal) * int64(m.VTotal)
	if total == 0 {
		return 0
	}
	hz := int64(m.PixelClock / physic.Hertz)
	return int((hz + total/2) / total)
}

func (m *Mode) valid() bool {
	if m.HDisplay <= 0 || m.VDisplay <= 0 {
		return false
	}
	if m.HDisplay > m.HSyncStart || m.HSyncStart > m.HSyncEnd || m.HSyncEnd > m.HTotal {
		return false
	}
	if m.VDisplay > m.VSyncStart || m.VSyncStart > m.VSyncEnd || m.VSyncEnd > m.VTotal {
		return false
	}
	return m.PixelClock > 0
}

// DisplayInfo describes the physical sink behind a connector.
type DisplayInfo struct {
	Name     string
	WidthMM  int
	HeightMM int
}

// Connector collects the modes a panel reports to the framework.
type Connector struct {
	Info  DisplayInfo
	modes []Mode
}

// AddMode appends a copy of the descriptor to the probed mode list.
func (c *Connector) AddMode(m Mode) error {
	if !m.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidMode, m.Name())
	}
	c.modes = append(c.modes, m)
	return nil
}

// Modes returns the probed mode list.
func (c *Connector) Modes() []Mode {
	return c.modes
}

// Preferred returns the first preferred mode, or nil if none was added.
func (c *Connector) Preferred() *Mode {
	for i := range c.modes {
		if c.modes[i].Type&ModeTypePreferred != 0 {
			return &c.modes[i]
		}
	}
	return nil
}
