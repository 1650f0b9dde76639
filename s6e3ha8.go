package panel

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/panel/dsi"
	"github.com/BeatGlow/panel/power"
)

// S6E3HA8Compatible matches the Samsung S6E3HA8, a 1440x2960 AMOLED panel
// with a command-only DSI interface.
const S6E3HA8Compatible = "samsung,s6e3ha8"

const (
	// Minimum reset pulse width.
	s6e3ha8ResetPulse = 10 * time.Microsecond

	// Settle delay after reset de-assert, before the first command. The
	// panel's internal power-on reset needs this long; it is a hardware
	// requirement, not tunable.
	s6e3ha8ResetSettle = 120 * time.Millisecond
)

// The timings are not very helpful as the display is used in command
// mode, but the framework wants a full descriptor.
var s6e3ha8Mode = Mode{
	PixelClock: 342651 * physic.KiloHertz,
	HDisplay:   1440,
	HSyncStart: 1440 + 116,
	HSyncEnd:   1440 + 116 + 44,
	HTotal:     1440 + 116 + 44 + 116,
	VDisplay:   2960,
	VSyncStart: 2960 + 124,
	VSyncEnd:   2960 + 124 + 120,
	VTotal:     2960 + 124 + 120 + 124,
	WidthMM:    70,
	HeightMM:   144,
}

// sleep seam for the timing tests.
var sleep = time.Sleep

type s6e3ha8 struct {
	link *dsi.Device
	log  logrus.FieldLogger

	// vddi before vci on the way up, reverse on the way down.
	supplies [2]power.Supply
	reset    gpio.PinOut
}

func init() {
	RegisterDriver(&Driver{
		Compatible: S6E3HA8Compatible,
		New:        newS6E3HA8,
	})
}

func newS6E3HA8(link *dsi.Device, res Resources, config *Config) (Panel, error) {
	s := &s6e3ha8{
		link: link,
		log:  config.logger().WithField("panel", S6E3HA8Compatible),
	}

	var err error
	if s.supplies[0], err = res.Supply("vddi"); err != nil {
		return nil, err
	}
	if s.supplies[1], err = res.Supply("vci"); err != nil {
		return nil, err
	}

	// The reset line is optional; acquiring it leaves it asserted.
	s.reset, err = res.ResetLine("reset")
	if err != nil && !errors.Is(err, ErrNotFound) {
		if !errors.Is(err, ErrDeferred) {
			s.log.WithError(err).Error("failed to request reset line")
		}
		return nil, err
	}

	// Command mode only: no video stream, no continuous clock.
	if err = link.Configure(dsi.Config{
		Lanes:  4,
		Format: dsi.FormatRGB888,
		Flags:  dsi.ClockNonContinuous | dsi.EOTPacket | dsi.LPMCommands,
	}); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *s6e3ha8) debugf(format string, args ...interface{}) {
	if debug {
		s.log.Debugf(format, args...)
	}
}

func (s *s6e3ha8) setReset(level gpio.Level) error {
	if s.reset == nil {
		return nil
	}
	return s.reset.Out(level)
}

// Prepare powers the rails in order, pulses reset and wakes the panel.
// There is no rollback: on failure the rails enabled so far stay up and
// the caller tears down through the remove path.
func (s *s6e3ha8) Prepare() error {
	s.debugf("prepare")
	for _, supply := range s.supplies {
		if err := supply.Enable(); err != nil {
			s.log.WithError(err).Errorf("failed to enable %s", supply)
			return err
		}
	}

	// Assert reset, then release the panel and let its power-on reset
	// finish before the first command.
	if err := s.setReset(gpio.High); err != nil {
		s.log.WithError(err).Error("failed to assert reset")
		return errors.Wrap(err, "panel: assert reset")
	}
	sleep(s6e3ha8ResetPulse)
	if err := s.setReset(gpio.Low); err != nil {
		s.log.WithError(err).Error("failed to release reset")
		return errors.Wrap(err, "panel: release reset")
	}
	sleep(s6e3ha8ResetSettle)

	// Tearing-effect signal at VBLANK, before waking the controller.
	if err := s.link.SetTearOn(dsi.TearModeVBlank); err != nil {
		s.log.WithError(err).Error("failed to enable vblank TE")
		return err
	}
	if err := s.link.ExitSleep(); err != nil {
		s.log.WithError(err).Error("failed to exit sleep mode")
		return err
	}
	return nil
}

func (s *s6e3ha8) Enable() error {
	if err := s.link.SetDisplayOn(); err != nil {
		s.log.WithError(err).Error("failed to turn display on")
		return err
	}
	return nil
}

func (s *s6e3ha8) Disable() error {
	if err := s.link.SetDisplayOff(); err != nil {
		s.log.WithError(err).Error("failed to turn display off")
		return err
	}
	return nil
}

// Unprepare puts the panel to sleep and cuts power. A sleep-enter failure
// aborts with everything still powered; past that point teardown is
// best-effort and runs to completion, reporting the first failure.
func (s *s6e3ha8) Unprepare() error {
	s.debugf("unprepare")
	if err := s.link.EnterSleep(); err != nil {
		s.log.WithError(err).Error("failed to enter sleep mode")
		return err
	}

	var firstErr error
	if err := s.setReset(gpio.High); err != nil {
		s.log.WithError(err).Error("failed to assert reset")
		firstErr = err
	}
	for i := len(s.supplies) - 1; i >= 0; i-- {
		if err := s.supplies[i].Disable(); err != nil {
			s.log.WithError(err).Errorf("failed to disable %s", s.supplies[i])
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *s6e3ha8) Modes(c *Connector) (int, error) {
	mode := s6e3ha8Mode
	mode.Type = ModeTypeDriver | ModeTypePreferred

	if err := c.AddMode(mode); err != nil {
		s.log.WithError(err).Error("bad mode or failed to add mode")
		return 0, err
	}

	c.Info.Name = "Samsung S6E3HA8"
	c.Info.WidthMM = mode.WidthMM
	c.Info.HeightMM = mode.HeightMM

	return 1, nil
}

var _ Panel = (*s6e3ha8)(nil)
