package panel

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/BeatGlow/panel/power"
)

// Resources hands out the named supplies and lines a panel driver needs.
//
// Acquisition is fallible in two distinguished ways: ErrDeferred when the
// backing resource exists but is not available yet (the caller should
// retry the whole probe later), and ErrNotFound when the board simply does
// not describe it.
type Resources interface {
	// Supply returns the named power rail.
	Supply(name string) (power.Supply, error)

	// ResetLine returns the named reset line, asserted.
	ResetLine(name string) (gpio.PinOut, error)
}

// GPIOResources resolves named panel resources against the host GPIO
// registry.
type GPIOResources struct {
	// Supplies maps a supply name to the GPIO driving its enable line.
	// A supply mapped to the empty string is treated as hardwired.
	Supplies map[string]string

	// Lines maps a logic line name to its GPIO.
	Lines map[string]string
}

// Supply implements Resources.
func (r *GPIOResources) Supply(name string) (power.Supply, error) {
	pinName, ok := r.Supplies[name]
	if !ok {
		return nil, fmt.Errorf("%w: supply %q", ErrNotFound, name)
	}
	if pinName == "" {
		return power.Fixed(name), nil
	}
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		// The GPIO driver backing this pin may not be up yet.
		return nil, fmt.Errorf("%w: supply %q pin %q", ErrDeferred, name, pinName)
	}
	return power.NewGPIO(name, pin, false)
}

// ResetLine implements Resources. The returned line is asserted, which is
// the default state of a panel reset at power-on.
func (r *GPIOResources) ResetLine(name string) (gpio.PinOut, error) {
	pinName, ok := r.Lines[name]
	if !ok {
		return nil, fmt.Errorf("%w: line %q", ErrNotFound, name)
	}
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("%w: line %q pin %q", ErrDeferred, name, pinName)
	}
	if err := pin.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("panel: assert %q: %w", name, err)
	}
	return pin, nil
}

var _ Resources = (*GPIOResources)(nil)
