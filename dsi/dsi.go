// Package dsi models a command-mode MIPI-DSI link.
//
// The wire itself belongs to the host controller; this package only frames
// Display Command Set (DCS) writes and hands them to a Transport. Video
// mode is out of scope.
package dsi

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors
var (
	ErrNoTransport = errors.New("dsi: no transport")
	ErrAttached    = errors.New("dsi: device already attached")
	ErrDetached    = errors.New("dsi: device not attached")
)

// PixelFormat is the color format of framebuffer transfers on the link.
type PixelFormat uint8

// Supported pixel formats.
const (
	FormatRGB888 PixelFormat = iota // packed 24-bit
	FormatRGB666
	FormatRGB666Packed
	FormatRGB565
)

func (f PixelFormat) String() string {
	switch f {
	case FormatRGB888:
		return "RGB888"
	case FormatRGB666:
		return "RGB666"
	case FormatRGB666Packed:
		return "RGB666-packed"
	case FormatRGB565:
		return "RGB565"
	default:
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
}

// BitsPerPixel returns the transfer width of the format on the wire.
func (f PixelFormat) BitsPerPixel() int {
	switch f {
	case FormatRGB888, FormatRGB666:
		return 24
	case FormatRGB666Packed:
		return 18
	case FormatRGB565:
		return 16
	default:
		return 0
	}
}

// ModeFlags describe how the host should operate the link.
type ModeFlags uint32

const (
	// ModeVideo requests a continuous video stream. Unused by
	// command-mode panels.
	ModeVideo ModeFlags = 1 << iota

	// ModeVideoSyncPulse requests sync pulses instead of sync events in
	// video mode.
	ModeVideoSyncPulse

	// ClockNonContinuous lets the host gate the clock lane between
	// transmissions.
	ClockNonContinuous

	// EOTPacket appends an end-of-transmission packet to each transfer.
	EOTPacket

	// LPMCommands transmits commands in low-power mode.
	LPMCommands
)

// Packet is a single DCS write: the command byte and its parameters.
type Packet struct {
	Cmd  byte
	Data []byte
}

func (p Packet) String() string {
	return fmt.Sprintf("DCS %#02x % x", p.Cmd, p.Data)
}

// Transport carries packets to the panel. It is implemented by the host
// controller and by test doubles.
type Transport interface {
	String() string

	// Transmit sends one packet downstream.
	Transmit(Packet) error
}

// Config is the link configuration a panel requests at attach time.
type Config struct {
	// Lanes is the number of data lanes, 1 to 4.
	Lanes int

	// Format of framebuffer transfers.
	Format PixelFormat

	// Flags select the link operating mode.
	Flags ModeFlags
}

// Device is a peripheral on a command-mode link.
//
// The host framework owns the device and enforces attach/detach ordering
// around probe and remove; panel drivers only borrow it to send commands.
type Device struct {
	name     string
	t        Transport
	cfg      Config
	attached bool
}

// New returns a device on the given transport.
func New(name string, t Transport) *Device {
	return &Device{name: name, t: t}
}

func (d *Device) String() string {
	return fmt.Sprintf("dsi: %s", d.name)
}

// Config returns the currently requested link configuration.
func (d *Device) Config() Config {
	return d.cfg
}

// Configure records the link configuration to request at attach time.
func (d *Device) Configure(cfg Config) error {
	if cfg.Lanes < 1 || cfg.Lanes > 4 {
		return fmt.Errorf("dsi: invalid lane count %d", cfg.Lanes)
	}
	if cfg.Format.BitsPerPixel() == 0 {
		return fmt.Errorf("dsi: invalid pixel format %s", cfg.Format)
	}
	d.cfg = cfg
	return nil
}

// Attach binds the device to its transport. Commands are rejected until
// the device is attached.
func (d *Device) Attach() error {
	if d.t == nil {
		return ErrNoTransport
	}
	if d.attached {
		return ErrAttached
	}
	d.attached = true
	return nil
}

// Detach releases the transport.
func (d *Device) Detach() error {
	if !d.attached {
		return ErrDetached
	}
	d.attached = false
	return nil
}

// DCS sends a command byte with optional parameters.
func (d *Device) DCS(cmd byte, data ...byte) error {
	if !d.attached {
		return ErrDetached
	}
	if err := d.t.Transmit(Packet{Cmd: cmd, Data: data}); err != nil {
		return errors.Wrapf(err, "dsi: command %#02x", cmd)
	}
	return nil
}

// Nop sends a no-operation command.
func (d *Device) Nop() error {
	return d.DCS(DCSNop)
}

// SoftReset asks the panel controller to reset itself.
func (d *Device) SoftReset() error {
	return d.DCS(DCSSoftReset)
}

// EnterSleep puts the panel controller into sleep mode.
func (d *Device) EnterSleep() error {
	return d.DCS(DCSEnterSleepMode)
}

// ExitSleep wakes the panel controller from sleep mode.
func (d *Device) ExitSleep() error {
	return d.DCS(DCSExitSleepMode)
}

// SetDisplayOn turns the display output on.
func (d *Device) SetDisplayOn() error {
	return d.DCS(DCSSetDisplayOn)
}

// SetDisplayOff turns the display output off.
func (d *Device) SetDisplayOff() error {
	return d.DCS(DCSSetDisplayOff)
}

// SetTearOn enables the tearing-effect signal in the given mode.
func (d *Device) SetTearOn(mode TearMode) error {
	return d.DCS(DCSSetTearOn, byte(mode))
}

// SetTearOff disables the tearing-effect signal.
func (d *Device) SetTearOff() error {
	return d.DCS(DCSSetTearOff)
}
