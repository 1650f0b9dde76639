package panel

import (
	"fmt"
	"sync"

	"github.com/BeatGlow/panel/dsi"
)

// Driver binds a hardware compatible identifier to a panel constructor.
type Driver struct {
	// Compatible is the device-matching identifier, "vendor,model".
	Compatible string

	// New acquires the panel's resources and returns the panel with the
	// link configured but not yet attached.
	New func(link *dsi.Device, res Resources, config *Config) (Panel, error)
}

var (
	mu      sync.Mutex
	drivers = map[string]*Driver{}
	panels  = map[string]Panel{}
)

// RegisterDriver adds a driver to the match table. It panics when the
// compatible string is already claimed, so drivers can register in init().
func RegisterDriver(d *Driver) {
	mu.Lock()
	defer mu.Unlock()
	if d.Compatible == "" || d.New == nil {
		panic("panel: registering incomplete driver")
	}
	if _, ok := drivers[d.Compatible]; ok {
		panic(fmt.Sprintf("panel: driver %q registered twice", d.Compatible))
	}
	drivers[d.Compatible] = d
}

// Add puts a panel in the registry under the given name.
func Add(name string, p Panel) error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := panels[name]; ok {
		return fmt.Errorf("panel: %q already registered", name)
	}
	panels[name] = p
	return nil
}

// Remove takes a panel out of the registry.
func Remove(name string) error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := panels[name]; !ok {
		return fmt.Errorf("%w: panel %q", ErrNotFound, name)
	}
	delete(panels, name)
	return nil
}

// ByName returns the registered panel, or nil when there is none.
func ByName(name string) Panel {
	mu.Lock()
	defer mu.Unlock()
	return panels[name]
}

// Probe matches the compatible identifier against the driver table, builds
// the panel, registers it under the compatible string and attaches the
// link. A deferred resource aborts the probe with ErrDeferred so the
// caller can retry once the dependency is up.
func Probe(compatible string, link *dsi.Device, res Resources, config *Config) (Panel, error) {
	mu.Lock()
	d, ok := drivers[compatible]
	mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDriver, compatible)
	}

	p, err := d.New(link, res, config)
	if err != nil {
		return nil, err
	}
	if err := Add(compatible, p); err != nil {
		return nil, err
	}
	if err := link.Attach(); err != nil {
		_ = Remove(compatible)
		return nil, err
	}
	return p, nil
}

// Release detaches the link and removes the panel, the reverse of Probe.
func Release(compatible string, link *dsi.Device) error {
	if err := link.Detach(); err != nil {
		return err
	}
	return Remove(compatible)
}
