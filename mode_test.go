package panel

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestModeVRefresh(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want int
	}{
		{"s6e3ha8", s6e3ha8Mode, 60},
		{"1080p60", Mode{
			PixelClock: 148500 * physic.KiloHertz,
			HDisplay:   1920, HSyncStart: 2008, HSyncEnd: 2052, HTotal: 2200,
			VDisplay: 1080, VSyncStart: 1084, VSyncEnd: 1089, VTotal: 1125,
		}, 60},
		{"zero totals", Mode{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.VRefresh(); got != tt.want {
				t.Errorf("expected %d Hz, got %d", tt.want, got)
			}
		})
	}
}

func TestModeName(t *testing.T) {
	if name := s6e3ha8Mode.Name(); name != "1440x2960" {
		t.Errorf("expected 1440x2960, got %q", name)
	}
}

func TestConnectorAddMode(t *testing.T) {
	var c Connector

	if err := c.AddMode(Mode{}); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}

	bad := s6e3ha8Mode
	bad.HSyncStart = bad.HDisplay - 1 // sync inside the active area
	if err := c.AddMode(bad); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
	if len(c.Modes()) != 0 {
		t.Fatalf("expected no modes, got %d", len(c.Modes()))
	}

	if err := c.AddMode(s6e3ha8Mode); err != nil {
		t.Fatalf("expected mode to be added, got %v", err)
	}
	if len(c.Modes()) != 1 {
		t.Fatalf("expected 1 mode, got %d", len(c.Modes()))
	}
}

func TestConnectorPreferred(t *testing.T) {
	var c Connector
	if c.Preferred() != nil {
		t.Error("expected no preferred mode on empty connector")
	}

	plain := s6e3ha8Mode
	if err := c.AddMode(plain); err != nil {
		t.Fatal(err)
	}
	preferred := s6e3ha8Mode
	preferred.Type = ModeTypeDriver | ModeTypePreferred
	if err := c.AddMode(preferred); err != nil {
		t.Fatal(err)
	}

	got := c.Preferred()
	if got == nil || got.Type&ModeTypePreferred == 0 {
		t.Fatalf("expected the preferred mode, got %+v", got)
	}
}
