// Package dsitest provides a DSI transport double for testing panel
// drivers without hardware.
package dsitest

import (
	"github.com/BeatGlow/panel/dsi"
)

// Transport records every transmitted packet and can inject failures.
//
// The zero value accepts and records everything.
type Transport struct {
	// Name is returned by String.
	Name string

	// Ops holds the transmitted packets in order.
	Ops []dsi.Packet

	// Fail maps a DCS opcode to the error its transmission returns.
	// The failing packet is not recorded.
	Fail map[byte]error

	// Err, when set, fails every transmission.
	Err error
}

func (t *Transport) String() string {
	if t.Name == "" {
		return "dsitest"
	}
	return t.Name
}

// Transmit implements dsi.Transport.
func (t *Transport) Transmit(p dsi.Packet) error {
	if t.Err != nil {
		return t.Err
	}
	if err, ok := t.Fail[p.Cmd]; ok {
		return err
	}
	// Packets share no backing storage with the caller.
	p.Data = append([]byte(nil), p.Data...)
	t.Ops = append(t.Ops, p)
	return nil
}

// Commands returns just the opcodes of the recorded packets.
func (t *Transport) Commands() []byte {
	cmds := make([]byte, len(t.Ops))
	for i, op := range t.Ops {
		cmds[i] = op.Cmd
	}
	return cmds
}

var _ dsi.Transport = (*Transport)(nil)
