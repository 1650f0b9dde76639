// Command panel-seq exercises a panel power sequence.
//
// It reads a YAML node description, resolves the panel's supplies and
// reset line through the host GPIO registry, probes the matching driver
// and runs one prepare → enable → disable → unprepare cycle. Without a
// real DSI host controller the commands go to a sink transport, which
// makes this a board bring-up aid for the power and reset wiring.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/panel"
	"github.com/BeatGlow/panel/dsi"
)

// Node describes the panel device node.
type Node struct {
	Compatible string            `yaml:"compatible"`
	Link       string            `yaml:"link"`
	Supplies   map[string]string `yaml:"supplies"`
	Lines      map[string]string `yaml:"lines"`
}

// nullTransport accepts every packet; the wire belongs to the DSI host
// controller, which is not driven from userspace.
type nullTransport struct{}

func (nullTransport) String() string { return "null" }

func (nullTransport) Transmit(dsi.Packet) error { return nil }

func main() {
	configFlag := flag.String("config", "node.yaml", "Panel node description")
	holdFlag := flag.Duration("hold", 2*time.Second, "How long to keep the display enabled")
	retriesFlag := flag.Int("retries", 5, "Probe retries while resources are deferred")
	verboseFlag := flag.Bool("v", false, "Log every DCS command")
	flag.Parse()

	log := logrus.StandardLogger()
	if *verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	}

	node, err := loadNode(*configFlag)
	if err != nil {
		fatal(err)
	}

	if _, err = host.Init(); err != nil {
		fatal(err)
	}

	res := &panel.GPIOResources{
		Supplies: node.Supplies,
		Lines:    node.Lines,
	}
	linkName := node.Link
	if linkName == "" {
		linkName = "dsi0"
	}
	link := dsi.New(linkName, dsi.Trace(nullTransport{}, log))

	var p panel.Panel
	for try := 0; ; try++ {
		p, err = panel.Probe(node.Compatible, link, res, &panel.Config{Logger: log})
		if err == nil {
			break
		}
		if !errors.Is(err, panel.ErrDeferred) || try >= *retriesFlag {
			fatal(err)
		}
		log.WithError(err).Info("probe deferred, retrying")
		time.Sleep(100 * time.Millisecond)
	}
	// Run the cycle through a helper so the panel is released even when
	// a step fails.
	err = cycle(p, link, log, *holdFlag)
	if relErr := panel.Release(node.Compatible, link); relErr != nil {
		log.WithError(relErr).Error("release failed")
		if err == nil {
			err = relErr
		}
	}
	if err != nil {
		fatal(err)
	}
}

func cycle(p panel.Panel, link *dsi.Device, log *logrus.Logger, hold time.Duration) error {
	var c panel.Connector
	n, err := p.Modes(&c)
	if err != nil {
		return err
	}
	for _, mode := range c.Modes() {
		log.Infof("mode %s @ %d Hz (%dx%d mm)", mode.Name(), mode.VRefresh(), mode.WidthMM, mode.HeightMM)
	}
	log.Infof("%s: %d mode(s), link %d lanes %s", c.Info.Name, n, link.Config().Lanes, link.Config().Format)

	log.Info("prepare")
	if err = p.Prepare(); err != nil {
		return err
	}
	log.Info("enable")
	if err = p.Enable(); err != nil {
		return err
	}

	time.Sleep(hold)

	log.Info("disable")
	if err = p.Disable(); err != nil {
		return err
	}
	log.Info("unprepare")
	return p.Unprepare()
}

func loadNode(name string) (*Node, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var node Node
	if err = yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if node.Compatible == "" {
		return nil, fmt.Errorf("%s: missing compatible string", name)
	}
	return &node, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
