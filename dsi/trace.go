package dsi

import "github.com/sirupsen/logrus"

type traceTransport struct {
	t   Transport
	log logrus.FieldLogger
}

// Trace wraps a transport and logs every packet that crosses it.
func Trace(t Transport, log logrus.FieldLogger) Transport {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &traceTransport{t: t, log: log}
}

func (t *traceTransport) String() string {
	return t.t.String()
}

func (t *traceTransport) Transmit(p Packet) error {
	err := t.t.Transmit(p)
	if err != nil {
		t.log.WithError(err).Errorf("%s: %s", t.t, p)
		return err
	}
	t.log.Debugf("%s: %s", t.t, p)
	return nil
}
