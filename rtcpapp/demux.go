package rtcpapp

import (
	"fmt"
	"sync"

	"github.com/pion/rtcp"
	"github.com/sirupsen/logrus"
)

// Handler receives one RTCP APP packet: the 5-bit subtype, the sender
// SSRC, and the application-dependent data that follows the name.
type Handler func(subType uint8, ssrc uint32, data []byte) error

// Demuxer routes RTCP APP packets to handlers by application name.
// Safe for concurrent use.
type Demuxer struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewDemuxer creates an empty demultiplexer.
func NewDemuxer() *Demuxer {
	return &Demuxer{
		handlers: make(map[string]Handler),
	}
}

// Register installs a handler for the given 4-character application
// name, replacing any previous handler for that name.
func (d *Demuxer) Register(name string, h Handler) {
	logrus.WithFields(logrus.Fields{
		"function": "Demuxer.Register",
		"app_name": name,
	}).Info("Registering RTCP APP handler")

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = h
}

// Process parses a raw (possibly compound) RTCP buffer and dispatches
// every APP packet whose name has a registered handler. It returns how
// many APP packets were dispatched.
//
// Non-APP packets and APP packets with unregistered names are skipped.
// A buffer that does not parse as RTCP is an error; a handler error
// stops dispatch and is returned wrapped.
func (d *Demuxer) Process(raw []byte) (int, error) {
	packets, err := rtcp.Unmarshal(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Demuxer.Process",
			"buf_len":  len(raw),
			"error":    err.Error(),
		}).Error("Failed to unmarshal RTCP buffer")
		return 0, fmt.Errorf("unmarshal rtcp: %w", err)
	}

	dispatched := 0
	for _, pkt := range packets {
		app, ok := pkt.(*rtcp.ApplicationDefined)
		if !ok {
			continue
		}

		d.mu.RLock()
		h := d.handlers[app.Name]
		d.mu.RUnlock()

		if h == nil {
			logrus.WithFields(logrus.Fields{
				"function": "Demuxer.Process",
				"app_name": app.Name,
			}).Debug("No handler for RTCP APP name, skipping")
			continue
		}

		if err := h(app.SubType, app.SSRC, app.Data); err != nil {
			return dispatched, fmt.Errorf("handler %q: %w", app.Name, err)
		}
		dispatched++
	}
	return dispatched, nil
}
