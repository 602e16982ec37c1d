package mcptt

import (
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/mcptt/floor"
	"github.com/opd-ai/mcptt/rtcpapp"
)

// AppName is the RTCP APP application name MCPTT floor control is
// registered under.
const AppName = "MCPT"

// ResultHandler receives each decoded floor-control message.
type ResultHandler func(*floor.Result)

// Dissector routes RTCP APP packets named "MCPT" to the floor-control
// decoder and delivers every decoded message to a callback. Safe for
// concurrent use; the dissector holds no per-packet state.
type Dissector struct {
	demux    *rtcpapp.Demuxer
	onResult ResultHandler
}

// NewDissector creates a Dissector delivering results to onResult. A nil
// callback is allowed; decoding still happens and warnings are logged.
func NewDissector(onResult ResultHandler) *Dissector {
	d := &Dissector{
		demux:    rtcpapp.NewDemuxer(),
		onResult: onResult,
	}
	d.demux.Register(AppName, d.handleApp)
	return d
}

// Process feeds a raw (possibly compound) RTCP buffer through the
// demultiplexer. It returns how many MCPT packets were dissected.
func (d *Dissector) Process(raw []byte) (int, error) {
	return d.demux.Process(raw)
}

// handleApp is the rtcpapp handler: the APP subtype byte carries the
// message-type and ACK bits, the APP data holds the field stream.
func (d *Dissector) handleApp(subType uint8, ssrc uint32, data []byte) error {
	res := floor.DecodeApp(subType, data)

	logrus.WithFields(logrus.Fields{
		"function": "Dissector.handleApp",
		"ssrc":     ssrc,
		"summary":  res.Summary,
		"consumed": res.BytesConsumed,
	}).Debug("Dissected MCPT packet")

	if d.onResult != nil {
		d.onResult(res)
	}
	return nil
}

// Decode decodes a standalone floor-control buffer: the fixed 8-byte
// header followed by the field stream. Convenience re-export of
// floor.Decode.
func Decode(buf []byte) (*floor.Result, error) {
	return floor.Decode(buf)
}
