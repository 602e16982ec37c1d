package rtcpapp

import (
	"errors"
	"testing"

	"github.com/pion/rtcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalApp(t *testing.T, name string, subType uint8, ssrc uint32, data []byte) []byte {
	t.Helper()
	app := rtcp.ApplicationDefined{
		SubType: subType,
		SSRC:    ssrc,
		Name:    name,
		Data:    data,
	}
	raw, err := app.Marshal()
	require.NoError(t, err)
	return raw
}

// TestDemuxer_DispatchesRegisteredApp verifies that an APP packet with a
// registered name reaches its handler with subtype, SSRC, and data
// intact.
func TestDemuxer_DispatchesRegisteredApp(t *testing.T) {
	d := NewDemuxer()

	var gotSubType uint8
	var gotSSRC uint32
	var gotData []byte
	d.Register("MCPT", func(subType uint8, ssrc uint32, data []byte) error {
		gotSubType = subType
		gotSSRC = ssrc
		gotData = data
		return nil
	})

	raw := marshalApp(t, "MCPT", 0x11, 42, []byte{103, 2, 0x00, 0x1E})
	n, err := d.Process(raw)
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	assert.Equal(t, uint8(0x11), gotSubType)
	assert.Equal(t, uint32(42), gotSSRC)
	assert.Equal(t, []byte{103, 2, 0x00, 0x1E}, gotData)
}

// TestDemuxer_SkipsUnregisteredName verifies that APP packets with no
// registered handler are skipped without error.
func TestDemuxer_SkipsUnregisteredName(t *testing.T) {
	d := NewDemuxer()

	called := false
	d.Register("MCPT", func(uint8, uint32, []byte) error {
		called = true
		return nil
	})

	raw := marshalApp(t, "XYZW", 1, 7, []byte{0, 0, 0, 0})
	n, err := d.Process(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.False(t, called)
}

// TestDemuxer_SkipsNonAppPackets verifies that other RTCP packet types
// in a compound buffer are passed over.
func TestDemuxer_SkipsNonAppPackets(t *testing.T) {
	d := NewDemuxer()

	count := 0
	d.Register("MCPT", func(uint8, uint32, []byte) error {
		count++
		return nil
	})

	rr := rtcp.ReceiverReport{SSRC: 0x1234}
	rrRaw, err := rr.Marshal()
	require.NoError(t, err)

	compound := append(rrRaw, marshalApp(t, "MCPT", 2, 9, []byte{102, 1, 5, 0})...)
	n, err := d.Process(compound)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, count)
}

// TestDemuxer_GarbageInput verifies that a buffer that is not RTCP
// errors cleanly instead of panicking.
func TestDemuxer_GarbageInput(t *testing.T) {
	d := NewDemuxer()

	n, err := d.Process([]byte{0x01, 0x02, 0x03})
	assert.Error(t, err)
	assert.Equal(t, 0, n)
}

// TestDemuxer_HandlerErrorPropagates verifies that a handler error stops
// dispatch and is returned wrapped.
func TestDemuxer_HandlerErrorPropagates(t *testing.T) {
	d := NewDemuxer()

	sentinel := errors.New("decode blew up")
	d.Register("MCPT", func(uint8, uint32, []byte) error {
		return sentinel
	})

	raw := marshalApp(t, "MCPT", 1, 7, []byte{0, 0, 0, 0})
	n, err := d.Process(raw)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, n)
}
