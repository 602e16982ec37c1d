package floor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeHeader_MessageTypes verifies every named message type and the
// unknown-value fallback.
func TestDecodeHeader_MessageTypes(t *testing.T) {
	tests := []struct {
		name     string
		typeByte byte
		wantType MessageType
		wantName string
	}{
		{"floor request", 0x00, MsgFloorRequest, "Floor Request"},
		{"floor granted", 0x01, MsgFloorGranted, "Floor Granted"},
		{"floor taken", 0x02, MsgFloorTaken, "Floor Taken"},
		{"floor deny", 0x03, MsgFloorDeny, "Floor Deny"},
		{"floor release", 0x04, MsgFloorRelease, "Floor Release"},
		{"floor idle", 0x05, MsgFloorIdle, "Floor Idle"},
		{"floor revoke", 0x06, MsgFloorRevoke, "Floor Revoke"},
		{"queue position request", 0x08, MsgFloorQueuePositionRequest, "Floor Queue Position Request"},
		{"queue position info", 0x09, MsgFloorQueuePositionInfo, "Floor Queue Position Info"},
		{"floor ack", 0x0A, MsgFloorAck, "Floor Ack"},
		{"release multi talker", 0x0F, MsgFloorReleaseMultiTalker, "Floor Release Multi Talker"},
		{"unknown type 7", 0x07, MessageType(7), "Unknown (7)"},
		{"unknown type 11", 0x0B, MessageType(11), "Unknown (11)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, FixedHeaderLen)
			buf[0] = tt.typeByte

			hdr, err := DecodeHeader(buf)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, hdr.Type)
			assert.Equal(t, tt.wantName, hdr.Type.String())
			assert.False(t, hdr.AckRequired)
		})
	}
}

// TestDecodeHeader_AckRequired verifies bit 4 of byte 0 is the ACK flag
// and does not bleed into the message type.
func TestDecodeHeader_AckRequired(t *testing.T) {
	buf := make([]byte, FixedHeaderLen)
	buf[0] = 0x13 // Floor Deny with ACK required

	hdr, err := DecodeHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, MsgFloorDeny, hdr.Type)
	assert.True(t, hdr.AckRequired)
}

// TestDecodeHeader_Truncated verifies that buffers shorter than the fixed
// header fail with ErrTruncatedHeader.
func TestDecodeHeader_Truncated(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		buf := make([]byte, n)
		_, err := DecodeHeader(buf)
		require.Error(t, err, "buffer of %d bytes must not decode", n)
		assert.ErrorIs(t, err, ErrTruncatedHeader)
	}
}

// TestMessageType_Known verifies the table membership check.
func TestMessageType_Known(t *testing.T) {
	assert.True(t, MsgFloorRequest.Known())
	assert.True(t, MsgFloorReleaseMultiTalker.Known())
	assert.False(t, MessageType(7).Known())
	assert.False(t, MessageType(200).Known())
}
