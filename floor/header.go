package floor

import (
	"fmt"
)

// MessageType identifies an MCPTT floor-control message (TS 24.380
// table 8.2.2-1). The value travels in the low nibble of header byte 0
// and, on the RTCP side, in the low bits of the APP subtype.
type MessageType uint8

const (
	MsgFloorRequest              MessageType = 0
	MsgFloorGranted              MessageType = 1
	MsgFloorTaken                MessageType = 2
	MsgFloorDeny                 MessageType = 3
	MsgFloorRelease              MessageType = 4
	MsgFloorIdle                 MessageType = 5
	MsgFloorRevoke               MessageType = 6
	MsgFloorQueuePositionRequest MessageType = 8
	MsgFloorQueuePositionInfo    MessageType = 9
	MsgFloorAck                  MessageType = 10
	MsgFloorReleaseMultiTalker   MessageType = 15
)

const (
	// FixedHeaderLen is the length of the fixed header preceding the
	// field stream.
	FixedHeaderLen = 8

	msgTypeMask     = 0x0F
	ackRequiredMask = 0x10
)

var messageTypeNames = map[MessageType]string{
	MsgFloorRequest:              "Floor Request",
	MsgFloorGranted:              "Floor Granted",
	MsgFloorTaken:                "Floor Taken",
	MsgFloorDeny:                 "Floor Deny",
	MsgFloorRelease:              "Floor Release",
	MsgFloorIdle:                 "Floor Idle",
	MsgFloorRevoke:               "Floor Revoke",
	MsgFloorQueuePositionRequest: "Floor Queue Position Request",
	MsgFloorQueuePositionInfo:    "Floor Queue Position Info",
	MsgFloorAck:                  "Floor Ack",
	MsgFloorReleaseMultiTalker:   "Floor Release Multi Talker",
}

// String returns the TS 24.380 message name, or "Unknown (n)" for values
// outside the table. Out-of-table values are representable, not errors,
// since 3GPP may extend the table.
func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", uint8(t))
}

// Known reports whether t is in the TS 24.380 message-type table.
func (t MessageType) Known() bool {
	_, ok := messageTypeNames[t]
	return ok
}

// Header is the decoded fixed header of a floor-control message.
// Immutable once parsed; created once per packet from byte 0.
type Header struct {
	Type        MessageType
	AckRequired bool
}

// DecodeHeader parses the fixed 8-byte header from the start of buf.
//
// Byte 0 carries the message type in bits 0-3 and the ACK-required flag
// in bit 4; bytes 1-7 are not interpreted by this decoder. Returns
// ErrTruncatedHeader when buf is shorter than FixedHeaderLen.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < FixedHeaderLen {
		return Header{}, fmt.Errorf("%w: got %d bytes, need %d", ErrTruncatedHeader, len(buf), FixedHeaderLen)
	}
	return headerFromTypeByte(buf[0]), nil
}

// headerFromTypeByte extracts the header from the type/ack byte. The
// same bit layout appears in header byte 0 and in the RTCP APP subtype.
func headerFromTypeByte(b byte) Header {
	return Header{
		Type:        MessageType(b & msgTypeMask),
		AckRequired: b&ackRequiredMask != 0,
	}
}
