package floor

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// MinFieldLen is the smallest possible field on the wire: one code
	// byte plus one length byte.
	MinFieldLen = 2

	// rejectCauseLen is the fixed width of the reject/revoke cause code.
	rejectCauseLen = 2

	// ackTypeMask selects the acknowledged-message-type sub-field of the
	// 16-bit Message Type word.
	ackTypeMask  = 0x0700
	ackTypeShift = 8
)

// Result is the outcome of decoding one floor-control message. It is
// constructed fresh per input buffer and immutable after Decode returns;
// the decoder keeps no state between invocations.
type Result struct {
	Header Header

	// Fields holds the decoded fields in wire order. Every field
	// corresponds to bytes strictly between the start of the field
	// stream and BytesConsumed.
	Fields []Field

	// BytesConsumed is how much of the buffer the decoder accounted for.
	// Always <= len(buf).
	BytesConsumed int

	// Summary is the one-line human-readable description, e.g.
	// `MCPT Floor Granted (Duration: 30 s)`.
	Summary string

	// Warning is non-nil when the field stream ended on malformed or
	// truncated data (ErrTruncatedField or ErrMalformedTrailer). The
	// fields decoded before that point are retained.
	Warning error
}

// Decode decodes a complete floor-control message: the fixed 8-byte
// header followed by the TLV field stream.
//
// The only fatal condition is a buffer shorter than the fixed header
// (ErrTruncatedHeader). Anything wrong inside the field stream stops the
// loop and is reported through Result.Warning instead, so one malformed
// packet never takes down the caller's pipeline.
func Decode(buf []byte) (*Result, error) {
	hdr, err := DecodeHeader(buf)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Decode",
			"buf_len":  len(buf),
			"error":    err.Error(),
		}).Error("Floor-control header truncated")
		return nil, err
	}
	return decodeFields(hdr, buf, FixedHeaderLen), nil
}

// DecodeApp decodes a floor-control message handed over by an RTCP APP
// demultiplexer: subType is the 5-bit APP subtype, which carries the same
// message-type and ACK bits as header byte 0, and data holds the
// application-dependent bytes with the field stream starting at offset 0.
func DecodeApp(subType uint8, data []byte) *Result {
	return decodeFields(headerFromTypeByte(subType), data, 0)
}

// decodeFields walks the field stream from start with an explicit cursor.
// Every read is bounds-checked against both the field's declared length
// and the buffer end; the cursor strictly advances, so the walk is O(n).
func decodeFields(hdr Header, buf []byte, start int) *Result {
	logrus.WithFields(logrus.Fields{
		"function": "decodeFields",
		"type":     hdr.Type.String(),
		"buf_len":  len(buf),
	}).Debug("Decoding floor-control field stream")

	res := &Result{Header: hdr}
	pos := start
	for pos < len(buf) {
		if remaining := len(buf) - pos; remaining < MinFieldLen {
			res.Warning = fmt.Errorf("%w: %d trailing byte(s) at offset %d", ErrMalformedTrailer, remaining, pos)
			break
		}

		code := FieldCode(buf[pos])
		fieldLen := int(buf[pos+1])
		pos += MinFieldLen

		// The cause code is fixed-width even when the declared length
		// understates it.
		if code == FieldRejectCause && fieldLen < rejectCauseLen {
			fieldLen = rejectCauseLen
		}

		// Wire lengths are untrusted: clamp before slicing.
		if fieldLen > len(buf)-pos {
			declared := fieldLen
			fieldLen = len(buf) - pos
			res.Warning = fmt.Errorf("%w: %s declares %d value bytes, %d remain", ErrTruncatedField, code, declared, fieldLen)
		}

		value := buf[pos : pos+fieldLen]
		pos += fieldLen

		res.Fields = append(res.Fields, decodeField(hdr, code, value))

		// Alignment padding follows string-typed values and the reject
		// phrase; it is not part of the declared length.
		if trailingPadding(code, fieldLen) {
			for pos < len(buf) && buf[pos] == 0 {
				pos++
			}
		}

		if res.Warning != nil {
			break
		}
	}
	res.BytesConsumed = pos
	res.Summary = buildSummary(hdr, res.Fields)

	if res.Warning != nil {
		logrus.WithFields(logrus.Fields{
			"function": "decodeFields",
			"type":     hdr.Type.String(),
			"offset":   pos,
			"warning":  res.Warning.Error(),
		}).Warn("Floor-control field stream malformed")
	} else {
		logrus.WithFields(logrus.Fields{
			"function":    "decodeFields",
			"type":        hdr.Type.String(),
			"field_count": len(res.Fields),
			"consumed":    res.BytesConsumed,
		}).Debug("Floor-control field stream decoded")
	}
	return res
}

// decodeField dispatches on the field code. The value slice is already
// clamped to the buffer; handlers must not reach outside it.
func decodeField(hdr Header, code FieldCode, value []byte) Field {
	switch code {
	case FieldFloorPriority:
		return FloorPriority{Priority: clampUint8(value)}
	case FieldDuration:
		return Duration{Seconds: clampUint16(value)}
	case FieldRejectCause:
		return decodeRejectCause(hdr, value)
	case FieldQueueInfo:
		return decodeQueueInfo(value)
	case FieldGrantedPartyIdentity:
		return GrantedPartyIdentity{Identity: fieldString(value)}
	case FieldPermissionToRequestFloor:
		return PermissionToRequestFloor{Permitted: clampUint16(value) != 0}
	case FieldUserID:
		return UserID{ID: fieldString(value)}
	case FieldQueueSize:
		return QueueSize{Size: clampUint16(value)}
	case FieldMessageSequenceNumber:
		return MessageSequenceNumber{Sequence: clampUint16(value)}
	case FieldQueuedUserID:
		return QueuedUserID{ID: fieldString(value)}
	case FieldSource:
		return Source{Source: SourceType(clampUint16(value))}
	case FieldMessageType:
		word := clampUint16(value)
		return MessageAckType{Type: MessageType((word & ackTypeMask) >> ackTypeShift)}
	case FieldFloorIndicator:
		word := clampUint16(value)
		return FloorIndicator{
			Normal:        word&IndicatorNormal != 0,
			Broadcast:     word&IndicatorBroadcast != 0,
			System:        word&IndicatorSystem != 0,
			Emergency:     word&IndicatorEmergency != 0,
			ImminentPeril: word&IndicatorImminentPeril != 0,
		}
	}

	raw := make([]byte, len(value))
	copy(raw, value)
	return Unrecognized{RawCode: uint8(code), Raw: raw}
}

// decodeRejectCause reads the fixed 2-byte cause code and the optional
// trailing phrase. Interpretation of the code depends on the message
// type that carries it: the revoke table in a Floor Revoke, the reject
// table in a Floor Deny, opaque anywhere else.
func decodeRejectCause(hdr Header, value []byte) Field {
	f := RejectCause{Cause: clampUint16(value)}
	switch hdr.Type {
	case MsgFloorRevoke:
		f.Name = revokeCauseNames[f.Cause]
	case MsgFloorDeny:
		f.Name = rejectCauseNames[f.Cause]
	}
	if len(value) > rejectCauseLen {
		f.Phrase = fieldString(value[rejectCauseLen:])
	}
	return f
}

// decodeQueueInfo reads the queue position and priority. The position is
// 16-bit (the 65534/65535 sentinels need the full width); a 2-byte field
// is the legacy single-octet position encoding and is widened.
func decodeQueueInfo(value []byte) Field {
	switch {
	case len(value) >= 3:
		return QueueInfo{Position: binary.BigEndian.Uint16(value), Priority: value[2]}
	case len(value) == 2:
		return QueueInfo{Position: uint16(value[0]), Priority: value[1]}
	case len(value) == 1:
		return QueueInfo{Position: uint16(value[0])}
	}
	return QueueInfo{}
}

// trailingPadding reports whether code's value is followed by zero-byte
// alignment padding on the wire. A reject cause pads only when a phrase
// is present.
func trailingPadding(code FieldCode, fieldLen int) bool {
	switch code {
	case FieldGrantedPartyIdentity, FieldUserID, FieldQueuedUserID:
		return true
	case FieldRejectCause:
		return fieldLen > rejectCauseLen
	}
	return false
}

// clampUint16 reads a big-endian 16-bit value, tolerating short slices.
func clampUint16(value []byte) uint16 {
	switch {
	case len(value) >= 2:
		return binary.BigEndian.Uint16(value)
	case len(value) == 1:
		return uint16(value[0])
	}
	return 0
}

func clampUint8(value []byte) uint8 {
	if len(value) >= 1 {
		return value[0]
	}
	return 0
}

// fieldString renders a string value, dropping zero padding that leaked
// inside the declared length.
func fieldString(value []byte) string {
	return strings.TrimRight(string(value), "\x00")
}
