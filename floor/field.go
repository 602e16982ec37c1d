package floor

import (
	"fmt"
)

// FieldCode identifies a field in the floor-control field stream
// (TS 24.380 table 8.2.3.1-2). Codes 107 and 114 are not in the table;
// any code outside it decodes as an Unrecognized field.
type FieldCode uint8

const (
	FieldFloorPriority            FieldCode = 102
	FieldDuration                 FieldCode = 103
	FieldRejectCause              FieldCode = 104
	FieldQueueInfo                FieldCode = 105
	FieldGrantedPartyIdentity     FieldCode = 106
	FieldPermissionToRequestFloor FieldCode = 108
	FieldUserID                   FieldCode = 109
	FieldQueueSize                FieldCode = 110
	FieldMessageSequenceNumber    FieldCode = 111
	FieldQueuedUserID             FieldCode = 112
	FieldSource                   FieldCode = 113
	FieldMessageType              FieldCode = 115
	FieldFloorIndicator           FieldCode = 116
)

var fieldCodeNames = map[FieldCode]string{
	FieldFloorPriority:            "Floor Priority",
	FieldDuration:                 "Duration",
	FieldRejectCause:              "Reject Cause",
	FieldQueueInfo:                "Queue Info",
	FieldGrantedPartyIdentity:     "Granted Party's Identity",
	FieldPermissionToRequestFloor: "Permission to Request the Floor",
	FieldUserID:                   "User ID",
	FieldQueueSize:                "Queue Size",
	FieldMessageSequenceNumber:    "Message Sequence Number",
	FieldQueuedUserID:             "Queued User ID",
	FieldSource:                   "Source",
	FieldMessageType:              "Message Type",
	FieldFloorIndicator:           "Floor Indicator",
}

// String returns the field name, or "Unknown (n)" for codes outside the
// table.
func (c FieldCode) String() string {
	if name, ok := fieldCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", uint8(c))
}

// Known reports whether c is one of the 13 codes in the field table.
func (c FieldCode) Known() bool {
	_, ok := fieldCodeNames[c]
	return ok
}

// Field is one decoded entry of the field stream. The concrete type
// carries the decoded payload; String renders one line of the field tree.
type Field interface {
	Code() FieldCode
	String() string
}

// FloorPriority is the priority of a floor request (field 102).
type FloorPriority struct {
	Priority uint8
}

func (FloorPriority) Code() FieldCode { return FieldFloorPriority }
func (f FloorPriority) String() string {
	return fmt.Sprintf("Floor Priority: %d", f.Priority)
}

// Duration is the remaining transmit time in seconds (field 103).
type Duration struct {
	Seconds uint16
}

func (Duration) Code() FieldCode { return FieldDuration }
func (f Duration) String() string {
	return fmt.Sprintf("Duration: %d s", f.Seconds)
}

// RejectCause is the reject/revoke cause field (field 104). The same
// 2-byte code is interpreted against the revoke-cause table in a Floor
// Revoke, the reject-cause table in a Floor Deny, and carried opaque in
// any other message; Name is empty in the opaque case. Phrase holds the
// optional trailing human-readable text.
type RejectCause struct {
	Cause  uint16
	Name   string
	Phrase string
}

func (RejectCause) Code() FieldCode { return FieldRejectCause }
func (f RejectCause) String() string {
	s := fmt.Sprintf("Reject Cause: %d", f.Cause)
	if f.Name != "" {
		s = fmt.Sprintf("Reject Cause: %s (%d)", f.Name, f.Cause)
	}
	if f.Phrase != "" {
		s += fmt.Sprintf(" %q", f.Phrase)
	}
	return s
}

// Queue Info position sentinels (16-bit domain).
const (
	// QueuePositionNotDisclosed means the floor control server did not
	// disclose the queue position.
	QueuePositionNotDisclosed uint16 = 65535

	// QueuePositionNotQueued means the client is not queued.
	QueuePositionNotQueued uint16 = 65534
)

// QueueInfo is the queue position and priority field (field 105).
type QueueInfo struct {
	Position uint16
	Priority uint8
}

func (QueueInfo) Code() FieldCode { return FieldQueueInfo }

// Disclosed reports whether the server disclosed a queue position.
func (f QueueInfo) Disclosed() bool { return f.Position != QueuePositionNotDisclosed }

// Queued reports whether the client is queued at all.
func (f QueueInfo) Queued() bool { return f.Position != QueuePositionNotQueued }

func (f QueueInfo) String() string {
	switch f.Position {
	case QueuePositionNotDisclosed:
		return fmt.Sprintf("Queue Info: position not disclosed, priority %d", f.Priority)
	case QueuePositionNotQueued:
		return fmt.Sprintf("Queue Info: not queued, priority %d", f.Priority)
	}
	return fmt.Sprintf("Queue Info: position %d, priority %d", f.Position, f.Priority)
}

// GrantedPartyIdentity is the identity of the party granted the floor
// (field 106).
type GrantedPartyIdentity struct {
	Identity string
}

func (GrantedPartyIdentity) Code() FieldCode { return FieldGrantedPartyIdentity }
func (f GrantedPartyIdentity) String() string {
	return fmt.Sprintf("Granted Party's Identity: %s", f.Identity)
}

// PermissionToRequestFloor reports whether receiving parties may request
// the floor (field 108).
type PermissionToRequestFloor struct {
	Permitted bool
}

func (PermissionToRequestFloor) Code() FieldCode { return FieldPermissionToRequestFloor }
func (f PermissionToRequestFloor) String() string {
	if f.Permitted {
		return "Permission to Request the Floor: permitted"
	}
	return "Permission to Request the Floor: not permitted"
}

// UserID is the user identity field (field 109).
type UserID struct {
	ID string
}

func (UserID) Code() FieldCode { return FieldUserID }
func (f UserID) String() string {
	return fmt.Sprintf("User ID: %s", f.ID)
}

// QueueSize is the number of queued floor requests (field 110).
type QueueSize struct {
	Size uint16
}

func (QueueSize) Code() FieldCode { return FieldQueueSize }
func (f QueueSize) String() string {
	return fmt.Sprintf("Queue Size: %d", f.Size)
}

// MessageSequenceNumber is the sequence number field (field 111).
type MessageSequenceNumber struct {
	Sequence uint16
}

func (MessageSequenceNumber) Code() FieldCode { return FieldMessageSequenceNumber }
func (f MessageSequenceNumber) String() string {
	return fmt.Sprintf("Message Sequence Number: %d", f.Sequence)
}

// QueuedUserID is the identity of a queued user (field 112).
type QueuedUserID struct {
	ID string
}

func (QueuedUserID) Code() FieldCode { return FieldQueuedUserID }
func (f QueuedUserID) String() string {
	return fmt.Sprintf("Queued User ID: %s", f.ID)
}

// SourceType identifies which floor-control entity sent the message.
type SourceType uint16

const (
	SourceFloorParticipant       SourceType = 0
	SourceParticipatingFunction  SourceType = 1
	SourceControllingFunction    SourceType = 2
	SourceNonControllingFunction SourceType = 3
)

// String returns the source name, or "Unknown (n)" outside the table.
func (s SourceType) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", uint16(s))
}

// Source is the message source field (field 113).
type Source struct {
	Source SourceType
}

func (Source) Code() FieldCode { return FieldSource }
func (f Source) String() string {
	return fmt.Sprintf("Source: %s", f.Source)
}

// MessageAckType is the message-type field of a Floor Ack (field 115):
// the acknowledged message type, carried in bits 8-10 of a 16-bit word.
type MessageAckType struct {
	Type MessageType
}

func (MessageAckType) Code() FieldCode { return FieldMessageType }
func (f MessageAckType) String() string {
	return fmt.Sprintf("Message Type: %s", f.Type)
}

// Floor Indicator flag masks within the 16-bit indicator word. The five
// flags are independent projections of the same word.
const (
	IndicatorNormal        uint16 = 0x8000
	IndicatorBroadcast     uint16 = 0x4000
	IndicatorSystem        uint16 = 0x2000
	IndicatorEmergency     uint16 = 0x1000
	IndicatorImminentPeril uint16 = 0x0800
)

// FloorIndicator is the call-type indicator field (field 116).
type FloorIndicator struct {
	Normal        bool
	Broadcast     bool
	System        bool
	Emergency     bool
	ImminentPeril bool
}

func (FloorIndicator) Code() FieldCode { return FieldFloorIndicator }
func (f FloorIndicator) String() string {
	set := make([]byte, 0, 64)
	add := func(on bool, name string) {
		if !on {
			return
		}
		if len(set) > 0 {
			set = append(set, ", "...)
		}
		set = append(set, name...)
	}
	add(f.Normal, "Normal")
	add(f.Broadcast, "Broadcast Group")
	add(f.System, "System")
	add(f.Emergency, "Emergency")
	add(f.ImminentPeril, "Imminent Peril")
	if len(set) == 0 {
		return "Floor Indicator: none"
	}
	return fmt.Sprintf("Floor Indicator: %s", set)
}

// Unrecognized is a field whose code is outside the 13-entry table. The
// value bytes are retained raw so nothing on the wire is lost.
type Unrecognized struct {
	RawCode uint8
	Raw     []byte
}

func (f Unrecognized) Code() FieldCode { return FieldCode(f.RawCode) }
func (f Unrecognized) String() string {
	return fmt.Sprintf("Unknown field %d: % X", f.RawCode, f.Raw)
}
