package floor

// Cause tables from TS 24.380. The same 2-byte cause code selects one of
// these depending on the message type carrying it; see decodeRejectCause.

var rejectCauseNames = map[uint16]string{
	1:   "Another MCPTT client has permission",
	2:   "Internal floor control server error",
	3:   "Only one participant",
	4:   "Retry-after timer has not expired",
	5:   "Receive only",
	6:   "No resources available",
	7:   "Queue full",
	255: "Other reason",
}

var revokeCauseNames = map[uint16]string{
	1:   "Only one MCPTT client has permission",
	2:   "Media burst too long",
	3:   "No permission to send a Media Burst",
	4:   "Media Burst pre-empted",
	6:   "No resources available",
	255: "Other reason",
}

var sourceNames = map[SourceType]string{
	SourceFloorParticipant:       "Floor Participant",
	SourceParticipatingFunction:  "Participating MCPTT Function",
	SourceControllingFunction:    "Controlling MCPTT Function",
	SourceNonControllingFunction: "Non-Controlling MCPTT Function",
}
