package floor

import (
	"fmt"
	"strings"
)

// buildSummary derives the one-line packet summary from the completed
// field sequence. Presentation is a separate pass over the decoded
// fields so the wire parse stays a pure bytes-to-structs function.
//
// The seed is "MCPT " plus the message name; Duration, a reject phrase,
// and the granted party's identity contribute when present.
func buildSummary(hdr Header, fields []Field) string {
	var b strings.Builder
	b.WriteString("MCPT ")
	b.WriteString(hdr.Type.String())
	for _, f := range fields {
		switch f := f.(type) {
		case Duration:
			fmt.Fprintf(&b, " (Duration: %d s)", f.Seconds)
		case RejectCause:
			if f.Phrase != "" {
				fmt.Fprintf(&b, " %q", f.Phrase)
			}
		case GrantedPartyIdentity:
			fmt.Fprintf(&b, " (%s)", f.Identity)
		}
	}
	return b.String()
}
