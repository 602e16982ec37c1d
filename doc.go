// Package mcptt dissects MCPTT floor-control traffic (3GPP TS 24.380).
//
// MCPTT (Mission-Critical Push-To-Talk) arbitrates the floor, the
// exclusive right to transmit, on a group call. Its floor-control
// messages ride in RTCP APP packets under the application name "MCPT".
// This package is the facade that ties the two halves together: the
// rtcpapp demultiplexer that picks APP packets out of raw RTCP, and the
// floor decoder that turns each payload into a structured Result.
//
// # Getting Started
//
// Create a Dissector with a result callback and feed it raw RTCP:
//
//	d := mcptt.NewDissector(func(res *floor.Result) {
//	    fmt.Println(res.Summary)
//	})
//
//	if _, err := d.Process(rtcpBuf); err != nil {
//	    log.Fatal(err)
//	}
//
// A standalone floor-control buffer (fixed 8-byte header plus fields)
// can be decoded directly with mcptt.Decode or floor.Decode.
//
// The dissector is read-only: it never re-encodes, never performs
// network I/O, and never enforces floor-control protocol policy. A
// malformed packet yields a Result with a warning attached, not an
// abort, so a capture pipeline can keep processing subsequent packets.
package mcptt
