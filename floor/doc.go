// Package floor decodes MCPTT floor-control messages as carried in RTCP
// APP packets per 3GPP TS 24.380.
//
// A floor-control message is a fixed 8-byte header followed by a stream
// of self-describing TLV fields. Decode walks the stream with an explicit
// cursor, never reads past the buffer regardless of what the wire claims,
// and returns a structured Result plus a one-line summary. Malformed or
// truncated input stops the field loop and surfaces a warning on the
// Result; it never aborts the caller.
//
// Design principles:
//   - Decode-only: the package never re-encodes or transmits anything
//   - Pure function of the input buffer, no state between invocations
//   - Wire lengths are untrusted and clamped before every slice
//   - Out-of-table coded values are surfaced as Unknown (n), not errors
//
// All lookup tables are read-only and built at init, so concurrent
// Decode calls from a parallel packet-processing pipeline are safe
// without locking.
package floor
