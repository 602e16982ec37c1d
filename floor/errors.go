package floor

import "errors"

var (
	// ErrTruncatedHeader indicates the buffer is shorter than the fixed
	// 8-byte header. This is fatal for the packet: no Result is produced.
	ErrTruncatedHeader = errors.New("buffer shorter than fixed header")

	// ErrTruncatedField indicates a field declared more value bytes than
	// the buffer holds. Non-fatal: the field is decoded from the clamped
	// remainder and the loop stops with this warning on the Result.
	ErrTruncatedField = errors.New("field truncated")

	// ErrMalformedTrailer indicates trailing bytes too short for even a
	// minimal field (code + length). Non-fatal: decoding stops before the
	// trailer and the fields decoded so far are retained.
	ErrMalformedTrailer = errors.New("field missing or malformed")
)
