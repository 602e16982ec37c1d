// Package rtcpapp demultiplexes RTCP APP packets to application decoders.
//
// RTCP application-defined packets (PT 204) carry a 4-character ASCII
// name identifying the application. A Demuxer holds a registry of name
// to handler; Process walks a raw, possibly compound RTCP buffer with
// pion/rtcp and hands each APP packet with a registered name to its
// handler. Everything else in the compound is skipped, not an error.
//
// The MCPTT floor-control decoder registers here under the name "MCPT".
package rtcpapp
