// Package transport provides the mqoq secure transport: mutually
// authenticated QUIC endpoints carrying independent bidirectional streams.
//
// # Protocol Stack
//
//	┌────────────────────────────────┐
//	│   Application bytes (MQTT)     │
//	├────────────────────────────────┤
//	│  Bidirectional QUIC streams    │
//	├────────────────────────────────┤
//	│   QUIC + TLS 1.3 (mutual)      │
//	├────────────────────────────────┤
//	│            UDP                 │
//	└────────────────────────────────┘
//
// # Roles
//
// A Server binds a UDP socket and hands out a Conn for every peer that
// completes the handshake. Connect binds an ephemeral socket and dials a
// single peer. Both ends present a certificate and verify the other against
// the trust anchors of a cert.Material. Once established, the two ends of
// a Conn are symmetric: either side may open or accept streams.
//
// # Errors
//
// Failures are reported through the sentinels in errors.go and compared
// with errors.Is. The underlying quic-go error remains reachable through
// errors.As. Context errors are returned unchanged, as is io.EOF at the end
// of a stream.
//
// # Concurrency
//
// OpenStream, stream reads and stream writes may be called from many
// goroutines. Server.Accept and Conn.AcceptStream are single-drainer: one
// goroutine at a time.
package transport
