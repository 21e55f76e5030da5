package transport

import (
	"context"
	"net"

	"github.com/quic-go/quic-go"
)

// QUICConnection is the part of quic.Connection the transport drives.
type QUICConnection interface {
	OpenStreamSync(ctx context.Context) (quic.Stream, error)
	AcceptStream(ctx context.Context) (quic.Stream, error)
	CloseWithError(code quic.ApplicationErrorCode, msg string) error
	Context() context.Context
	ConnectionState() quic.ConnectionState
	LocalAddr() net.Addr
	RemoteAddr() net.Addr
}

// QUICListener is the part of quic.Listener the server drives.
type QUICListener interface {
	Accept(ctx context.Context) (quic.Connection, error)
	Addr() net.Addr
	Close() error
}

// QUICStream is the part of quic.Stream wrapped by Stream.
type QUICStream interface {
	StreamID() quic.StreamID
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
	CancelRead(code quic.StreamErrorCode)
	CancelWrite(code quic.StreamErrorCode)
}

// Interface compliance checks.
var (
	_ QUICConnection = (quic.Connection)(nil)
	_ QUICListener   = (*quic.Listener)(nil)
	_ QUICStream     = (quic.Stream)(nil)
)
