package transport

import (
	"io"

	"github.com/quic-go/quic-go"
)

// StreamCodeCancelled is the stream error code sent when a Stream is
// closed before the peer finished sending.
const StreamCodeCancelled quic.StreamErrorCode = 0

// SendHalf is the writable direction of a Stream. Close sends FIN.
type SendHalf interface {
	io.WriteCloser
}

// RecvHalf is the readable direction of a Stream. Read returns io.EOF
// after the peer's FIN.
type RecvHalf interface {
	io.Reader
}

// Stream is a reliable, ordered, bidirectional byte stream within a Conn.
// Streams of one Conn are independent of each other.
type Stream struct {
	qs   QUICStream
	conn *Conn
}

func newStream(qs QUICStream, conn *Conn) *Stream {
	return &Stream{qs: qs, conn: conn}
}

// ID returns the QUIC stream identifier.
func (s *Stream) ID() int64 {
	return int64(s.qs.StreamID())
}

// Conn returns the connection carrying the stream.
func (s *Stream) Conn() *Conn {
	return s.conn
}

// Read reads from the receive half.
func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.qs.Read(p)
	return n, streamErr(err)
}

// Write writes to the send half.
func (s *Stream) Write(p []byte) (int, error) {
	n, err := s.qs.Write(p)
	return n, streamErr(err)
}

// CloseWrite sends FIN on the send half. The receive half stays readable.
func (s *Stream) CloseWrite() error {
	return streamErr(s.qs.Close())
}

// Close finishes the send half and abandons the receive half.
func (s *Stream) Close() error {
	s.qs.CancelRead(StreamCodeCancelled)
	return streamErr(s.qs.Close())
}

// Reset aborts both directions with code. Buffered data is discarded.
func (s *Stream) Reset(code quic.StreamErrorCode) {
	s.qs.CancelWrite(code)
	s.qs.CancelRead(code)
}

// Send returns the send half.
func (s *Stream) Send() SendHalf {
	return sendHalf{s}
}

// Recv returns the receive half.
func (s *Stream) Recv() RecvHalf {
	return recvHalf{s}
}

type sendHalf struct{ s *Stream }

func (h sendHalf) Write(p []byte) (int, error) { return h.s.Write(p) }
func (h sendHalf) Close() error                { return h.s.CloseWrite() }

type recvHalf struct{ s *Stream }

func (h recvHalf) Read(p []byte) (int, error) { return h.s.Read(p) }
