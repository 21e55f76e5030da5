package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quic-go/quic-go"

	"github.com/mqoq/mqoq-go/pkg/log"
)

// Application close codes sent with CONNECTION_CLOSE.
const (
	// CloseCodeNormal is sent on a graceful Close.
	CloseCodeNormal quic.ApplicationErrorCode = 0

	// CloseCodeRejected is sent when post-handshake verification fails.
	CloseCodeRejected quic.ApplicationErrorCode = 1
)

// Conn is an established, mutually authenticated QUIC connection. It is
// symmetric: both ends may open and accept bidirectional streams.
type Conn struct {
	id     string
	qc     QUICConnection
	role   log.Role
	logger log.Logger

	tlsState tls.ConnectionState
	peerName string

	// release frees resources owned by this Conn (the client socket).
	release func() error

	closeOnce sync.Once
	closeErr  error
	downOnce  sync.Once
}

func newConn(qc QUICConnection, role log.Role, logger log.Logger) *Conn {
	state := qc.ConnectionState().TLS
	c := &Conn{
		id:       uuid.New().String(),
		qc:       qc,
		role:     role,
		logger:   logger,
		tlsState: state,
	}
	if len(state.PeerCertificates) > 0 {
		c.peerName = state.PeerCertificates[0].Subject.CommonName
	}
	return c
}

// ID returns the locally assigned connection identifier used in logs.
func (c *Conn) ID() string {
	return c.id
}

// Role returns whether this end accepted or dialed the connection.
func (c *Conn) Role() log.Role {
	return c.role
}

// LocalAddr returns the local network address.
func (c *Conn) LocalAddr() net.Addr {
	return c.qc.LocalAddr()
}

// RemoteAddr returns the peer's network address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.qc.RemoteAddr()
}

// TLSState returns the negotiated handshake state.
func (c *Conn) TLSState() tls.ConnectionState {
	return c.tlsState
}

// PeerCertificates returns the chain the peer presented, leaf first.
func (c *Conn) PeerCertificates() []*x509.Certificate {
	return c.tlsState.PeerCertificates
}

// PeerName returns the common name of the peer's leaf certificate.
func (c *Conn) PeerName() string {
	return c.peerName
}

// Done is closed when the connection has terminated for any reason.
func (c *Conn) Done() <-chan struct{} {
	return c.qc.Context().Done()
}

// OpenStream opens a new bidirectional stream. It blocks only while the
// peer's stream limit is exhausted. Safe for concurrent use.
//
// The peer learns about the stream when the first bytes (or FIN) are sent.
func (c *Conn) OpenStream(ctx context.Context) (*Stream, error) {
	qs, err := c.qc.OpenStreamSync(ctx)
	if err != nil {
		return nil, c.fail("open stream", err)
	}
	s := newStream(qs, c)
	c.logStream(log.DirectionOut, s.ID())
	return s, nil
}

// AcceptStream waits for the peer to open a bidirectional stream. Once the
// connection is closed by either end it returns ErrConnectionBroken.
// Only one goroutine may wait in AcceptStream at a time.
func (c *Conn) AcceptStream(ctx context.Context) (*Stream, error) {
	qs, err := c.qc.AcceptStream(ctx)
	if err != nil {
		return nil, c.fail("accept stream", err)
	}
	s := newStream(qs, c)
	c.logStream(log.DirectionIn, s.ID())
	return s, nil
}

// Close terminates the connection gracefully with CloseCodeNormal. Open
// streams are aborted. Close is idempotent.
func (c *Conn) Close() error {
	return c.closeWith(CloseCodeNormal, "")
}

func (c *Conn) closeWith(code quic.ApplicationErrorCode, reason string) error {
	c.closeOnce.Do(func() {
		if err := c.qc.CloseWithError(code, reason); err != nil {
			c.closeErr = fmt.Errorf("%w: %w", ErrIO, err)
		}
		if c.release != nil {
			if err := c.release(); err != nil && c.closeErr == nil {
				c.closeErr = err
			}
		}
		if reason == "" {
			reason = "local close"
		}
		c.down(reason)
	})
	return c.closeErr
}

// fail classifies err and records the connection as down when the error
// ends it.
func (c *Conn) fail(op string, err error) error {
	err = connErr(err)
	if errors.Is(err, ErrConnectionBroken) || errors.Is(err, ErrConnection) || errors.Is(err, ErrHandshake) {
		c.down(err.Error())
	}
	return fmt.Errorf("%s: %w", op, err)
}

// watch releases owned resources once the connection ends on its own.
func (c *Conn) watch() {
	ctx := c.qc.Context()
	<-ctx.Done()
	if c.release != nil {
		_ = c.release()
	}
	reason := "connection closed"
	if cause := context.Cause(ctx); cause != nil {
		reason = cause.Error()
	}
	c.down(reason)
}

func (c *Conn) down(reason string) {
	c.downOnce.Do(func() {
		c.logState(log.StateConnected, log.StateDisconnected, reason)
	})
}

func (c *Conn) event(layer log.Layer, category log.Category, dir log.Direction) log.Event {
	ev := log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.id,
		Direction:    dir,
		Layer:        layer,
		Category:     category,
		LocalRole:    c.role,
		PeerName:     c.peerName,
	}
	if addr := c.qc.LocalAddr(); addr != nil {
		ev.LocalAddr = addr.String()
	}
	if addr := c.qc.RemoteAddr(); addr != nil {
		ev.RemoteAddr = addr.String()
	}
	return ev
}

func (c *Conn) logState(oldState, newState, reason string) {
	if c.logger == nil {
		return
	}
	ev := c.event(log.LayerConnection, log.CategoryState, c.initiator())
	ev.StateChange = &log.StateChangeEvent{
		OldState: oldState,
		NewState: newState,
		Reason:   reason,
	}
	c.logger.Log(ev)
}

// initiator is the side that established the connection, seen from here.
func (c *Conn) initiator() log.Direction {
	if c.role == log.RoleClient {
		return log.DirectionOut
	}
	return log.DirectionIn
}

func (c *Conn) logStream(dir log.Direction, id int64) {
	if c.logger == nil {
		return
	}
	ev := c.event(log.LayerStream, log.CategoryStream, dir)
	ev.Stream = &log.StreamEvent{StreamID: id}
	c.logger.Log(ev)
}
