package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/quic-go/quic-go"

	"github.com/mqoq/mqoq-go/pkg/cert"
	"github.com/mqoq/mqoq-go/pkg/config"
	"github.com/mqoq/mqoq-go/pkg/log"
)

// ServerConfig configures a Server.
type ServerConfig struct {
	// Material is the local identity and the trust anchors for clients.
	Material *cert.Material

	// Address to bind (e.g. "0.0.0.0:14567"). Empty binds DefaultPort on
	// all interfaces.
	Address string

	// Transport holds ALPN and QUIC tuning.
	Transport config.TransportConfig

	// Logger for protocol logging (optional).
	Logger log.Logger
}

// Server accepts mutually authenticated QUIC connections on one UDP socket.
type Server struct {
	config ServerConfig
	alpn   []string
	ln     QUICListener
	ep     io.Closer

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// Listen binds the server socket and starts listening. A bind failure,
// including an address already in use, returns ErrEndpointBind.
func Listen(cfg ServerConfig) (*Server, error) {
	if cfg.Material == nil {
		return nil, cert.ErrNoAuthMaterial
	}
	if cfg.Address == "" {
		cfg.Address = fmt.Sprintf(":%d", DefaultPort)
	}

	tlsConf, err := NewServerTLSConfig(cfg.Material, cfg.Transport.Protocols()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS config: %w", err)
	}

	ep, err := newEndpoint(cfg.Address)
	if err != nil {
		return nil, err
	}

	ln, err := ep.tr.Listen(tlsConf, quicConfig(cfg.Transport))
	if err != nil {
		_ = ep.Close()
		return nil, fmt.Errorf("%w: %w", ErrEndpointBind, err)
	}

	s := newServer(cfg, ln, ep)
	s.logState("", log.StateListening, "")
	return s, nil
}

func newServer(cfg ServerConfig, ln QUICListener, ep io.Closer) *Server {
	return &Server{
		config: cfg,
		alpn:   cfg.Transport.Protocols(),
		ln:     ln,
		ep:     ep,
	}
}

// Addr returns the bound address; useful when binding port 0.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Accept waits for the next connection that completes the handshake.
//
// Handshakes that fail are dropped by the engine and never surface here,
// so a misbehaving client cannot stop the server from accepting others.
// After Close, Accept returns ErrConnectionBroken. Context errors are
// returned unchanged and leave the server usable. Only one goroutine may
// call Accept at a time.
func (s *Server) Accept(ctx context.Context) (*Conn, error) {
	for {
		qc, err := s.ln.Accept(ctx)
		if err != nil {
			if isContextErr(err) {
				return nil, err
			}
			if s.closed.Load() || errors.Is(err, quic.ErrServerClosed) {
				return nil, fmt.Errorf("%w: server closed: %w", ErrConnectionBroken, err)
			}
			return nil, connErr(err)
		}

		if err := VerifyConnection(qc.ConnectionState().TLS, s.alpn...); err != nil {
			_ = qc.CloseWithError(CloseCodeRejected, "verification failed")
			s.logRejected(qc, err)
			continue
		}

		c := newConn(qc, log.RoleServer, s.config.Logger)
		c.logState("", log.StateConnected, "")
		return c, nil
	}
}

// Close stops listening, closes every connection accepted by the server
// and releases the socket. Close is idempotent.
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if err := s.ln.Close(); err != nil {
			s.closeErr = fmt.Errorf("%w: %w", ErrIO, err)
		}
		if err := s.ep.Close(); err != nil && s.closeErr == nil {
			s.closeErr = err
		}
		s.logState(log.StateListening, log.StateClosed, "")
	})
	return s.closeErr
}

func (s *Server) logState(oldState, newState, reason string) {
	if s.config.Logger == nil {
		return
	}
	ev := log.Event{
		Timestamp: time.Now(),
		Direction: log.DirectionNone,
		Layer:     log.LayerEndpoint,
		Category:  log.CategoryState,
		LocalRole: log.RoleServer,
		StateChange: &log.StateChangeEvent{
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	}
	if addr := s.ln.Addr(); addr != nil {
		ev.LocalAddr = addr.String()
	}
	s.config.Logger.Log(ev)
}

func (s *Server) logRejected(qc quic.Connection, err error) {
	if s.config.Logger == nil {
		return
	}
	ev := log.Event{
		Timestamp: time.Now(),
		Direction: log.DirectionIn,
		Layer:     log.LayerEndpoint,
		Category:  log.CategoryError,
		LocalRole: log.RoleServer,
		Error: &log.ErrorEventData{
			Layer:   log.LayerConnection,
			Message: err.Error(),
			Context: "post-handshake verification",
		},
	}
	if addr := qc.LocalAddr(); addr != nil {
		ev.LocalAddr = addr.String()
	}
	if addr := qc.RemoteAddr(); addr != nil {
		ev.RemoteAddr = addr.String()
	}
	s.config.Logger.Log(ev)
}
