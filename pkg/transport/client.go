package transport

import (
	"context"
	"fmt"
	"net"

	"github.com/mqoq/mqoq-go/pkg/cert"
	"github.com/mqoq/mqoq-go/pkg/config"
	"github.com/mqoq/mqoq-go/pkg/log"
)

// ClientConfig configures Connect.
type ClientConfig struct {
	// Material is the local identity and the trust anchors for the server.
	Material *cert.Material

	// BindAddress is the local socket address. Empty binds an ephemeral
	// port on all interfaces.
	BindAddress string

	// PeerAddress is the server address (host:port).
	PeerAddress string

	// ServerName is the identity the server certificate must carry.
	ServerName string

	// Transport holds ALPN and QUIC tuning.
	Transport config.TransportConfig

	// Logger for protocol logging (optional).
	Logger log.Logger
}

// Connect binds a client socket and dials the peer. It returns once the
// handshake has completed and the server certificate has been verified
// against ServerName and the material's trust pool.
//
// The returned Conn owns the socket and releases it when closed or when
// the connection ends.
func Connect(ctx context.Context, cfg ClientConfig) (*Conn, error) {
	if cfg.Material == nil {
		return nil, cert.ErrNoAuthMaterial
	}

	alpn := cfg.Transport.Protocols()
	tlsConf, err := NewClientTLSConfig(cfg.Material, cfg.ServerName, alpn...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS config: %w", err)
	}

	ep, err := newEndpoint(cfg.BindAddress)
	if err != nil {
		return nil, err
	}

	peer, err := net.ResolveUDPAddr("udp", cfg.PeerAddress)
	if err != nil {
		_ = ep.Close()
		return nil, fmt.Errorf("%w: resolve %s: %w", ErrConnect, cfg.PeerAddress, err)
	}

	qc, err := ep.tr.Dial(ctx, peer, tlsConf, quicConfig(cfg.Transport))
	if err != nil {
		_ = ep.Close()
		return nil, fmt.Errorf("connect %s: %w", cfg.PeerAddress, handshakeErr(err))
	}

	if err := VerifyConnection(qc.ConnectionState().TLS, alpn...); err != nil {
		_ = qc.CloseWithError(CloseCodeRejected, "verification failed")
		_ = ep.Close()
		return nil, fmt.Errorf("%w: %w", ErrHandshake, err)
	}

	c := newConn(qc, log.RoleClient, cfg.Logger)
	c.release = ep.Close
	c.logState("", log.StateConnected, "")
	go c.watch()
	return c, nil
}
