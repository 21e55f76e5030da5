package transport

import (
	"crypto/tls"
	"fmt"
	"slices"

	"github.com/mqoq/mqoq-go/pkg/cert"
	"github.com/mqoq/mqoq-go/pkg/config"
)

// DefaultPort is the conventional MQTT-over-QUIC port.
const DefaultPort = 14567

// NewServerTLSConfig creates the handshake configuration for a server.
// Clients must present a certificate that chains to the material's trust
// pool. With no alpn given, config.DefaultALPN is offered.
func NewServerTLSConfig(m *cert.Material, alpn ...string) (*tls.Config, error) {
	if m == nil {
		return nil, cert.ErrNoAuthMaterial
	}
	if len(m.Certificate.Certificate) == 0 {
		return nil, cert.ErrNoCertificate
	}

	return &tls.Config{
		// TLS 1.3 only - QUIC has no earlier version
		MinVersion: tls.VersionTLS13,
		MaxVersion: tls.VersionTLS13,

		// Require client certificate (mutual TLS)
		ClientAuth: tls.RequireAndVerifyClientCert,
		ClientCAs:  m.TrustPool,

		Certificates: []tls.Certificate{m.Certificate},
		NextProtos:   protocols(alpn),

		CurvePreferences: []tls.CurveID{
			tls.X25519,
			tls.CurveP256,
		},

		// No resumption, no 0-RTT
		SessionTicketsDisabled: true,
	}, nil
}

// NewClientTLSConfig creates the handshake configuration for a client
// dialing the server identified by serverName.
func NewClientTLSConfig(m *cert.Material, serverName string, alpn ...string) (*tls.Config, error) {
	if m == nil {
		return nil, cert.ErrNoAuthMaterial
	}
	if len(m.Certificate.Certificate) == 0 {
		return nil, cert.ErrNoCertificate
	}
	if serverName == "" {
		return nil, fmt.Errorf("%w: server name is required", cert.ErrTLSConfig)
	}

	return &tls.Config{
		MinVersion: tls.VersionTLS13,
		MaxVersion: tls.VersionTLS13,

		Certificates: []tls.Certificate{m.Certificate},

		// Server certificate must chain to the trust pool and name serverName
		RootCAs:    m.TrustPool,
		ServerName: serverName,

		NextProtos: protocols(alpn),

		CurvePreferences: []tls.CurveID{
			tls.X25519,
			tls.CurveP256,
		},

		SessionTicketsDisabled: true,
	}, nil
}

func protocols(alpn []string) []string {
	if len(alpn) == 0 {
		return []string{config.DefaultALPN}
	}
	return slices.Clone(alpn)
}

// VerifyTLS13 checks that a handshake negotiated TLS 1.3.
func VerifyTLS13(state tls.ConnectionState) error {
	if state.Version != tls.VersionTLS13 {
		return fmt.Errorf("TLS version %x is not TLS 1.3 (0x0304)", state.Version)
	}
	return nil
}

// VerifyALPN checks that the negotiated application protocol is one of alpn.
func VerifyALPN(state tls.ConnectionState, alpn ...string) error {
	offered := protocols(alpn)
	if !slices.Contains(offered, state.NegotiatedProtocol) {
		return fmt.Errorf("ALPN protocol %q is not one of %q", state.NegotiatedProtocol, offered)
	}
	return nil
}

// VerifyConnection performs the checks applied after every handshake.
func VerifyConnection(state tls.ConnectionState, alpn ...string) error {
	if err := VerifyTLS13(state); err != nil {
		return err
	}
	if err := VerifyALPN(state, alpn...); err != nil {
		return err
	}
	if len(state.PeerCertificates) == 0 {
		return fmt.Errorf("peer presented no certificate")
	}
	return nil
}
