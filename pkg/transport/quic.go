package transport

import (
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/quic-go/quic-go"

	"github.com/mqoq/mqoq-go/pkg/config"
)

// quicConfig maps TransportConfig onto the engine configuration. Zero
// values keep quic-go's defaults.
func quicConfig(tc config.TransportConfig) *quic.Config {
	return &quic.Config{
		HandshakeIdleTimeout: tc.HandshakeIdleTimeout,
		MaxIdleTimeout:       tc.MaxIdleTimeout,
		KeepAlivePeriod:      tc.KeepAlivePeriod,
		MaxIncomingStreams:   tc.MaxIncomingStreams,
		// Unidirectional streams are not part of the protocol.
		MaxIncomingUniStreams: -1,
	}
}

// bindUDP resolves addr and binds a UDP socket to it.
func bindUDP(addr string) (*net.UDPConn, error) {
	if addr == "" {
		addr = ":0"
	}
	laddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s: %w", ErrEndpointBind, addr, err)
	}
	conn, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEndpointBind, addr, err)
	}
	return conn, nil
}

// endpoint owns a bound socket and the quic.Transport multiplexing it.
type endpoint struct {
	udp *net.UDPConn
	tr  *quic.Transport

	closeOnce sync.Once
	closeErr  error
}

func newEndpoint(addr string) (*endpoint, error) {
	udp, err := bindUDP(addr)
	if err != nil {
		return nil, err
	}
	return &endpoint{
		udp: udp,
		tr:  &quic.Transport{Conn: udp},
	}, nil
}

// Close shuts the transport down and releases the socket. quic.Transport
// leaves sockets it did not create open.
func (e *endpoint) Close() error {
	e.closeOnce.Do(func() {
		trErr := e.tr.Close()
		udpErr := e.udp.Close()
		switch {
		case trErr != nil:
			e.closeErr = fmt.Errorf("%w: %w", ErrIO, trErr)
		case udpErr != nil && !errors.Is(udpErr, net.ErrClosed):
			e.closeErr = fmt.Errorf("%w: %w", ErrIO, udpErr)
		}
	})
	return e.closeErr
}
