package transport

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/quic-go/quic-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mqoq/mqoq-go/pkg/cert"
	"github.com/mqoq/mqoq-go/pkg/config"
	"github.com/mqoq/mqoq-go/pkg/log"
	"github.com/mqoq/mqoq-go/pkg/transport/mocks"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func newMockServer(t *testing.T, logger log.Logger) (*Server, *mocks.MockQUICListener, *int) {
	t.Helper()

	ln := mocks.NewMockQUICListener(t)
	ln.EXPECT().Addr().Return(&net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 14567}).Maybe()

	closed := new(int)
	ep := closerFunc(func() error {
		*closed++
		return nil
	})
	return newServer(ServerConfig{Logger: logger}, ln, ep), ln, closed
}

func TestServerAcceptAfterClose(t *testing.T) {
	logger := &recordLogger{}
	s, ln, closed := newMockServer(t, logger)
	ln.EXPECT().Close().Return(nil).Once()
	ln.EXPECT().Accept(mock.Anything).Return(nil, quic.ErrServerClosed)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, *closed)

	_, err := s.Accept(context.Background())
	require.ErrorIs(t, err, ErrConnectionBroken)
	assert.Equal(t, []string{log.StateClosed}, logger.states())
}

func TestServerAcceptCanceled(t *testing.T) {
	s, ln, _ := newMockServer(t, nil)
	ln.EXPECT().Accept(mock.Anything).Return(nil, context.Canceled)

	_, err := s.Accept(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrConnectionBroken)
}

func TestServerAcceptUnexpectedError(t *testing.T) {
	s, ln, _ := newMockServer(t, nil)
	ln.EXPECT().Accept(mock.Anything).Return(nil, errors.New("socket gone"))

	_, err := s.Accept(context.Background())
	require.ErrorIs(t, err, ErrConnection)
}

func TestServerAddr(t *testing.T) {
	s, _, _ := newMockServer(t, nil)
	assert.Equal(t, "127.0.0.1:14567", s.Addr().String())
}

func TestListenRequiresMaterial(t *testing.T) {
	_, err := Listen(ServerConfig{Address: "127.0.0.1:0"})
	require.ErrorIs(t, err, cert.ErrNoAuthMaterial)
	require.ErrorIs(t, err, cert.ErrTLSMaterial)
}

func TestConnectRequiresMaterial(t *testing.T) {
	_, err := Connect(context.Background(), ClientConfig{PeerAddress: "127.0.0.1:14567", ServerName: "broker.local"})
	require.ErrorIs(t, err, cert.ErrTLSMaterial)
}

func TestQUICConfig(t *testing.T) {
	qc := quicConfig(config.TransportConfig{
		HandshakeIdleTimeout: 3e9,
		MaxIncomingStreams:   16,
	})
	assert.Equal(t, int64(3e9), int64(qc.HandshakeIdleTimeout))
	assert.Equal(t, int64(16), qc.MaxIncomingStreams)
	assert.Zero(t, qc.MaxIdleTimeout)
	assert.Negative(t, qc.MaxIncomingUniStreams)
}
