package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"net"
	"sync"
	"testing"

	"github.com/quic-go/quic-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mqoq/mqoq-go/pkg/log"
	"github.com/mqoq/mqoq-go/pkg/transport/mocks"
)

// recordLogger keeps every event it receives.
type recordLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recordLogger) Log(event log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordLogger) states() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var states []string
	for _, ev := range r.events {
		if ev.StateChange != nil {
			states = append(states, ev.StateChange.NewState)
		}
	}
	return states
}

func newMockConn(t *testing.T, peerName string) *mocks.MockQUICConnection {
	t.Helper()

	qc := mocks.NewMockQUICConnection(t)
	state := quic.ConnectionState{
		TLS: tls.ConnectionState{
			Version:            tls.VersionTLS13,
			NegotiatedProtocol: "mqtt",
			PeerCertificates: []*x509.Certificate{
				{Subject: pkix.Name{CommonName: peerName}},
			},
		},
	}
	qc.EXPECT().ConnectionState().Return(state).Maybe()
	qc.EXPECT().LocalAddr().Return(&net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 14567}).Maybe()
	qc.EXPECT().RemoteAddr().Return(&net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 50000}).Maybe()
	return qc
}

func TestConnAccessors(t *testing.T) {
	qc := newMockConn(t, "client-1")
	c := newConn(qc, log.RoleServer, nil)

	assert.NotEmpty(t, c.ID())
	assert.Equal(t, "client-1", c.PeerName())
	assert.Equal(t, log.RoleServer, c.Role())
	assert.Len(t, c.PeerCertificates(), 1)
	assert.Equal(t, uint16(tls.VersionTLS13), c.TLSState().Version)
	assert.Equal(t, "127.0.0.1:14567", c.LocalAddr().String())
	assert.Equal(t, "127.0.0.1:50000", c.RemoteAddr().String())

	other := newConn(qc, log.RoleServer, nil)
	assert.NotEqual(t, c.ID(), other.ID())
}

func TestConnAcceptStreamPeerClosed(t *testing.T) {
	qc := newMockConn(t, "client-1")
	qc.EXPECT().AcceptStream(mock.Anything).
		Return(nil, &quic.ApplicationError{Remote: true, ErrorCode: 0})

	logger := &recordLogger{}
	c := newConn(qc, log.RoleServer, logger)

	s, err := c.AcceptStream(context.Background())
	assert.Nil(t, s)
	require.ErrorIs(t, err, ErrConnectionBroken)
	assert.Equal(t, []string{log.StateDisconnected}, logger.states())

	// A second failure does not log the transition twice.
	qc.EXPECT().OpenStreamSync(mock.Anything).
		Return(nil, &quic.ApplicationError{Remote: true, ErrorCode: 0})
	_, err = c.OpenStream(context.Background())
	require.ErrorIs(t, err, ErrConnectionBroken)
	assert.Equal(t, []string{log.StateDisconnected}, logger.states())
}

func TestConnOpenStreamCanceled(t *testing.T) {
	qc := newMockConn(t, "client-1")
	qc.EXPECT().OpenStreamSync(mock.Anything).Return(nil, context.Canceled)

	logger := &recordLogger{}
	c := newConn(qc, log.RoleClient, logger)

	_, err := c.OpenStream(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrConnectionBroken)
	assert.Empty(t, logger.states(), "cancellation must not mark the connection down")
}

func TestConnIdleTimeout(t *testing.T) {
	qc := newMockConn(t, "client-1")
	qc.EXPECT().AcceptStream(mock.Anything).Return(nil, &quic.IdleTimeoutError{})

	c := newConn(qc, log.RoleClient, nil)
	_, err := c.AcceptStream(context.Background())
	require.ErrorIs(t, err, ErrConnection)
}

func TestConnCloseIdempotent(t *testing.T) {
	qc := newMockConn(t, "client-1")
	qc.EXPECT().CloseWithError(CloseCodeNormal, "").Return(nil).Once()

	logger := &recordLogger{}
	c := newConn(qc, log.RoleClient, logger)

	released := 0
	c.release = func() error {
		released++
		return nil
	}

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, released)
	assert.Equal(t, []string{log.StateDisconnected}, logger.states())
}

func TestConnWatchReleasesOnPeerClose(t *testing.T) {
	qc := newMockConn(t, "broker.local")
	ctx, cancel := context.WithCancelCause(context.Background())
	qc.EXPECT().Context().Return(ctx)

	c := newConn(qc, log.RoleClient, nil)
	released := make(chan struct{})
	c.release = func() error {
		close(released)
		return nil
	}

	done := make(chan struct{})
	go func() {
		c.watch()
		close(done)
	}()

	cancel(&quic.ApplicationError{Remote: true})
	<-done

	select {
	case <-released:
	default:
		t.Fatal("release was not called")
	}
}

func TestConnDone(t *testing.T) {
	qc := newMockConn(t, "client-1")
	ctx, cancel := context.WithCancel(context.Background())
	qc.EXPECT().Context().Return(ctx)

	c := newConn(qc, log.RoleClient, nil)
	done := c.Done()

	select {
	case <-done:
		t.Fatal("Done closed early")
	default:
	}
	cancel()
	<-done
}

func TestConnStateDirectionFollowsRole(t *testing.T) {
	tests := []struct {
		role log.Role
		want log.Direction
	}{
		{log.RoleClient, log.DirectionOut},
		{log.RoleServer, log.DirectionIn},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			qc := newMockConn(t, "peer")
			qc.EXPECT().CloseWithError(CloseCodeNormal, "").Return(nil)

			logger := &recordLogger{}
			c := newConn(qc, tt.role, logger)
			c.logState("", log.StateConnected, "")
			require.NoError(t, c.Close())

			require.Len(t, logger.events, 2)
			for _, ev := range logger.events {
				assert.Equal(t, tt.want, ev.Direction, ev.StateChange.NewState)
			}
		})
	}
}
