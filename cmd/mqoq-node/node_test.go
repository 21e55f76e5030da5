package main

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqoq/mqoq-go/pkg/cert"
	"github.com/mqoq/mqoq-go/pkg/config"
	"github.com/mqoq/mqoq-go/pkg/log"
	"github.com/mqoq/mqoq-go/pkg/transport"
)

func writeIdentity(t *testing.T, dir, name string, issued *cert.Issued, caFile string) *cert.Material {
	t.Helper()
	certPath := filepath.Join(dir, name+".pem")
	keyPath := filepath.Join(dir, name+".key")
	require.NoError(t, issued.WriteFiles(certPath, keyPath))

	auth, err := config.NewAuthMaterial(certPath, keyPath, caFile)
	require.NoError(t, err)
	m, err := cert.LoadMaterial(auth)
	require.NoError(t, err)
	return m
}

func TestEchoRoundTrip(t *testing.T) {
	ca, err := cert.GenerateCA("node-test-ca")
	require.NoError(t, err)
	serverID, err := ca.Issue("broker.local", "127.0.0.1")
	require.NoError(t, err)
	clientID, err := ca.Issue("client-1")
	require.NoError(t, err)

	dir := t.TempDir()
	caFile := filepath.Join(dir, "ca.pem")
	require.NoError(t, cert.WriteCertFile(caFile, ca.Certificate))
	serverMaterial := writeIdentity(t, dir, "server", serverID, caFile)
	clientMaterial := writeIdentity(t, dir, "client", clientID, caFile)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	srv, err := transport.Listen(transport.ServerConfig{
		Material: serverMaterial,
		Address:  "127.0.0.1:0",
	})
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- serve(ctx, srv, logger) }()

	cfg := config.Default()
	cfg.Connect.Bind = "127.0.0.1:0"
	cfg.Connect.Peer = srv.Addr().String()
	cfg.Connect.ServerName = "broker.local"

	var out bytes.Buffer
	in := strings.NewReader("PINGREQ\nPUBLISH a/b hello\n")
	require.NoError(t, runClient(ctx, cfg, clientMaterial, nil, logger, in, &out))
	assert.Equal(t, "PINGREQ\nPUBLISH a/b hello\n", out.String())

	require.NoError(t, srv.Close())
	require.NoError(t, <-served)
}

func TestRunClientNoServer(t *testing.T) {
	ca, err := cert.GenerateCA("node-test-ca")
	require.NoError(t, err)
	clientID, err := ca.Issue("client-1")
	require.NoError(t, err)

	dir := t.TempDir()
	caFile := filepath.Join(dir, "ca.pem")
	require.NoError(t, cert.WriteCertFile(caFile, ca.Certificate))
	m := writeIdentity(t, dir, "client", clientID, caFile)

	cfg := config.Default()
	cfg.Connect.Bind = "127.0.0.1:0"
	cfg.Connect.Peer = "127.0.0.1:notaport"
	cfg.Connect.ServerName = "broker.local"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err = runClient(context.Background(), cfg, m, nil, logger, strings.NewReader(""), io.Discard)
	require.ErrorIs(t, err, transport.ErrConnect)
}

func TestNewProtocolLogger(t *testing.T) {
	info := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
	debug := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Run("disabled", func(t *testing.T) {
		l, closeFn, err := newProtocolLogger(config.LogConfig{}, info)
		require.NoError(t, err)
		defer closeFn()
		assert.Nil(t, l)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "node.cbor")
		l, closeFn, err := newProtocolLogger(config.LogConfig{ProtocolFile: path}, debug)
		require.NoError(t, err)
		require.NotNil(t, l)

		l.Log(log.Event{Timestamp: time.Now(), StateChange: &log.StateChangeEvent{NewState: log.StateListening}})
		closeFn()

		r, err := log.NewReader(path)
		require.NoError(t, err)
		defer r.Close()
		ev, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, log.StateListening, ev.StateChange.NewState)
	})
}

func TestNewLoggerLevels(t *testing.T) {
	ctx := context.Background()
	assert.True(t, newLogger("debug").Enabled(ctx, slog.LevelDebug))
	assert.False(t, newLogger("info").Enabled(ctx, slog.LevelDebug))
	assert.False(t, newLogger("warn").Enabled(ctx, slog.LevelInfo))
	assert.False(t, newLogger("error").Enabled(ctx, slog.LevelWarn))
	assert.True(t, newLogger("").Enabled(ctx, slog.LevelInfo))
}

func TestCheckExpiry(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		notAfter time.Time
		want     string
	}{
		{"valid", now.Add(365 * 24 * time.Hour), ""},
		{"expiring", now.Add(24 * time.Hour), "expires soon"},
		{"expired", now.Add(-time.Hour), "not currently valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			m := &cert.Material{Certificate: tls.Certificate{
				Leaf: &x509.Certificate{NotBefore: now.Add(-48 * time.Hour), NotAfter: tt.notAfter},
			}}

			checkExpiry(m, logger)
			if tt.want == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.want)
			}
		})
	}
}

type acceptFunc func(ctx context.Context) (*transport.Conn, error)

func (f acceptFunc) Accept(ctx context.Context) (*transport.Conn, error) { return f(ctx) }

func TestServeStopsOnListenerFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	calls := 0
	failing := acceptFunc(func(context.Context) (*transport.Conn, error) {
		calls++
		return nil, fmt.Errorf("%w: socket gone", transport.ErrConnection)
	})

	err := serve(context.Background(), failing, logger)
	require.ErrorIs(t, err, transport.ErrConnection)
	assert.Equal(t, 1, calls)
}

func TestServeStopsOnClose(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	closed := acceptFunc(func(context.Context) (*transport.Conn, error) {
		return nil, transport.ErrConnectionBroken
	})

	assert.NoError(t, serve(context.Background(), closed, logger))
}
