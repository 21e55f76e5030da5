package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthMaterial(t *testing.T) {
	auth, err := NewAuthMaterial("c.pem", "k.pem", "ca.pem")
	require.NoError(t, err)
	assert.Equal(t, "c.pem", auth.CertFile())
	assert.Equal(t, "k.pem", auth.KeyFile())
	assert.Equal(t, "ca.pem", auth.CACertFile())
}

func TestNewAuthMaterialRequiresAllPaths(t *testing.T) {
	tests := []struct {
		name          string
		cert, key, ca string
	}{
		{"missing cert", "", "k.pem", "ca.pem"},
		{"missing key", "c.pem", "", "ca.pem"},
		{"missing ca", "c.pem", "k.pem", ""},
		{"all missing", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, err := NewAuthMaterial(tt.cert, tt.key, tt.ca)
			assert.ErrorIs(t, err, ErrPartialAuth)
			assert.Nil(t, auth)
		})
	}
}

func TestAuthMaterialStringNil(t *testing.T) {
	var auth *AuthMaterial
	assert.Equal(t, "auth(none)", auth.String())
}

func TestParseFull(t *testing.T) {
	data := []byte(`
listen: "127.0.0.1:4433"
connect:
  bind: "127.0.0.1:0"
  peer: "127.0.0.1:4433"
  server_name: "broker.local"
auth:
  cert_file: /etc/mqoq/client.pem
  key_file: /etc/mqoq/client.key
  ca_cert_file: /etc/mqoq/ca.pem
transport:
  alpn: ["mqtt", "mqtt-5"]
  handshake_idle_timeout: 2s
  max_idle_timeout: 1m
  keep_alive_period: 10s
  max_incoming_streams: 64
log:
  level: debug
  protocol_file: /tmp/node.mlog
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:4433", cfg.Listen)
	assert.Equal(t, "broker.local", cfg.Connect.ServerName)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "/etc/mqoq/client.key", cfg.Auth.KeyFile())
	assert.Equal(t, []string{"mqtt", "mqtt-5"}, cfg.Transport.Protocols())
	assert.Equal(t, 2*time.Second, cfg.Transport.HandshakeIdleTimeout)
	assert.Equal(t, time.Minute, cfg.Transport.MaxIdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Transport.KeepAlivePeriod)
	assert.Equal(t, int64(64), cfg.Transport.MaxIncomingStreams)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/node.mlog", cfg.Log.ProtocolFile)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`listen: ":4433"`))
	require.NoError(t, err)

	assert.Nil(t, cfg.Auth, "absent auth section means no authentication")
	assert.Equal(t, []string{DefaultALPN}, cfg.Transport.Protocols())
	assert.Equal(t, 5*time.Second, cfg.Transport.HandshakeIdleTimeout)
	assert.Equal(t, "0.0.0.0:0", cfg.Connect.Bind)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParsePartialAuth(t *testing.T) {
	data := []byte(`
auth:
  cert_file: client.pem
  ca_cert_file: ca.pem
`)
	_, err := Parse(data)
	assert.ErrorIs(t, err, ErrPartialAuth)
}

func TestParseEmptyAuthSection(t *testing.T) {
	cfg, err := Parse([]byte("auth: {}\n"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Auth)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "listen: [unclosed"},
		{"listen without port", `listen: "127.0.0.1"`},
		{"peer without server name", "connect:\n  peer: \"127.0.0.1:4433\"\n"},
		{"negative streams", "transport:\n  max_incoming_streams: -1\n"},
		{"negative timeout", "transport:\n  max_idle_timeout: -1s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \"127.0.0.1:0\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", cfg.Listen)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
