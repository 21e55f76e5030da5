package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultALPN is the application protocol negotiated when none is configured.
const DefaultALPN = "mqtt"

// Configuration errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is the root configuration of an mqoq node.
type Config struct {
	// Listen is the server bind address (host:port). Empty disables the server.
	Listen string

	// Connect holds the client side addresses.
	Connect ConnectConfig

	// Auth is the mutual-TLS material. Nil means no authentication configured.
	Auth *AuthMaterial

	// Transport holds QUIC tuning. Zero values select quic-go defaults.
	Transport TransportConfig

	// Log configures operational and protocol logging.
	Log LogConfig
}

// ConnectConfig holds the addresses used by the client side.
type ConnectConfig struct {
	// Bind is the local address for the client socket (e.g. "0.0.0.0:0").
	Bind string `yaml:"bind"`

	// Peer is the remote server address (host:port).
	Peer string `yaml:"peer"`

	// ServerName is the identity expected in the server certificate.
	ServerName string `yaml:"server_name"`
}

// TransportConfig carries the QUIC engine knobs exposed by this module.
type TransportConfig struct {
	// ALPN lists the application protocols offered during the handshake.
	ALPN []string `yaml:"alpn"`

	// HandshakeIdleTimeout bounds the handshake when the peer is silent.
	HandshakeIdleTimeout time.Duration `yaml:"handshake_idle_timeout"`

	// MaxIdleTimeout closes connections without network activity.
	MaxIdleTimeout time.Duration `yaml:"max_idle_timeout"`

	// KeepAlivePeriod sends keep-alive packets; 0 disables them.
	KeepAlivePeriod time.Duration `yaml:"keep_alive_period"`

	// MaxIncomingStreams limits concurrent peer-initiated bidirectional streams.
	MaxIncomingStreams int64 `yaml:"max_incoming_streams"`
}

// Protocols returns the configured ALPN list or the default.
func (t TransportConfig) Protocols() []string {
	if len(t.ALPN) == 0 {
		return []string{DefaultALPN}
	}
	return t.ALPN
}

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error.
	Level string `yaml:"level"`

	// ProtocolFile is an optional CBOR protocol event log path.
	ProtocolFile string `yaml:"protocol_file"`
}

// fileConfig is the YAML shape of Config.
type fileConfig struct {
	Listen    string          `yaml:"listen"`
	Connect   ConnectConfig   `yaml:"connect"`
	Auth      *authFile       `yaml:"auth"`
	Transport TransportConfig `yaml:"transport"`
	Log       LogConfig       `yaml:"log"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Connect: ConnectConfig{
			Bind: "0.0.0.0:0",
		},
		Transport: TransportConfig{
			ALPN:                 []string{DefaultALPN},
			HandshakeIdleTimeout: 5 * time.Second,
			MaxIdleTimeout:       30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML configuration on top of Default.
func Parse(data []byte) (*Config, error) {
	def := Default()
	fc := fileConfig{
		Listen:    def.Listen,
		Connect:   def.Connect,
		Transport: def.Transport,
		Log:       def.Log,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	auth, err := fc.Auth.material()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Listen:    fc.Listen,
		Connect:   fc.Connect,
		Auth:      auth,
		Transport: fc.Transport,
		Log:       fc.Log,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks address syntax and transport limits.
func (c *Config) Validate() error {
	if c.Listen != "" {
		if err := validateHostPort(c.Listen); err != nil {
			return fmt.Errorf("%w: listen: %v", ErrInvalidConfig, err)
		}
	}
	if c.Connect.Peer != "" {
		if err := validateHostPort(c.Connect.Peer); err != nil {
			return fmt.Errorf("%w: connect.peer: %v", ErrInvalidConfig, err)
		}
		if c.Connect.ServerName == "" {
			return fmt.Errorf("%w: connect.server_name is required with connect.peer", ErrInvalidConfig)
		}
	}
	if c.Connect.Bind != "" {
		if err := validateHostPort(c.Connect.Bind); err != nil {
			return fmt.Errorf("%w: connect.bind: %v", ErrInvalidConfig, err)
		}
	}
	if c.Transport.MaxIncomingStreams < 0 {
		return fmt.Errorf("%w: transport.max_incoming_streams must not be negative", ErrInvalidConfig)
	}
	if c.Transport.HandshakeIdleTimeout < 0 || c.Transport.MaxIdleTimeout < 0 || c.Transport.KeepAlivePeriod < 0 {
		return fmt.Errorf("%w: transport timeouts must not be negative", ErrInvalidConfig)
	}
	return nil
}

func validateHostPort(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	if port == "" {
		return fmt.Errorf("missing port in %q", addr)
	}
	return nil
}
