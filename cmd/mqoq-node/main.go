// Command mqoq-node runs an mqoq transport endpoint.
//
// In server mode it accepts mutually authenticated QUIC connections and
// echoes every stream back to its sender. In client mode it connects to a
// server, opens one stream, sends stdin and prints what comes back.
//
// Usage:
//
//	mqoq-node [flags]
//
// Flags:
//
//	-mode string          Node mode: server, client (default "server")
//	-config string        Configuration file path (YAML)
//	-listen string        Server listen address (host:port)
//	-peer string          Server address to connect to (host:port)
//	-server-name string   Name expected in the server certificate
//	-cert string          Certificate chain file (PEM)
//	-key string           RSA private key file (PEM)
//	-ca string            Trusted CA file (PEM)
//	-log-level string     Log level: debug, info, warn, error
//	-protocol-log string  File path for protocol event logging (CBOR format)
//
// Examples:
//
//	# Generate development certificates
//	mqoq-certgen -out ./certs -server-name broker.local
//
//	# Start a server
//	mqoq-node -listen 127.0.0.1:14567 -cert certs/server.pem -key certs/server.key -ca certs/ca.pem
//
//	# Connect a client
//	echo hello | mqoq-node -mode client -peer 127.0.0.1:14567 -server-name broker.local \
//	    -cert certs/client.pem -key certs/client.key -ca certs/ca.pem
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mqoq/mqoq-go/pkg/cert"
	"github.com/mqoq/mqoq-go/pkg/config"
	"github.com/mqoq/mqoq-go/pkg/log"
	"github.com/mqoq/mqoq-go/pkg/transport"
)

var (
	mode        = flag.String("mode", "server", "Node mode: server, client")
	configFile  = flag.String("config", "", "Configuration file path (YAML)")
	listen      = flag.String("listen", "", "Server listen address (host:port)")
	peer        = flag.String("peer", "", "Server address to connect to (host:port)")
	serverName  = flag.String("server-name", "", "Name expected in the server certificate")
	certFile    = flag.String("cert", "", "Certificate chain file (PEM)")
	keyFile     = flag.String("key", "", "RSA private key file (PEM)")
	caFile      = flag.String("ca", "", "Trusted CA file (PEM)")
	logLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error")
	protocolLog = flag.String("protocol-log", "", "File path for protocol event logging (CBOR format)")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level)

	material, err := cert.LoadMaterial(cfg.Auth)
	if err != nil {
		logger.Error("failed to load TLS material", "error", err)
		os.Exit(1)
	}
	if material.SkippedCAs > 0 {
		logger.Warn("skipped unparseable CA certificates", "count", material.SkippedCAs)
	}
	checkExpiry(material, logger)

	protocolLogger, closeProtocolLog, err := newProtocolLogger(cfg.Log, logger)
	if err != nil {
		logger.Error("failed to create protocol logger", "error", err)
		os.Exit(1)
	}
	defer closeProtocolLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "server":
		err = runServer(ctx, cfg, material, protocolLogger, logger)
	case "client":
		err = runClient(ctx, cfg, material, protocolLogger, logger, os.Stdin, os.Stdout)
	default:
		err = fmt.Errorf("mode must be 'server' or 'client', got '%s'", *mode)
	}
	if err != nil {
		logger.Error("node stopped", "error", err)
		closeProtocolLog()
		os.Exit(1)
	}
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return nil, err
		}
	}

	if *listen != "" {
		cfg.Listen = *listen
	}
	if *peer != "" {
		cfg.Connect.Peer = *peer
	}
	if *serverName != "" {
		cfg.Connect.ServerName = *serverName
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *protocolLog != "" {
		cfg.Log.ProtocolFile = *protocolLog
	}
	if *certFile != "" || *keyFile != "" || *caFile != "" {
		auth, err := config.NewAuthMaterial(*certFile, *keyFile, *caFile)
		if err != nil {
			return nil, err
		}
		cfg.Auth = auth
	}

	if *mode == "server" && cfg.Listen == "" {
		cfg.Listen = fmt.Sprintf("0.0.0.0:%d", transport.DefaultPort)
	}
	if *mode == "client" && cfg.Connect.Peer == "" {
		return nil, fmt.Errorf("client mode requires -peer")
	}

	return cfg, cfg.Validate()
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// newProtocolLogger combines the CBOR file logger (if configured) with an
// adapter that mirrors protocol events into the debug log.
func newProtocolLogger(lc config.LogConfig, logger *slog.Logger) (log.Logger, func(), error) {
	var loggers []log.Logger
	closeFn := func() {}

	if lc.ProtocolFile != "" {
		fl, err := log.NewFileLogger(lc.ProtocolFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("protocol logging enabled", "path", lc.ProtocolFile)
		loggers = append(loggers, fl)
		closeFn = func() {
			if n := fl.Dropped(); n > 0 {
				logger.Warn("protocol events dropped", "count", n)
			}
			_ = fl.Close()
		}
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		loggers = append(loggers, log.NewSlogAdapter(logger))
	}

	if len(loggers) == 0 {
		return nil, closeFn, nil
	}
	return log.NewMultiLogger(loggers...), closeFn, nil
}

// checkExpiry warns when the local certificate is unusable or close to expiry.
func checkExpiry(m *cert.Material, logger *slog.Logger) {
	switch {
	case m.IsExpired():
		logger.Warn("local certificate is not currently valid", "notAfter", m.ExpiresAt())
	case m.NeedsRenewal():
		logger.Warn("local certificate expires soon", "notAfter", m.ExpiresAt())
	}
}
