package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mqoq/mqoq-go/pkg/cert"
	"github.com/mqoq/mqoq-go/pkg/config"
	"github.com/mqoq/mqoq-go/pkg/log"
	"github.com/mqoq/mqoq-go/pkg/transport"
)

func runServer(ctx context.Context, cfg *config.Config, m *cert.Material, protocol log.Logger, logger *slog.Logger) error {
	srv, err := transport.Listen(transport.ServerConfig{
		Material:  m,
		Address:   cfg.Listen,
		Transport: cfg.Transport,
		Logger:    protocol,
	})
	if err != nil {
		return err
	}
	logger.Info("listening", "addr", srv.Addr().String(), "alpn", cfg.Transport.Protocols())

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	return serve(ctx, srv, logger)
}

// acceptor is the part of transport.Server that serve drives.
type acceptor interface {
	Accept(ctx context.Context) (*transport.Conn, error)
}

// serve accepts connections until ctx ends or the server is closed and
// echoes every stream of every connection. Rejected peers never reach
// serve, so any other Accept error means the listener is unusable.
func serve(ctx context.Context, srv acceptor, logger *slog.Logger) error {
	for {
		conn, err := srv.Accept(ctx)
		switch {
		case err == nil:
		case ctx.Err() != nil, errors.Is(err, transport.ErrConnectionBroken):
			logger.Info("server stopped")
			return nil
		default:
			logger.Error("accept failed", "error", err)
			return fmt.Errorf("accept: %w", err)
		}

		attrs := []any{"conn", conn.ID(), "remote", conn.RemoteAddr().String(), "peer", conn.PeerName()}
		if peers := conn.PeerCertificates(); len(peers) > 0 {
			info := cert.GetCertificateInfo(peers[0])
			attrs = append(attrs, "issuer", info.Issuer, "notAfter", info.NotAfter)
		}
		logger.Info("connection accepted", attrs...)
		go handleConn(ctx, conn, logger)
	}
}

func handleConn(ctx context.Context, conn *transport.Conn, logger *slog.Logger) {
	defer conn.Close()

	for {
		st, err := conn.AcceptStream(ctx)
		if err != nil {
			logger.Info("connection ended", "conn", conn.ID(), "reason", err)
			return
		}
		go echo(st, logger)
	}
}

func echo(st *transport.Stream, logger *slog.Logger) {
	n, err := io.Copy(st.Send(), st.Recv())
	if err != nil {
		logger.Debug("stream aborted", "stream", st.ID(), "error", err)
		st.Reset(1)
		return
	}
	if err := st.CloseWrite(); err != nil {
		logger.Debug("stream close failed", "stream", st.ID(), "error", err)
	}
	logger.Debug("stream echoed", "stream", st.ID(), "bytes", n)
}
