package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mqoq/mqoq-go/pkg/cert"
	"github.com/mqoq/mqoq-go/pkg/config"
	"github.com/mqoq/mqoq-go/pkg/log"
	"github.com/mqoq/mqoq-go/pkg/transport"
)

// runClient sends in over one stream and copies the reply to out.
func runClient(ctx context.Context, cfg *config.Config, m *cert.Material, protocol log.Logger, logger *slog.Logger, in io.Reader, out io.Writer) error {
	conn, err := transport.Connect(ctx, transport.ClientConfig{
		Material:    m,
		BindAddress: cfg.Connect.Bind,
		PeerAddress: cfg.Connect.Peer,
		ServerName:  cfg.Connect.ServerName,
		Transport:   cfg.Transport,
		Logger:      protocol,
	})
	if err != nil {
		return err
	}
	defer conn.Close()

	logger.Info("connected", "conn", conn.ID(), "remote", conn.RemoteAddr().String(), "peer", conn.PeerName())

	st, err := conn.OpenStream(ctx)
	if err != nil {
		return err
	}

	replied := make(chan error, 1)
	go func() {
		_, err := io.Copy(out, st.Recv())
		replied <- err
	}()

	if _, err := io.Copy(st.Send(), in); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	if err := st.CloseWrite(); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	select {
	case err := <-replied:
		if err != nil {
			return fmt.Errorf("receive: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
