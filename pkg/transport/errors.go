package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/quic-go/quic-go"
)

// Transport errors.
var (
	// ErrIO wraps socket level failures that fit no other kind.
	ErrIO = errors.New("transport I/O failure")

	// ErrEndpointBind is returned when the local UDP socket cannot be bound.
	ErrEndpointBind = errors.New("endpoint bind failed")

	// ErrConnect is returned when a connection attempt fails before the
	// handshake completes for reasons other than the handshake itself.
	ErrConnect = errors.New("connect failed")

	// ErrHandshake is returned when the peer or the local side rejects the
	// TLS handshake (certificate, ALPN or version).
	ErrHandshake = errors.New("handshake failed")

	// ErrConnection is returned when an established connection fails.
	ErrConnection = errors.New("connection failed")

	// ErrConnectionBroken is returned once the connection or listener is
	// closed by either end.
	ErrConnectionBroken = errors.New("connection broken")

	// ErrStreamReset is returned when a stream direction was aborted.
	ErrStreamReset = errors.New("stream reset")
)

// isContextErr reports whether err is a context cancellation or deadline.
func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// handshakeErr classifies a failed dial.
func handshakeErr(err error) error {
	if err == nil {
		return nil
	}

	var (
		timeoutErr *quic.HandshakeTimeoutError
		idleErr    *quic.IdleTimeoutError
		versionErr *quic.VersionNegotiationError
		tErr       *quic.TransportError
		appErr     *quic.ApplicationError
	)
	switch {
	case errors.As(err, &timeoutErr), errors.As(err, &idleErr):
		return fmt.Errorf("%w: %w", ErrConnect, err)
	case errors.As(err, &versionErr):
		return fmt.Errorf("%w: %w", ErrHandshake, err)
	case errors.As(err, &tErr):
		if tErr.ErrorCode.IsCryptoError() {
			return fmt.Errorf("%w: %w", ErrHandshake, err)
		}
		return fmt.Errorf("%w: %w", ErrConnect, err)
	case errors.As(err, &appErr):
		// Closed by the application right after the handshake.
		return fmt.Errorf("%w: %w", ErrHandshake, err)
	case isContextErr(err):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrConnect, err)
	}
}

// connErr classifies an error returned by an established connection.
func connErr(err error) error {
	if err == nil {
		return nil
	}

	var (
		appErr  *quic.ApplicationError
		idleErr *quic.IdleTimeoutError
		tErr    *quic.TransportError
		sErr    *quic.StreamError
	)
	switch {
	case errors.As(err, &appErr):
		return fmt.Errorf("%w: %w", ErrConnectionBroken, err)
	case errors.As(err, &idleErr):
		return fmt.Errorf("%w: %w", ErrConnection, err)
	case errors.As(err, &tErr):
		switch {
		case tErr.ErrorCode.IsCryptoError():
			// Peer rejected our certificate after the local handshake finished.
			return fmt.Errorf("%w: %w", ErrHandshake, err)
		case tErr.ErrorCode == quic.NoError:
			return fmt.Errorf("%w: %w", ErrConnectionBroken, err)
		default:
			return fmt.Errorf("%w: %w", ErrConnection, err)
		}
	case errors.As(err, &sErr):
		return fmt.Errorf("%w: %w", ErrStreamReset, err)
	case isContextErr(err):
		return err
	case errors.Is(err, quic.ErrServerClosed), errors.Is(err, net.ErrClosed):
		return fmt.Errorf("%w: %w", ErrConnectionBroken, err)
	default:
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
}

// streamErr classifies an error returned by a stream read or write.
func streamErr(err error) error {
	if err == nil || err == io.EOF {
		return err
	}

	var nErr net.Error
	if errors.As(err, &nErr) && nErr.Timeout() && !isQUICError(err) {
		// Deadline set by the caller.
		return err
	}
	if isQUICError(err) || isContextErr(err) {
		return connErr(err)
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}

// isQUICError reports whether err carries one of quic-go's typed errors.
func isQUICError(err error) bool {
	var (
		appErr  *quic.ApplicationError
		idleErr *quic.IdleTimeoutError
		tErr    *quic.TransportError
		sErr    *quic.StreamError
	)
	return errors.As(err, &appErr) || errors.As(err, &idleErr) ||
		errors.As(err, &tErr) || errors.As(err, &sErr)
}
