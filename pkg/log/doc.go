// Package log provides structured protocol event logging for mqoq.
//
// The transport core never writes logs on its own. Callers that want a
// trace inject a Logger; every endpoint, connection and stream lifecycle
// change is then reported as an Event.
//
// # Basic Usage
//
//	// Development: events to console via slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// Production: binary CBOR event file
//	cfg.Logger, _ = log.NewFileLogger("/var/log/mqoq/node.mlog")
//
//	// Both
//	cfg.Logger = log.NewMultiLogger(consoleLogger, fileLogger)
//
// # File Format
//
// Event files are a sequence of CBOR-encoded Events with integer keys.
// Reader streams them back, optionally through a Filter; the mqoq-log
// command prints them.
package log
