package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mqoq/mqoq-go/pkg/log"
)

func TestFormatStateEvent(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	event := log.Event{
		Timestamp:    ts,
		ConnectionID: "abc12345-6789-0123-4567-890abcdef012",
		Direction:    log.DirectionIn,
		Layer:        log.LayerConnection,
		Category:     log.CategoryState,
		LocalRole:    log.RoleServer,
		RemoteAddr:   "127.0.0.1:50000",
		PeerName:     "client-1",
		StateChange: &log.StateChangeEvent{
			NewState: log.StateConnected,
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	for _, want := range []string{
		"2026-01-28T10:15:32.123456Z",
		"[conn:abc12345]",
		"IN",
		"SERVER",
		"CONNECTION",
		"State",
		"Peer: 127.0.0.1:50000 (client-1)",
		"-> CONNECTED",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestFormatStateEventWithReason(t *testing.T) {
	event := log.Event{
		Timestamp:    time.Now(),
		ConnectionID: "conn-1",
		Layer:        log.LayerConnection,
		Category:     log.CategoryState,
		StateChange: &log.StateChangeEvent{
			OldState: log.StateConnected,
			NewState: log.StateDisconnected,
			Reason:   "peer closed",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "CONNECTED -> DISCONNECTED") {
		t.Errorf("expected transition, got: %s", output)
	}
	if !strings.Contains(output, "Reason: peer closed") {
		t.Errorf("expected reason, got: %s", output)
	}
}

func TestFormatStreamEvent(t *testing.T) {
	event := log.Event{
		Timestamp:    time.Now(),
		ConnectionID: "conn-1",
		Direction:    log.DirectionOut,
		Layer:        log.LayerStream,
		Category:     log.CategoryStream,
		LocalRole:    log.RoleClient,
		Stream:       &log.StreamEvent{StreamID: 4},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "OUT CLIENT STREAM Stream") {
		t.Errorf("unexpected header: %s", output)
	}
	if !strings.Contains(output, "StreamID: 4") {
		t.Errorf("expected stream ID, got: %s", output)
	}
}

func TestFormatErrorEvent(t *testing.T) {
	event := log.Event{
		Timestamp: time.Now(),
		Layer:     log.LayerEndpoint,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Layer:   log.LayerConnection,
			Message: "ALPN protocol \"h3\" is not one of [\"mqtt\"]",
			Context: "post-handshake verification",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "[conn:-]") {
		t.Errorf("expected placeholder connection ID, got: %s", output)
	}
	if !strings.Contains(output, "Context: post-handshake verification") {
		t.Errorf("expected context, got: %s", output)
	}
}

func TestParseFlags(t *testing.T) {
	if l, err := ParseLayerFlag("Stream"); err != nil || l != log.LayerStream {
		t.Errorf("ParseLayerFlag(Stream) = %v, %v", l, err)
	}
	if _, err := ParseLayerFlag("wire"); err == nil {
		t.Error("expected error for unknown layer")
	}
	if d, err := ParseDirectionFlag("OUT"); err != nil || d != log.DirectionOut {
		t.Errorf("ParseDirectionFlag(OUT) = %v, %v", d, err)
	}
	if c, err := ParseCategoryFlag("error"); err != nil || c != log.CategoryError {
		t.Errorf("ParseCategoryFlag(error) = %v, %v", c, err)
	}
	if r, err := ParseRoleFlag("client"); err != nil || r != log.RoleClient {
		t.Errorf("ParseRoleFlag(client) = %v, %v", r, err)
	}
	if _, err := ParseRoleFlag("broker"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestRunViewFiltered(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, ConnectionID: "conn-1", Layer: log.LayerConnection, Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{NewState: log.StateConnected}},
		{Timestamp: ts, ConnectionID: "conn-1", Layer: log.LayerStream, Category: log.CategoryStream,
			Stream: &log.StreamEvent{StreamID: 0}},
	}
	path := createTestLogFile(t, events)

	layer := log.LayerStream
	var buf bytes.Buffer
	if err := RunView(path, log.Filter{Layer: &layer}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "CONNECTED") {
		t.Errorf("state event should be filtered out: %s", output)
	}
	if !strings.Contains(output, "StreamID: 0") {
		t.Errorf("expected stream event: %s", output)
	}
}
