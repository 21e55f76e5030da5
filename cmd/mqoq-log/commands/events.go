package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mqoq/mqoq-go/pkg/log"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// eachEvent calls fn for every event left in reader.
func eachEvent(reader *log.Reader, fn func(log.Event) error) error {
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}

// eventKind names the payload an event carries and condenses it to a
// single field: the new state, the stream ID or the error message.
func eventKind(event log.Event) (kind, detail string) {
	switch {
	case event.StateChange != nil:
		return "state", event.StateChange.NewState
	case event.Stream != nil:
		return "stream", strconv.FormatInt(event.Stream.StreamID, 10)
	case event.Error != nil:
		return "error", event.Error.Message
	default:
		return "unknown", ""
	}
}
