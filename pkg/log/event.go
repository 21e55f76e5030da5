package log

import "time"

// Event is a protocol log event. CBOR encoding uses integer keys.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID identifies the connection (UUID). Empty for endpoint events.
	ConnectionID string `cbor:"2,keyasint,omitempty"`

	// Direction tells whether the peer (IN) or this side (OUT) initiated.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// LocalRole is the role of the endpoint that produced the event.
	LocalRole Role `cbor:"6,keyasint"`

	// LocalAddr is the bound socket address.
	LocalAddr string `cbor:"7,keyasint,omitempty"`

	// RemoteAddr is the peer address (IP:port).
	RemoteAddr string `cbor:"8,keyasint,omitempty"`

	// PeerName is the subject common name of the peer certificate.
	PeerName string `cbor:"9,keyasint,omitempty"`

	// Payload, one of these is set.
	StateChange *StateChangeEvent `cbor:"10,keyasint,omitempty"`
	Stream      *StreamEvent      `cbor:"11,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"12,keyasint,omitempty"`
}

// Direction indicates which side initiated the logged action.
type Direction uint8

const (
	// DirectionNone marks events with no initiating side, such as listener
	// state changes.
	DirectionNone Direction = 0
	// DirectionIn marks peer-initiated actions (accepted connection/stream).
	DirectionIn Direction = 1
	// DirectionOut marks locally initiated actions (connect, open stream).
	DirectionOut Direction = 2
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "-"
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which part of the transport captured the event.
type Layer uint8

const (
	// LayerEndpoint is the bound socket and listener.
	LayerEndpoint Layer = 0
	// LayerConnection is an established QUIC connection.
	LayerConnection Layer = 1
	// LayerStream is a single bidirectional stream.
	LayerStream Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerEndpoint:
		return "ENDPOINT"
	case LayerConnection:
		return "CONNECTION"
	case LayerStream:
		return "STREAM"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryState indicates a lifecycle state change.
	CategoryState Category = 0
	// CategoryStream indicates a stream being opened or accepted.
	CategoryStream Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryStream:
		return "STREAM"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Role is the role of the local endpoint.
type Role uint8

const (
	// RoleServer is a listening endpoint.
	RoleServer Role = 0
	// RoleClient is a connecting endpoint.
	RoleClient Role = 1
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleServer:
		return "SERVER"
	case RoleClient:
		return "CLIENT"
	default:
		return "UNKNOWN"
	}
}

// Well-known states reported in StateChangeEvent.
const (
	StateListening    = "LISTENING"
	StateClosed       = "CLOSED"
	StateConnected    = "CONNECTED"
	StateDisconnected = "DISCONNECTED"
)

// StateChangeEvent captures endpoint and connection lifecycle changes.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// StreamEvent captures a stream being opened or accepted.
type StreamEvent struct {
	// StreamID is the QUIC stream ID.
	StreamID int64 `cbor:"1,keyasint"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
