package core

import (
	"encoding/json"
	"time"
)

// AudioMessage is a relayed audio blob. Blob and Sender are opaque JSON
// values passed through untouched.
type AudioMessage struct {
	ID     string
	Room   string
	Sender json.RawMessage
	Blob   json.RawMessage
	SentAt time.Time
}

// TextMessage is a relayed text event. Fields holds the client's payload
// object as received.
type TextMessage struct {
	ID     string
	Room   string
	Fields json.RawMessage
	SentAt time.Time
}

// Size returns the payload size used for relay accounting.
func (m AudioMessage) Size() int {
	return len(m.Blob)
}

// Size returns the payload size used for relay accounting.
func (m TextMessage) Size() int {
	return len(m.Fields)
}
