package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRooms delivers the summary of every room.
	EventRooms EventKind = iota
	// EventParticipants delivers one room's participant list.
	EventParticipants
	// EventHistory delivers retained audio to a client upon joining a room.
	EventHistory
	// EventAudio relays an audio message.
	EventAudio
	// EventText relays a text message.
	EventText
	// EventJoinError tells a client its join was refused.
	EventJoinError
	// EventKicked tells a client it was removed from a room.
	EventKicked
)

func (k EventKind) String() string {
	switch k {
	case EventRooms:
		return "rooms"
	case EventParticipants:
		return "participants"
	case EventHistory:
		return "history"
	case EventAudio:
		return "audio"
	case EventText:
		return "textMessage"
	case EventJoinError:
		return "join_error"
	case EventKicked:
		return "kicked"
	default:
		return "unknown"
	}
}

// Event is sent to clients to describe what happened in the system.
// One Event value may be shared by many recipients and must not be mutated.
type Event struct {
	Kind         EventKind
	Room         string
	Rooms        []RoomSummary
	Participants []Participant
	History      []AudioMessage
	Audio        *AudioMessage
	Text         *TextMessage
	Error        *CoreError
}
