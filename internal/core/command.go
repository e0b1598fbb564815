package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoin subscribes the client to a room and adds a participant.
	CommandJoin CommandKind = iota
	// CommandLeave unsubscribes the client and removes the participant.
	CommandLeave
	// CommandCreateRoom registers a new room.
	CommandCreateRoom
	// CommandAudio relays an audio blob to the rest of the room.
	CommandAudio
	// CommandText relays a text message to the whole room.
	CommandText
	// CommandKick removes a participant on behalf of the room creator.
	CommandKick
)

func (k CommandKind) String() string {
	switch k {
	case CommandJoin:
		return "join"
	case CommandLeave:
		return "leave"
	case CommandCreateRoom:
		return "createRoom"
	case CommandAudio:
		return "audio"
	case CommandText:
		return "textMessage"
	case CommandKick:
		return "kickParticipant"
	default:
		return "unknown"
	}
}

// Command represents an action requested by a client.
// Which fields are read depends on Kind.
type Command struct {
	Kind CommandKind
	Room string

	// join
	User       Participant
	Password   string
	InviteCode string

	// leave
	UserID string

	// createRoom
	NewRoom RoomSpec

	// audio, textMessage
	Audio AudioMessage
	Text  TextMessage

	// kickParticipant
	TargetUserID string
	ByUserID     string
}
