package core

// Room groups participants and the connections subscribed to its
// multicast group. Only the hub goroutine touches a Room.
type Room struct {
	ID         string
	Name       string
	CreatedBy  string
	CreatedAt  string
	InviteLink string

	passwordHash string
	inviteCode   string
	// creatorConn is the connection that sent createRoom.
	creatorConn string

	Participants Participants
	Messages     *MessageStore

	clients map[*Client]struct{}
}

// NewRoom constructs a room with no clients.
func NewRoom(id, name string, retention Retention) *Room {
	return &Room{
		ID:       id,
		Name:     name,
		Messages: NewMessageStore(retention),
		clients:  make(map[*Client]struct{}),
	}
}

// HasPassword reports whether the room is password protected.
func (r *Room) HasPassword() bool { return r.passwordHash != "" }

// HasInviteCode reports whether the room accepts an invite code.
func (r *Room) HasInviteCode() bool { return r.inviteCode != "" }

// Gated reports whether joining requires a secret.
func (r *Room) Gated() bool { return r.HasPassword() || r.HasInviteCode() }

// AddClient subscribes a client to the room group. Returns true if newly added.
func (r *Room) AddClient(c *Client) bool {
	if _, exists := r.clients[c]; exists {
		return false
	}
	r.clients[c] = struct{}{}
	return true
}

// RemoveClient unsubscribes a client. Returns true if removed.
func (r *Room) RemoveClient(c *Client) bool {
	if _, exists := r.clients[c]; !exists {
		return false
	}
	delete(r.clients, c)
	return true
}

// HasClient reports whether c is subscribed to the room group.
func (r *Room) HasClient(c *Client) bool {
	_, ok := r.clients[c]
	return ok
}

// Summary describes the room without exposing its secrets.
func (r *Room) Summary() RoomSummary {
	return RoomSummary{
		ID:            r.ID,
		Name:          r.Name,
		Participants:  r.Participants.List(),
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		HasPassword:   r.HasPassword(),
		HasInviteCode: r.HasInviteCode(),
		InviteLink:    r.InviteLink,
	}
}

// RoomSummary is the public view of a room.
type RoomSummary struct {
	ID            string
	Name          string
	Participants  []Participant
	CreatedBy     string
	CreatedAt     string
	HasPassword   bool
	HasInviteCode bool
	InviteLink    string
}
