package core

// SessionState is where a connection is in its lifecycle.
type SessionState int

const (
	// StateUnbound: connected, subscribed to no room.
	StateUnbound SessionState = iota
	// StateBound: joined at least one room.
	StateBound
	// StateClosed: disconnected; the client is unusable.
	StateClosed
)

func (s SessionState) String() string {
	switch s {
	case StateUnbound:
		return "unbound"
	case StateBound:
		return "bound"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

const defaultEventBuffer = 64

// Client is one transport connection as seen by the core layer.
// Commands is written by the transport; Events is closed by the hub when
// the client is unregistered or the hub stops.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event

	// rooms maps joined room IDs to the user ID used for the join.
	// Owned by the hub goroutine.
	rooms  map[string]string
	state  SessionState
	closed chan struct{}
}

// NewClient constructs a client with initialized channels.
func NewClient(id string, buffer int) *Client {
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, buffer),
		rooms:    make(map[string]string),
		closed:   make(chan struct{}),
	}
}

func (c *Client) bind(roomID, userID string) {
	c.rooms[roomID] = userID
	c.state = StateBound
}

// unbind forgets roomID and returns the user ID it was joined as.
func (c *Client) unbind(roomID string) (string, bool) {
	userID, ok := c.rooms[roomID]
	if !ok {
		return "", false
	}
	delete(c.rooms, roomID)
	if len(c.rooms) == 0 && c.state == StateBound {
		c.state = StateUnbound
	}
	return userID, true
}

// actsAs reports whether the client is joined anywhere as userID.
func (c *Client) actsAs(userID string) bool {
	for _, uid := range c.rooms {
		if uid == userID {
			return true
		}
	}
	return false
}

func (c *Client) close() {
	if c.state == StateClosed {
		return
	}
	c.state = StateClosed
	c.rooms = make(map[string]string)
	close(c.closed)
	close(c.Events)
}
