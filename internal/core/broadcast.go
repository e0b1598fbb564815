package core

import (
	"github.com/rs/zerolog"

	"github.com/vovakirdan/roomrelay/internal/metrics"
)

// broadcaster implements the fan-out modes. Sends never block: a full
// client buffer drops the event for that client.
type broadcaster struct {
	clients map[string]*Client
	log     *zerolog.Logger
}

// Global sends to every registered client.
func (b *broadcaster) Global(ev *Event) int {
	n := 0
	for _, c := range b.clients {
		if b.send(c, ev) {
			n++
		}
	}
	return n
}

// Room sends to every client subscribed to room, the actor included.
func (b *broadcaster) Room(room *Room, ev *Event) int {
	return b.RoomExcept(room, nil, ev)
}

// RoomExcept sends to every client subscribed to room except skip.
func (b *broadcaster) RoomExcept(room *Room, skip *Client, ev *Event) int {
	n := 0
	for c := range room.clients {
		if c == skip {
			continue
		}
		if b.send(c, ev) {
			n++
		}
	}
	return n
}

// To sends to exactly one client.
func (b *broadcaster) To(c *Client, ev *Event) bool {
	return b.send(c, ev)
}

func (b *broadcaster) send(c *Client, ev *Event) bool {
	if c == nil || c.state == StateClosed {
		return false
	}
	select {
	case c.Events <- ev:
		return true
	default:
		metrics.DroppedEvents.Inc()
		b.log.Warn().Str("client_id", c.ID).Str("event", ev.Kind.String()).Msg("client buffer full, event dropped")
		return false
	}
}
