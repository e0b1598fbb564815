package core

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/roomrelay/internal/metrics"
)

// Options tune a Hub.
type Options struct {
	Retention     Retention
	InviteBaseURL string
	// Now is the clock used for message timestamps; defaults to time.Now.
	Now func() time.Time
}

type requestOp int

const (
	opRegister requestOp = iota
	opUnregister
	opCommand
	opQuery
)

type request struct {
	op     requestOp
	client *Client
	cmd    *Command
	reply  chan []RoomSummary
}

// Hub is the single owner of all room state. Every registration, command
// and query passes through one inbox and is handled to completion before
// the next, so rooms and clients need no locking.
type Hub struct {
	rooms   *Registry
	clients map[string]*Client
	// users indexes the connection each user ID last joined from.
	users map[string]*Client
	out   *broadcaster

	inbox chan request
	done  chan struct{}
	now   func() time.Time
	log   *zerolog.Logger
}

// NewHub creates a hub whose registry holds only the default room.
func NewHub(opts Options, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if opts.Retention == (Retention{}) {
		opts.Retention = DefaultRetention()
	}

	clients := make(map[string]*Client)
	h := &Hub{
		rooms:   NewRegistry(opts.Retention, opts.InviteBaseURL, now),
		clients: clients,
		users:   make(map[string]*Client),
		out:     &broadcaster{clients: clients, log: logger},
		inbox:   make(chan request, 256),
		done:    make(chan struct{}),
		now:     now,
		log:     logger,
	}
	metrics.RoomsActive.Set(float64(h.rooms.Len()))
	return h
}

// Run processes requests until ctx is cancelled. It must be called once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case req := <-h.inbox:
			h.process(req)
		}
	}
}

// RegisterClient adds c to the hub and starts forwarding its commands.
// Returns false if the hub has stopped.
func (h *Hub) RegisterClient(c *Client) bool {
	if !h.submit(request{op: opRegister, client: c}) {
		return false
	}
	go h.forward(c)
	return true
}

// UnregisterClient runs the disconnect cleanup for c and closes its Events.
func (h *Hub) UnregisterClient(c *Client) {
	h.submit(request{op: opUnregister, client: c})
}

// Rooms returns the current room summaries, read on the hub goroutine.
func (h *Hub) Rooms(ctx context.Context) ([]RoomSummary, error) {
	reply := make(chan []RoomSummary, 1)
	if !h.submit(request{op: opQuery, reply: reply}) {
		return nil, ErrHubStopped
	}
	select {
	case rooms := <-reply:
		return rooms, nil
	case <-h.done:
		return nil, ErrHubStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *Hub) submit(req request) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.inbox <- req:
		return true
	case <-h.done:
		return false
	}
}

// forward moves commands from the client's channel into the shared inbox.
func (h *Hub) forward(c *Client) {
	for {
		select {
		case cmd := <-c.Commands:
			if cmd == nil {
				continue
			}
			if !h.submit(request{op: opCommand, client: c, cmd: cmd}) {
				return
			}
		case <-c.closed:
			return
		case <-h.done:
			return
		}
	}
}

func (h *Hub) process(req request) {
	switch req.op {
	case opRegister:
		h.register(req.client)
	case opUnregister:
		h.disconnect(req.client)
	case opCommand:
		if _, ok := h.clients[req.client.ID]; !ok {
			return
		}
		h.handle(req.client, req.cmd)
	case opQuery:
		req.reply <- h.rooms.Summarize()
	}
	metrics.RoomsActive.Set(float64(h.rooms.Len()))
}

func (h *Hub) register(c *Client) {
	if c == nil {
		h.log.Warn().Msg("received nil client registration; skipping")
		return
	}
	h.clients[c.ID] = c
	metrics.ConnectionsActive.Inc()
	h.log.Debug().Str("client_id", c.ID).Int("clients", len(h.clients)).Msg("client registered")

	h.out.To(c, &Event{Kind: EventRooms, Rooms: h.rooms.Summarize()})
}

func (h *Hub) shutdown() {
	for id, c := range h.clients {
		c.close()
		delete(h.clients, id)
		metrics.ConnectionsActive.Dec()
	}
	h.log.Info().Msg("hub stopped")
}
