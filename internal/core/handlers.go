package core

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/roomrelay/internal/auth"
	"github.com/vovakirdan/roomrelay/internal/metrics"
	"github.com/vovakirdan/roomrelay/internal/utils"
)

const joinDeniedMessage = "wrong room password or invite code"

// handle applies one command from c and reports its outcome.
func (h *Hub) handle(c *Client, cmd *Command) Outcome {
	var outcome Outcome
	switch cmd.Kind {
	case CommandJoin:
		outcome = h.join(c, cmd)
	case CommandLeave:
		outcome = h.leave(c, cmd)
	case CommandCreateRoom:
		outcome = h.createRoom(c, cmd)
	case CommandAudio:
		outcome = h.relayAudio(c, cmd)
	case CommandText:
		outcome = h.relayText(c, cmd)
	case CommandKick:
		outcome = h.kick(cmd)
	default:
		outcome = OutcomeInvalid
	}

	metrics.CommandsTotal.WithLabelValues(cmd.Kind.String(), outcome.String()).Inc()
	h.log.Debug().
		Str("client_id", c.ID).
		Str("command", cmd.Kind.String()).
		Str("room", cmd.Room).
		Str("outcome", outcome.String()).
		Msg("command handled")
	return outcome
}

func (h *Hub) join(c *Client, cmd *Command) Outcome {
	if cmd.Room == "" || cmd.User.ID == "" {
		return OutcomeInvalid
	}

	room, exists := h.rooms.Get(cmd.Room)
	if exists {
		if !canEnter(room, cmd.Password, cmd.InviteCode) {
			h.out.To(c, &Event{
				Kind:  EventJoinError,
				Room:  room.ID,
				Error: coreError(ErrCodeUnauthorized, joinDeniedMessage),
			})
			h.log.Info().Str("client_id", c.ID).Str("room", room.ID).Str("user", cmd.User.ID).Msg("join refused")
			return OutcomeUnauthorized
		}
	} else {
		room, _ = h.rooms.GetOrCreateImplicit(cmd.Room)
		h.log.Info().Str("room", room.ID).Msg("room created implicitly")
	}

	room.AddClient(c)
	c.bind(room.ID, cmd.User.ID)
	h.users[cmd.User.ID] = c

	user := cmd.User
	user.ConnID = c.ID
	room.Participants.Add(user)

	h.out.To(c, &Event{Kind: EventHistory, Room: room.ID, History: room.Messages.History(h.now())})
	h.broadcastRooms()
	h.broadcastParticipants(room)
	return OutcomeOK
}

func (h *Hub) leave(c *Client, cmd *Command) Outcome {
	room, ok := h.rooms.Get(cmd.Room)
	if !ok {
		return OutcomeNotFound
	}

	room.RemoveClient(c)
	joinedAs, _ := c.unbind(room.ID)
	userID := cmd.UserID
	if userID == "" {
		userID = joinedAs
	}
	h.forgetUser(c, joinedAs)
	h.forgetUser(c, userID)

	room.Participants.RemoveByUserID(userID)
	deleted := h.deleteIfAbandoned(room, userID)

	h.broadcastRooms()
	if !deleted {
		h.broadcastParticipants(room)
	}
	return OutcomeOK
}

func (h *Hub) createRoom(c *Client, cmd *Command) Outcome {
	room, outcome := h.rooms.Create(cmd.NewRoom)
	if outcome != OutcomeOK {
		h.log.Info().
			Str("room", cmd.NewRoom.ID).
			Str("created_by", cmd.NewRoom.CreatedBy).
			Str("outcome", outcome.String()).
			Msg("room creation rejected")
		return outcome
	}

	room.creatorConn = c.ID
	h.log.Info().Str("room", room.ID).Str("created_by", room.CreatedBy).Msg("room created")
	h.broadcastRooms()
	return OutcomeOK
}

func (h *Hub) relayAudio(c *Client, cmd *Command) Outcome {
	room, ok := h.rooms.Get(cmd.Room)
	if !ok {
		return OutcomeNotFound
	}

	msg := cmd.Audio
	msg.Room = room.ID
	if msg.ID == "" {
		msg.ID = utils.NewID()
	}
	stored := room.Messages.AppendAudio(msg, h.now())
	metrics.RelayedBytes.WithLabelValues("audio").Add(float64(stored.Size()))

	h.out.RoomExcept(room, c, &Event{Kind: EventAudio, Room: room.ID, Audio: &stored})
	return OutcomeOK
}

func (h *Hub) relayText(_ *Client, cmd *Command) Outcome {
	room, ok := h.rooms.Get(cmd.Room)
	if !ok {
		return OutcomeNotFound
	}

	msg := cmd.Text
	msg.Room = room.ID
	if msg.ID == "" {
		msg.ID = utils.NewID()
	}
	stored := room.Messages.AppendText(msg, h.now())
	metrics.RelayedBytes.WithLabelValues("text").Add(float64(stored.Size()))

	h.out.Room(room, &Event{Kind: EventText, Room: room.ID, Text: &stored})
	return OutcomeOK
}

func (h *Hub) kick(cmd *Command) Outcome {
	room, ok := h.rooms.Get(cmd.Room)
	if !ok {
		return OutcomeNotFound
	}
	if room.CreatedBy == "" || room.CreatedBy == SystemCreator || cmd.ByUserID != room.CreatedBy {
		return OutcomeUnauthorized
	}
	kicked, ok := room.Participants.Get(cmd.TargetUserID)
	if !ok {
		return OutcomeNotFound
	}
	room.Participants.RemoveByUserID(cmd.TargetUserID)

	if target, ok := h.clients[kicked.ConnID]; ok && room.HasClient(target) {
		room.RemoveClient(target)
		target.unbind(room.ID)
		h.forgetUser(target, cmd.TargetUserID)
		h.out.To(target, &Event{Kind: EventKicked, Room: room.ID})
	}
	h.log.Info().Str("room", room.ID).Str("user", cmd.TargetUserID).Str("by", cmd.ByUserID).Msg("participant kicked")

	h.broadcastParticipants(room)
	h.broadcastRooms()
	return OutcomeOK
}

// disconnect removes every trace of c and closes it.
func (h *Hub) disconnect(c *Client) {
	if c == nil {
		return
	}
	if _, ok := h.clients[c.ID]; !ok {
		return
	}
	delete(h.clients, c.ID)
	metrics.ConnectionsActive.Dec()
	for userID, owner := range h.users {
		if owner == c {
			delete(h.users, userID)
		}
	}

	for _, room := range h.rooms.Rooms() {
		room.RemoveClient(c)
		removed := room.Participants.RemoveByConnID(c.ID)
		if len(removed) == 0 {
			continue
		}
		departing := lo.Map(removed, func(p Participant, _ int) string { return p.ID })
		if !h.deleteIfAbandoned(room, departing...) {
			h.broadcastParticipants(room)
		}
	}

	c.close()
	h.log.Debug().Str("client_id", c.ID).Int("clients", len(h.clients)).Msg("client disconnected")
	h.broadcastRooms()
}

// deleteIfAbandoned deletes room when it is empty, not the default room,
// and its creator is neither among the departing users nor still connected
// on the connection that created it. Reports whether it was deleted.
func (h *Hub) deleteIfAbandoned(room *Room, departing ...string) bool {
	if room.ID == DefaultRoomID || !room.Participants.Empty() {
		return false
	}
	if room.CreatedBy != "" {
		if lo.Contains(departing, room.CreatedBy) {
			return false
		}
		if _, online := h.clients[room.creatorConn]; online {
			return false
		}
	}

	for c := range room.clients {
		if userID, ok := c.unbind(room.ID); ok {
			h.forgetUser(c, userID)
		}
	}
	if h.rooms.Delete(room.ID) != OutcomeOK {
		return false
	}
	h.log.Info().Str("room", room.ID).Msg("room deleted")
	return true
}

// forgetUser drops the user index entry once c no longer acts as userID.
func (h *Hub) forgetUser(c *Client, userID string) {
	if userID == "" || h.users[userID] != c || c.actsAs(userID) {
		return
	}
	delete(h.users, userID)
}

func (h *Hub) broadcastRooms() {
	h.out.Global(&Event{Kind: EventRooms, Rooms: h.rooms.Summarize()})
}

func (h *Hub) broadcastParticipants(room *Room) {
	h.out.Room(room, &Event{Kind: EventParticipants, Room: room.ID, Participants: room.Participants.List()})
}

func canEnter(room *Room, password, inviteCode string) bool {
	if !room.Gated() {
		return true
	}
	if room.HasPassword() && auth.SecretMatches(room.passwordHash, password) {
		return true
	}
	return room.HasInviteCode() && inviteCode == room.inviteCode
}
