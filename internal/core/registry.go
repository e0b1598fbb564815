package core

import (
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/vovakirdan/roomrelay/internal/auth"
)

const (
	// DefaultRoomID is the permanent room every server starts with.
	DefaultRoomID   = "genel"
	DefaultRoomName = "General"
	// SystemCreator marks rooms not created by a user.
	SystemCreator = "system"

	untitledRoomName = "Untitled room"
)

// RoomSpec describes a room requested through createRoom.
type RoomSpec struct {
	ID         string
	Name       string
	CreatedBy  string
	CreatedAt  string
	Password   string
	InviteCode string
}

// Registry owns every room by ID, in creation order.
type Registry struct {
	rooms      map[string]*Room
	order      []string
	retention  Retention
	inviteBase string
	now        func() time.Time
}

// NewRegistry creates a registry holding only the default room.
func NewRegistry(retention Retention, inviteBase string, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	reg := &Registry{
		rooms:      make(map[string]*Room),
		retention:  retention,
		inviteBase: strings.TrimSuffix(inviteBase, "/"),
		now:        now,
	}
	def := NewRoom(DefaultRoomID, DefaultRoomName, retention)
	def.CreatedBy = SystemCreator
	def.CreatedAt = reg.stamp()
	def.InviteLink = reg.inviteLink(def.ID, "")
	reg.insert(def)
	return reg
}

// Get looks up a room.
func (r *Registry) Get(id string) (*Room, bool) {
	room, ok := r.rooms[id]
	return room, ok
}

// Len returns the number of rooms.
func (r *Registry) Len() int { return len(r.rooms) }

// Create registers a new room. It is rejected when the ID is taken or the
// creator already owns another non-default room.
func (r *Registry) Create(spec RoomSpec) (*Room, Outcome) {
	if spec.ID == "" {
		return nil, OutcomeInvalid
	}
	if _, exists := r.rooms[spec.ID]; exists {
		return nil, OutcomeAlreadyExists
	}
	if spec.CreatedBy != "" && r.ownsRoom(spec.CreatedBy) {
		return nil, OutcomeCreatorLimit
	}

	name := spec.Name
	if name == "" {
		name = untitledRoomName
	}
	room := NewRoom(spec.ID, name, r.retention)
	room.CreatedBy = spec.CreatedBy
	room.CreatedAt = spec.CreatedAt
	if room.CreatedAt == "" {
		room.CreatedAt = r.stamp()
	}
	if spec.Password != "" {
		hash, err := auth.HashSecret(spec.Password)
		if err != nil {
			return nil, OutcomeInvalid
		}
		room.passwordHash = hash
	}
	room.inviteCode = spec.InviteCode
	room.InviteLink = r.inviteLink(spec.ID, spec.InviteCode)

	r.insert(room)
	return room, OutcomeOK
}

// GetOrCreateImplicit returns the room, creating a bare one (no secrets,
// no creator) when it does not exist. Reports whether it was created.
func (r *Registry) GetOrCreateImplicit(id string) (*Room, bool) {
	if room, ok := r.rooms[id]; ok {
		return room, false
	}
	room := NewRoom(id, id, r.retention)
	room.CreatedAt = r.stamp()
	room.InviteLink = r.inviteLink(id, "")
	r.insert(room)
	return room, true
}

// Delete removes a room. The default room can never be deleted.
func (r *Registry) Delete(id string) Outcome {
	if id == DefaultRoomID {
		return OutcomeForbidden
	}
	if _, ok := r.rooms[id]; !ok {
		return OutcomeNotFound
	}
	delete(r.rooms, id)
	r.order = lo.Without(r.order, id)
	return OutcomeOK
}

// Rooms returns rooms in creation order.
func (r *Registry) Rooms() []*Room {
	return lo.Map(r.order, func(id string, _ int) *Room { return r.rooms[id] })
}

// Summarize returns the public view of every room in creation order.
func (r *Registry) Summarize() []RoomSummary {
	return lo.Map(r.Rooms(), func(room *Room, _ int) RoomSummary { return room.Summary() })
}

func (r *Registry) insert(room *Room) {
	r.rooms[room.ID] = room
	r.order = append(r.order, room.ID)
}

func (r *Registry) ownsRoom(userID string) bool {
	return lo.SomeBy(r.Rooms(), func(room *Room) bool {
		return room.ID != DefaultRoomID && room.CreatedBy == userID
	})
}

func (r *Registry) inviteLink(id, code string) string {
	q := url.Values{}
	q.Set("room", id)
	q.Set("invite", code)
	return r.inviteBase + "/?" + q.Encode()
}

func (r *Registry) stamp() string {
	return r.now().UTC().Format(time.RFC3339)
}
