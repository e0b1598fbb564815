package core

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	now := func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return NewRegistry(DefaultRetention(), "https://relay.example", now)
}

func TestRegistry_StartsWithDefaultRoom(t *testing.T) {
	req := require.New(t)
	reg := newTestRegistry()

	req.Equal(1, reg.Len())
	room, ok := reg.Get(DefaultRoomID)
	req.True(ok)
	req.Equal(DefaultRoomName, room.Name)
	req.Equal(SystemCreator, room.CreatedBy)
	req.Equal("2026-01-02T03:04:05Z", room.CreatedAt)
}

func TestRegistry_DefaultRoomCannotBeDeleted(t *testing.T) {
	reg := newTestRegistry()

	require.Equal(t, OutcomeForbidden, reg.Delete(DefaultRoomID))
	_, ok := reg.Get(DefaultRoomID)
	require.True(t, ok)
}

func TestRegistry_CreateRejectsDuplicateID(t *testing.T) {
	req := require.New(t)
	reg := newTestRegistry()

	_, outcome := reg.Create(RoomSpec{ID: "r1", Name: "One", CreatedBy: "alice"})
	req.Equal(OutcomeOK, outcome)

	_, outcome = reg.Create(RoomSpec{ID: "r1", Name: "Other", CreatedBy: "bob"})
	req.Equal(OutcomeAlreadyExists, outcome)

	_, outcome = reg.Create(RoomSpec{ID: DefaultRoomID, CreatedBy: "carol"})
	req.Equal(OutcomeAlreadyExists, outcome)
	req.Equal(2, reg.Len())
}

func TestRegistry_CreateEnforcesOneRoomPerCreator(t *testing.T) {
	req := require.New(t)
	reg := newTestRegistry()

	_, outcome := reg.Create(RoomSpec{ID: "r1", CreatedBy: "u1"})
	req.Equal(OutcomeOK, outcome)

	_, outcome = reg.Create(RoomSpec{ID: "r2", CreatedBy: "u1"})
	req.Equal(OutcomeCreatorLimit, outcome)
	_, exists := reg.Get("r2")
	req.False(exists)

	// Once the first room is gone the creator may create again.
	req.Equal(OutcomeOK, reg.Delete("r1"))
	_, outcome = reg.Create(RoomSpec{ID: "r2", CreatedBy: "u1"})
	req.Equal(OutcomeOK, outcome)
}

func TestRegistry_CreateDefaults(t *testing.T) {
	req := require.New(t)
	reg := newTestRegistry()

	room, outcome := reg.Create(RoomSpec{ID: "r1", CreatedBy: "alice", CreatedAt: "t0"})
	req.Equal(OutcomeOK, outcome)
	req.Equal(untitledRoomName, room.Name)
	req.Equal("t0", room.CreatedAt)

	room, _ = reg.Create(RoomSpec{ID: "r2"})
	req.Equal("2026-01-02T03:04:05Z", room.CreatedAt)

	_, outcome = reg.Create(RoomSpec{})
	req.Equal(OutcomeInvalid, outcome)
}

func TestRegistry_InviteLinkIsDeterministic(t *testing.T) {
	req := require.New(t)
	reg := newTestRegistry()

	withCode, _ := reg.Create(RoomSpec{ID: "r 1", InviteCode: "abc&d"})
	req.Equal("https://relay.example/?invite=abc%26d&room=r+1", withCode.InviteLink)

	noCode, _ := reg.Create(RoomSpec{ID: "r2"})
	req.Equal("https://relay.example/?invite=&room=r2", noCode.InviteLink)
}

func TestRegistry_SummaryHidesSecrets(t *testing.T) {
	req := require.New(t)
	reg := newTestRegistry()

	room, outcome := reg.Create(RoomSpec{ID: "r1", Name: "Secret", CreatedBy: "alice", Password: "p1", InviteCode: "inv"})
	req.Equal(OutcomeOK, outcome)
	req.NotEqual("p1", room.passwordHash)

	summaries := reg.Summarize()
	req.Len(summaries, 2)
	req.Equal(DefaultRoomID, summaries[0].ID)

	s := summaries[1]
	req.Equal("r1", s.ID)
	req.True(s.HasPassword)
	req.True(s.HasInviteCode)
	req.Equal(room.InviteLink, s.InviteLink)
	req.False(summaries[0].HasPassword)
	req.False(summaries[0].HasInviteCode)
}

func TestRegistry_GetOrCreateImplicit(t *testing.T) {
	req := require.New(t)
	reg := newTestRegistry()

	room, created := reg.GetOrCreateImplicit("adhoc")
	req.True(created)
	req.Equal("adhoc", room.Name)
	req.Empty(room.CreatedBy)
	req.False(room.Gated())

	again, created := reg.GetOrCreateImplicit("adhoc")
	req.False(created)
	req.Same(room, again)
}

func TestRegistry_DeleteKeepsOrder(t *testing.T) {
	req := require.New(t)
	reg := newTestRegistry()
	reg.GetOrCreateImplicit("a")
	reg.GetOrCreateImplicit("b")
	reg.GetOrCreateImplicit("c")

	req.Equal(OutcomeOK, reg.Delete("b"))
	req.Equal(OutcomeNotFound, reg.Delete("b"))

	var ids []string
	for _, s := range reg.Summarize() {
		ids = append(ids, s.ID)
	}
	req.Equal([]string{DefaultRoomID, "a", "c"}, ids)
}

func TestRegistry_CreateAcceptsLongMultibytePassword(t *testing.T) {
	req := require.New(t)
	reg := newTestRegistry()

	// 40 runes, 80 bytes: past bcrypt's 72-byte input limit.
	password := strings.Repeat("é", 40)
	room, outcome := reg.Create(RoomSpec{ID: "r1", CreatedBy: "alice", Password: password})
	req.Equal(OutcomeOK, outcome)
	req.True(room.HasPassword())

	_, exists := reg.Get("r1")
	req.True(exists)
	req.True(canEnter(room, password, ""))
	req.False(canEnter(room, strings.Repeat("é", 39), ""))
}
