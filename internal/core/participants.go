package core

import "github.com/samber/lo"

// Participant is a user's membership record within one room.
type Participant struct {
	ID   string
	Name string
	// ConnID is the connection that joined; used when the connection drops.
	ConnID string
}

// Participants is an ordered membership list, unique by participant ID.
type Participants struct {
	list []Participant
}

// Add appends p unless a participant with the same ID is present.
// Returns true if newly added.
func (ps *Participants) Add(p Participant) bool {
	if ps.Contains(p.ID) {
		return false
	}
	ps.list = append(ps.list, p)
	return true
}

// Contains reports whether a participant with userID is present.
func (ps *Participants) Contains(userID string) bool {
	return lo.ContainsBy(ps.list, func(p Participant) bool { return p.ID == userID })
}

// Get returns the participant with userID.
func (ps *Participants) Get(userID string) (Participant, bool) {
	return lo.Find(ps.list, func(p Participant) bool { return p.ID == userID })
}

// RemoveByUserID drops the participant with userID. Returns true if removed.
func (ps *Participants) RemoveByUserID(userID string) bool {
	before := len(ps.list)
	ps.list = lo.Reject(ps.list, func(p Participant, _ int) bool { return p.ID == userID })
	return len(ps.list) != before
}

// RemoveByConnID drops every participant joined through connID and returns them.
func (ps *Participants) RemoveByConnID(connID string) []Participant {
	removed, kept := lo.FilterReject(ps.list, func(p Participant, _ int) bool { return p.ConnID == connID })
	ps.list = kept
	return removed
}

// List returns a copy of the participants in join order.
func (ps *Participants) List() []Participant {
	out := make([]Participant, len(ps.list))
	copy(out, ps.list)
	return out
}

func (ps *Participants) Len() int { return len(ps.list) }

func (ps *Participants) Empty() bool { return len(ps.list) == 0 }
