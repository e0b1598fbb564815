package core

import (
	"time"

	"github.com/samber/lo"
)

// Retention bounds a room's message logs.
type Retention struct {
	Audio     time.Duration
	Text      time.Duration
	TextLimit int
}

// DefaultRetention keeps one hour of audio and text, and at most 500 text messages.
func DefaultRetention() Retention {
	return Retention{
		Audio:     time.Hour,
		Text:      time.Hour,
		TextLimit: 500,
	}
}

// MessageStore is the per-room log of relayed messages.
// Appends are stamped with the caller's clock, so entries stay ordered by
// SentAt and pruning only ever trims the front.
type MessageStore struct {
	retention Retention
	audio     []AudioMessage
	text      []TextMessage
}

// NewMessageStore creates an empty store with the given retention.
func NewMessageStore(retention Retention) *MessageStore {
	return &MessageStore{retention: retention}
}

// AppendAudio stamps msg with now, stores it and prunes expired audio.
func (s *MessageStore) AppendAudio(msg AudioMessage, now time.Time) AudioMessage {
	msg.SentAt = now
	s.audio = append(s.audio, msg)
	s.pruneAudio(now)
	return msg
}

// AppendText stamps msg with now, stores it and prunes text by age and count.
func (s *MessageStore) AppendText(msg TextMessage, now time.Time) TextMessage {
	msg.SentAt = now
	s.text = append(s.text, msg)
	s.pruneText(now)
	return msg
}

// History prunes expired audio and returns the rest in append order.
func (s *MessageStore) History(now time.Time) []AudioMessage {
	s.pruneAudio(now)
	out := make([]AudioMessage, len(s.audio))
	copy(out, s.audio)
	return out
}

func (s *MessageStore) pruneAudio(now time.Time) {
	if s.retention.Audio <= 0 {
		return
	}
	cutoff := now.Add(-s.retention.Audio)
	s.audio = lo.DropWhile(s.audio, func(m AudioMessage) bool { return !m.SentAt.After(cutoff) })
}

func (s *MessageStore) pruneText(now time.Time) {
	if s.retention.Text > 0 {
		cutoff := now.Add(-s.retention.Text)
		s.text = lo.DropWhile(s.text, func(m TextMessage) bool { return !m.SentAt.After(cutoff) })
	}
	if limit := s.retention.TextLimit; limit > 0 && len(s.text) > limit {
		s.text = lo.Drop(s.text, len(s.text)-limit)
	}
}
