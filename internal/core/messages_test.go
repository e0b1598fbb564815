package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func audio(id string) AudioMessage {
	return AudioMessage{ID: id, Blob: json.RawMessage(`"blob"`)}
}

func TestMessageStore_AppendAudioStampsSentAt(t *testing.T) {
	s := NewMessageStore(DefaultRetention())
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	stored := s.AppendAudio(AudioMessage{ID: "m1", SentAt: now.Add(-48 * time.Hour)}, now)

	require.Equal(t, now, stored.SentAt, "client timestamp is replaced by receipt time")
}

func TestMessageStore_HistoryKeepsTrailingHour(t *testing.T) {
	req := require.New(t)
	s := NewMessageStore(DefaultRetention())
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.AppendAudio(audio("a"), start)
	s.AppendAudio(audio("b"), start.Add(20*time.Minute))
	s.AppendAudio(audio("c"), start.Add(50*time.Minute))

	// At T = start+70m, cutoff is start+10m: "a" is gone.
	history := s.History(start.Add(70 * time.Minute))
	req.Len(history, 2)
	req.Equal("b", history[0].ID)
	req.Equal("c", history[1].ID)

	// Exactly one hour old is no longer inside the window.
	history = s.History(start.Add(80 * time.Minute))
	req.Len(history, 1)
	req.Equal("c", history[0].ID)
}

func TestMessageStore_AppendPrunesFront(t *testing.T) {
	s := NewMessageStore(DefaultRetention())
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.AppendAudio(audio("old"), start)
	s.AppendAudio(audio("new"), start.Add(2*time.Hour))

	require.Len(t, s.audio, 1)
	require.Equal(t, "new", s.audio[0].ID)
}

func TestMessageStore_HistoryMatchesWindowForAnyT(t *testing.T) {
	s := NewMessageStore(DefaultRetention())
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var all []AudioMessage
	for i := 0; i < 30; i++ {
		at := start.Add(time.Duration(i*7) * time.Minute)
		all = append(all, s.AppendAudio(audio(string(rune('a'+i))), at))
	}

	last := all[len(all)-1].SentAt
	for _, offset := range []time.Duration{0, 5 * time.Minute, 30 * time.Minute, 59 * time.Minute, 3 * time.Hour} {
		now := last.Add(offset)
		var want []string
		for _, m := range all {
			if m.SentAt.After(now.Add(-time.Hour)) {
				want = append(want, m.ID)
			}
		}
		var got []string
		for _, m := range s.History(now) {
			got = append(got, m.ID)
		}
		require.Equal(t, want, got, "offset %s", offset)
	}
}

func TestMessageStore_TextBoundedByCountAndAge(t *testing.T) {
	req := require.New(t)
	s := NewMessageStore(Retention{Audio: time.Hour, Text: time.Hour, TextLimit: 3})
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		s.AppendText(TextMessage{ID: string(rune('a' + i))}, start.Add(time.Duration(i)*time.Minute))
	}
	req.Len(s.text, 3)
	req.Equal("c", s.text[0].ID)

	s.AppendText(TextMessage{ID: "z"}, start.Add(2*time.Hour))
	req.Len(s.text, 1)
	req.Equal("z", s.text[0].ID)
}

func TestMessageStore_HistoryIsACopy(t *testing.T) {
	s := NewMessageStore(DefaultRetention())
	now := time.Now()
	s.AppendAudio(audio("a"), now)

	h := s.History(now)
	h[0].ID = "mutated"

	require.Equal(t, "a", s.History(now)[0].ID)
}
