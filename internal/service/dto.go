package service

import (
	"time"

	"mindmate/internal/domain"
)

// Timestamps cross the JSON boundary as "YYYY-MM-DD HH:MM:SS" in UTC.
const timeLayout = "2006-01-02 15:04:05"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ChatEntry is the wire shape of one chat exchange.
type ChatEntry struct {
	UserMessage string  `json:"user_message"`
	AIResponse  string  `json:"ai_response"`
	Sentiment   string  `json:"sentiment"`
	Confidence  float64 `json:"confidence"`
	Timestamp   string  `json:"timestamp"`
}

func toChatEntries(chats []*domain.ChatMessage) []ChatEntry {
	entries := make([]ChatEntry, 0, len(chats))
	for _, c := range chats {
		entries = append(entries, ChatEntry{
			UserMessage: c.UserMessage,
			AIResponse:  c.AIResponse,
			Sentiment:   c.Sentiment,
			Confidence:  c.Confidence,
			Timestamp:   formatTimestamp(c.CreatedAt),
		})
	}
	return entries
}

// MoodEntry is the wire shape of one mood check-in.
type MoodEntry struct {
	Mood      string `json:"mood"`
	Notes     string `json:"notes,omitempty"`
	Timestamp string `json:"timestamp"`
}

func toMoodEntries(checks []*domain.MoodCheck) []MoodEntry {
	entries := make([]MoodEntry, 0, len(checks))
	for _, m := range checks {
		entries = append(entries, MoodEntry{
			Mood:      m.Mood,
			Notes:     m.Notes,
			Timestamp: formatTimestamp(m.CreatedAt),
		})
	}
	return entries
}
