package domain

import "time"

// User represents an application user.
type User struct {
	ID           string     `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	IsActive     bool       `db:"is_active" json:"is_active"`
}

// UserUpdate carries the only fields the profile path may change.
// The password hash and activity flag are never written through updates.
type UserUpdate struct {
	Username string
	Email    string
}

// ChatMessage holds both sides of one exchange: the user's message and
// the AI reply obtained for it. A record is never persisted with only
// one side, and it is immutable after creation.
type ChatMessage struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	UserMessage string    `db:"user_message"`
	AIResponse  string    `db:"ai_response"`
	Sentiment   string    `db:"sentiment"`
	Confidence  float64   `db:"confidence"`
	CreatedAt   time.Time `db:"timestamp"`
}

// MoodCheck is a user-self-reported emotional state, immutable once saved.
type MoodCheck struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Mood      string    `db:"mood"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"timestamp"`
}

// ValidMoods is the fixed mood-tag vocabulary accepted at check-in.
var ValidMoods = []string{"happy", "sad", "neutral", "anxious", "angry", "excited", "calm", "confused"}

// IsValidMood reports whether mood belongs to the fixed vocabulary.
func IsValidMood(mood string) bool {
	for _, m := range ValidMoods {
		if mood == m {
			return true
		}
	}
	return false
}
