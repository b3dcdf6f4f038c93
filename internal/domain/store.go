package domain

import (
	"context"
	"time"
)

// Store is the uniform persistence operation set. Exactly one
// implementation is active per process, selected once at startup from
// configuration; everything above this interface is backend-agnostic.
//
// Identifiers are opaque strings assigned by the backend (stringified
// serial for relational backends, ObjectID hex for the document
// backend). A malformed identifier is reported as ErrNotFound, never as
// a fatal error.
type Store interface {
	// CreateUser persists a user with creation/update timestamps set to
	// now, is_active true, and a null last-login. Returns ErrDuplicateKey
	// when the username or email is already taken.
	CreateUser(ctx context.Context, username, email, passwordHash string) (string, error)
	// GetUserByEmail is an exact-match lookup; no case normalization.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	// UpdateUser changes username/email only and bumps the update
	// timestamp. Reports whether a record was modified.
	UpdateUser(ctx context.Context, id string, upd UserUpdate) (bool, error)

	// SaveChat persists one full exchange; the backend assigns the
	// creation timestamp at write time.
	SaveChat(ctx context.Context, chat *ChatMessage) (string, error)
	// GetRecentChats returns the most recent limit exchanges in
	// chronological order (the newest-first page is reversed).
	GetRecentChats(ctx context.Context, userID string, limit int) ([]*ChatMessage, error)
	// GetChatHistory returns the most recent limit exchanges newest-first.
	GetChatHistory(ctx context.Context, userID string, limit int) ([]*ChatMessage, error)

	SaveMoodCheck(ctx context.Context, mood *MoodCheck) (string, error)
	// GetMoodChecks returns the most recent limit check-ins newest-first.
	GetMoodChecks(ctx context.Context, userID string, limit int) ([]*MoodCheck, error)

	// CheckRateLimit reports whether another (userID, action) event is
	// allowed within the trailing window. Pure check, records nothing.
	CheckRateLimit(ctx context.Context, userID, action string) (bool, error)
	// RecordRateLimit appends one event for (userID, action).
	RecordRateLimit(ctx context.Context, userID, action string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// RateLimitPolicy is the windowing math shared by every driver: count
// events inside the trailing window, allow while under the cap. The
// check and the record are two separate calls with no atomicity between
// them; two near-simultaneous checks can both pass. That race is
// accepted, the limiter is advisory.
type RateLimitPolicy struct {
	Window       time.Duration
	MaxPerWindow int
	// Retention bounds how long recorded events are kept before the
	// backend may garbage-collect them.
	Retention time.Duration
}

// DefaultRateLimitPolicy mirrors the product limits: 10 events per
// trailing minute, events retained for one hour.
func DefaultRateLimitPolicy() RateLimitPolicy {
	return RateLimitPolicy{
		Window:       time.Minute,
		MaxPerWindow: 10,
		Retention:    time.Hour,
	}
}

// WindowStart returns the inclusive-exclusive lower bound of the
// trailing window ending at now.
func (p RateLimitPolicy) WindowStart(now time.Time) time.Time {
	return now.Add(-p.Window)
}

// Allowed reports whether an event may proceed given the number of
// events already inside the window.
func (p RateLimitPolicy) Allowed(count int) bool {
	return count < p.MaxPerWindow
}
