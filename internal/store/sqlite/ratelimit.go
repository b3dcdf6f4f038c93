package sqlite

import (
	"context"
	"fmt"
	"time"
)

// CheckRateLimit counts events for (userID, action) inside the trailing
// window. Pure check; the check-then-record pair is advisory.
func (s *Store) CheckRateLimit(ctx context.Context, userID, action string) (bool, error) {
	uid, err := parseID(userID)
	if err != nil {
		return false, err
	}
	var count int
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM rate_limits
		WHERE user_id = ? AND action = ? AND created_at > ?
	`, uid, action, formatTime(s.limits.WindowStart(time.Now()))).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count rate limits: %w", err)
	}
	return s.limits.Allowed(count), nil
}

func (s *Store) RecordRateLimit(ctx context.Context, userID, action string) error {
	uid, err := parseID(userID)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO rate_limits (user_id, action, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	`, uid, action); err != nil {
		return fmt.Errorf("insert rate limit: %w", err)
	}

	// Opportunistic cleanup of events past the retention window.
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM rate_limits WHERE created_at < ?
	`, formatTime(time.Now().Add(-s.limits.Retention))); err != nil {
		return fmt.Errorf("prune rate limits: %w", err)
	}
	return nil
}
