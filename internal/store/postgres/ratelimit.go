package postgres

import (
	"context"
	"fmt"
	"time"
)

// CheckRateLimit counts events for (userID, action) inside the trailing
// window. It is a pure check and records nothing; the check-then-record
// pair carries a documented race and the limiter is advisory.
func (s *Store) CheckRateLimit(ctx context.Context, userID, action string) (bool, error) {
	uid, err := parseID(userID)
	if err != nil {
		return false, err
	}
	var count int
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM rate_limits
		WHERE user_id = $1 AND action = $2 AND created_at > $3
	`, uid, action, s.limits.WindowStart(time.Now())).Scan(&count)
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
		INSERT INTO rate_limits (user_id, action, created_at) VALUES ($1, $2, NOW())
	`, uid, action); err != nil {
		return fmt.Errorf("insert rate limit: %w", err)
	}

	// Opportunistic cleanup of events past the retention window.
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM rate_limits WHERE created_at < $1
	`, time.Now().Add(-s.limits.Retention)); err != nil {
		return fmt.Errorf("prune rate limits: %w", err)
	}
	return nil
}
