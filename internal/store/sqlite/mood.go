package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"mindmate/internal/domain"
)

func (s *Store) SaveMoodCheck(ctx context.Context, mood *domain.MoodCheck) (string, error) {
	uid, err := parseID(mood.UserID)
	if err != nil {
		return "", err
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO mood_checks (user_id, mood, notes, created_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	`, uid, mood.Mood, mood.Notes)
	if err != nil {
		return "", fmt.Errorf("insert mood check: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("last insert id: %w", err)
	}
	return formatID(id), nil
}

func (s *Store) GetMoodChecks(ctx context.Context, userID string, limit int) ([]*domain.MoodCheck, error) {
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, mood, notes, created_at
		FROM mood_checks
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("list mood checks: %w", err)
	}
	defer rows.Close()

	var checks []*domain.MoodCheck
	for rows.Next() {
		var (
			m        domain.MoodCheck
			id, mUID int64
			notes    sql.NullString
		)
		if err := rows.Scan(&id, &mUID, &m.Mood, &notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mood check: %w", err)
		}
		m.ID = formatID(id)
		m.UserID = formatID(mUID)
		m.Notes = notes.String
		checks = append(checks, &m)
	}
	return checks, rows.Err()
}
