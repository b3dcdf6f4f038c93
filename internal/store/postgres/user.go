package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"mindmate/internal/domain"
)

func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) (string, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, created_at, updated_at, is_active)
		VALUES ($1, $2, $3, NOW(), NOW(), TRUE)
		RETURNING id
	`, username, email, passwordHash).Scan(&id)
	if err != nil {
		if isDuplicate(err) {
			return "", domain.ErrDuplicateKey
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return formatID(id), nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.scanUser(ctx, `
		SELECT id, username, email, password_hash, created_at, updated_at, last_login, is_active
		FROM users WHERE email = $1
	`, email)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.scanUser(ctx, `
		SELECT id, username, email, password_hash, created_at, updated_at, last_login, is_active
		FROM users WHERE id = $1
	`, uid)
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (bool, error) {
	uid, err := parseID(id)
	if err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET username = $1, email = $2, updated_at = NOW() WHERE id = $3
	`, upd.Username, upd.Email, uid)
	if err != nil {
		if isDuplicate(err) {
			return false, domain.ErrDuplicateKey
		}
		return false, fmt.Errorf("update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func (s *Store) scanUser(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var (
		u         domain.User
		id        int64
		lastLogin sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&id, &u.Username, &u.Email, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt, &lastLogin, &u.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.ID = formatID(id)
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return &u, nil
}
