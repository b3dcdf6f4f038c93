package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open opens a PostgreSQL database using the pgx stdlib driver.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Migrate runs idempotent DDL migrations for the mindmate schema on PostgreSQL.
func Migrate(db *sql.DB) error {
	stmts := []string{
		// Users
		`CREATE TABLE IF NOT EXISTS users (
			id             BIGSERIAL    PRIMARY KEY,
			username       VARCHAR(50)  UNIQUE NOT NULL,
			email          VARCHAR(100) UNIQUE NOT NULL,
			password_hash  VARCHAR(255) NOT NULL,
			created_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
			last_login     TIMESTAMPTZ,
			is_active      BOOLEAN      NOT NULL DEFAULT TRUE
		)`,

		// Chat exchanges, one row per user message + AI reply pair
		`CREATE TABLE IF NOT EXISTS chats (
			id           BIGSERIAL   PRIMARY KEY,
			user_id      BIGINT      NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			user_message TEXT        NOT NULL,
			ai_response  TEXT        NOT NULL,
			sentiment    VARCHAR(20),
			confidence   DOUBLE PRECISION,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Mood check-ins
		`CREATE TABLE IF NOT EXISTS mood_checks (
			id         BIGSERIAL   PRIMARY KEY,
			user_id    BIGINT      NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			mood       VARCHAR(20) NOT NULL,
			notes      TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Rate limit events
		`CREATE TABLE IF NOT EXISTS rate_limits (
			id         BIGSERIAL   PRIMARY KEY,
			user_id    BIGINT      NOT NULL,
			action     VARCHAR(50) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
		`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
		`CREATE INDEX IF NOT EXISTS idx_chats_user_created ON chats(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_mood_checks_user_created ON mood_checks(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_rate_limits_lookup ON rate_limits(user_id, action, created_at)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w\nSQL: %s", err, stmt)
		}
	}
	return nil
}
