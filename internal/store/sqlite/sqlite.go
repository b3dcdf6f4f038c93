// Package sqlite implements the uniform persistence operation set
// against a local SQLite file. It exists for development and testing;
// the schema shape mirrors the postgres driver.
package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"mindmate/internal/domain"
)

// SQLite stores CURRENT_TIMESTAMP as UTC text in this layout; window
// bounds are passed in the same form so comparisons stay lexical.
const timeLayout = "2006-01-02 15:04:05"

// Store is the SQLite driver.
type Store struct {
	db     *sql.DB
	limits domain.RateLimitPolicy
}

func New(db *sql.DB, limits domain.RateLimitPolicy) *Store {
	return &Store{db: db, limits: limits}
}

var _ domain.Store = (*Store)(nil)

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	return s.db.Close()
}

func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
