// Package postgres implements the uniform persistence operation set
// against a relational schema using the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"

	"mindmate/internal/domain"
)

const uniqueViolation = "23505"

// Store is the relational driver.
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

// parseID converts an external string identifier to the backend's
// numeric key. Malformed identifiers surface as ErrNotFound.
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
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
