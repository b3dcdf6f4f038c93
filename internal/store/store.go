// Package store selects the active persistence driver. It is the single
// seam across which the rest of the application is backend-agnostic: one
// driver is constructed at startup from the configuration flag and every
// operation is forwarded to it unchanged.
package store

import (
	"context"
	"fmt"

	"mindmate/internal/config"
	"mindmate/internal/domain"
	"mindmate/internal/store/mongodb"
	"mindmate/internal/store/postgres"
	"mindmate/internal/store/sqlite"
)

// Open builds the driver named by cfg.DBDriver and prepares its schema
// or indexes. An unknown driver value is a startup-time configuration
// error; callers are expected to terminate on it.
func Open(ctx context.Context, cfg *config.Config) (domain.Store, error) {
	policy := domain.DefaultRateLimitPolicy()
	policy.MaxPerWindow = cfg.RateLimitPerMinute

	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(db); err != nil {
			return nil, err
		}
		return postgres.New(db, policy), nil
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(db); err != nil {
			return nil, err
		}
		return sqlite.New(db, policy), nil
	case "mongodb":
		st, err := mongodb.Open(ctx, cfg.MongoURI, cfg.MongoDatabase, policy)
		if err != nil {
			return nil, err
		}
		if err := st.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
