// Package mongodb implements the uniform persistence operation set
// against a document store with one collection per record type.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"mindmate/internal/domain"
)

const (
	collUsers      = "users"
	collChats      = "chats"
	collMoodChecks = "mood_checks"
	collRateLimits = "rate_limits"
)

// Store is the document driver. The underlying mongo client is safe for
// concurrent use, so one Store serves overlapping requests.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	limits domain.RateLimitPolicy
}

// Open connects to the document store and verifies reachability.
func Open(ctx context.Context, uri, database string, limits domain.RateLimitPolicy) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &Store{
		client: client,
		db:     client.Database(database),
		limits: limits,
	}, nil
}

var _ domain.Store = (*Store)(nil)

// EnsureIndexes creates the unique and query indexes, plus a TTL index
// that garbage-collects rate-limit events past the retention window.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	users := s.db.Collection(collUsers)
	if _, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	for _, coll := range []string{collChats, collMoodChecks} {
		if _, err := s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
		}); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}

	rateLimits := s.db.Collection(collRateLimits)
	if _, err := rateLimits.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "action", Value: 1}, {Key: "created_at", Value: 1}}},
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(s.limits.Retention.Seconds())),
		},
	}); err != nil {
		return fmt.Errorf("create rate limit indexes: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
