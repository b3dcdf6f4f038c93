package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type rateLimitDoc struct {
	UserID    string    `bson:"user_id"`
	Action    string    `bson:"action"`
	CreatedAt time.Time `bson:"created_at"`
}

// CheckRateLimit counts events for (userID, action) inside the trailing
// window. Pure check; there is no transaction wrapping check+record,
// the limiter is advisory.
func (s *Store) CheckRateLimit(ctx context.Context, userID, action string) (bool, error) {
	count, err := s.db.Collection(collRateLimits).CountDocuments(ctx, bson.M{
		"user_id":    userID,
		"action":     action,
		"created_at": bson.M{"$gt": s.limits.WindowStart(time.Now().UTC())},
	})
	if err != nil {
		return false, fmt.Errorf("count rate limits: %w", err)
	}
	return s.limits.Allowed(int(count)), nil
}

// RecordRateLimit appends one event; the TTL index handles retention.
func (s *Store) RecordRateLimit(ctx context.Context, userID, action string) error {
	doc := rateLimitDoc{
		UserID:    userID,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.db.Collection(collRateLimits).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert rate limit: %w", err)
	}
	return nil
}
