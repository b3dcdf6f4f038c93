package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindmate/internal/domain"
)

type moodCheckDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Mood      string             `bson:"mood"`
	Notes     string             `bson:"notes"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (d *moodCheckDoc) toDomain() *domain.MoodCheck {
	return &domain.MoodCheck{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Mood:      d.Mood,
		Notes:     d.Notes,
		CreatedAt: d.Timestamp,
	}
}

func (s *Store) SaveMoodCheck(ctx context.Context, mood *domain.MoodCheck) (string, error) {
	doc := moodCheckDoc{
		UserID:    mood.UserID,
		Mood:      mood.Mood,
		Notes:     mood.Notes,
		Timestamp: time.Now().UTC(),
	}
	res, err := s.db.Collection(collMoodChecks).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert mood check: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *Store) GetMoodChecks(ctx context.Context, userID string, limit int) ([]*domain.MoodCheck, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.db.Collection(collMoodChecks).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list mood checks: %w", err)
	}
	defer cur.Close(ctx)

	var checks []*domain.MoodCheck
	for cur.Next(ctx) {
		var doc moodCheckDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode mood check: %w", err)
		}
		checks = append(checks, doc.toDomain())
	}
	return checks, cur.Err()
}
