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

type chatDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	UserMessage string             `bson:"user_message"`
	AIResponse  string             `bson:"ai_response"`
	Sentiment   string             `bson:"sentiment"`
	Confidence  float64            `bson:"confidence"`
	Timestamp   time.Time          `bson:"timestamp"`
}

func (d *chatDoc) toDomain() *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		UserMessage: d.UserMessage,
		AIResponse:  d.AIResponse,
		Sentiment:   d.Sentiment,
		Confidence:  d.Confidence,
		CreatedAt:   d.Timestamp,
	}
}

func (s *Store) SaveChat(ctx context.Context, chat *domain.ChatMessage) (string, error) {
	doc := chatDoc{
		UserID:      chat.UserID,
		UserMessage: chat.UserMessage,
		AIResponse:  chat.AIResponse,
		Sentiment:   chat.Sentiment,
		Confidence:  chat.Confidence,
		Timestamp:   time.Now().UTC(),
	}
	res, err := s.db.Collection(collChats).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert chat: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetRecentChats returns the most recent limit exchanges in
// chronological order; the newest-first page is reversed.
func (s *Store) GetRecentChats(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error) {
	chats, err := s.queryChats(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(chats)-1; i < j; i, j = i+1, j-1 {
		chats[i], chats[j] = chats[j], chats[i]
	}
	return chats, nil
}

// GetChatHistory returns the most recent limit exchanges newest-first.
func (s *Store) GetChatHistory(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error) {
	return s.queryChats(ctx, userID, limit)
}

func (s *Store) queryChats(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.db.Collection(collChats).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer cur.Close(ctx)

	var chats []*domain.ChatMessage
	for cur.Next(ctx) {
		var doc chatDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode chat: %w", err)
		}
		chats = append(chats, doc.toDomain())
	}
	return chats, cur.Err()
}
