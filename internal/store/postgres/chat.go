package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"mindmate/internal/domain"
)

func (s *Store) SaveChat(ctx context.Context, chat *domain.ChatMessage) (string, error) {
	uid, err := parseID(chat.UserID)
	if err != nil {
		return "", err
	}
	var id int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO chats (user_id, user_message, ai_response, sentiment, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`, uid, chat.UserMessage, chat.AIResponse, chat.Sentiment, chat.Confidence).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert chat: %w", err)
	}
	return formatID(id), nil
}

// GetRecentChats returns the most recent limit exchanges in
// chronological order. The query pages newest-first; the page is
// reversed before returning.
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
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, user_message, ai_response, sentiment, confidence, created_at
		FROM chats
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	var chats []*domain.ChatMessage
	for rows.Next() {
		var (
			c           domain.ChatMessage
			id, chatUID int64
			sentiment   sql.NullString
			confidence  sql.NullFloat64
		)
		if err := rows.Scan(&id, &chatUID, &c.UserMessage, &c.AIResponse, &sentiment, &confidence, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		c.ID = formatID(id)
		c.UserID = formatID(chatUID)
		c.Sentiment = sentiment.String
		c.Confidence = confidence.Float64
		chats = append(chats, &c)
	}
	return chats, rows.Err()
}
