package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mindmate/internal/ai"
	"mindmate/internal/domain"
	"mindmate/internal/service"
)

func newChatService(st *MockStore, aiClient *MockAIClient) *service.ChatService {
	return service.NewChatService(st, aiClient, 1000, zerolog.Nop())
}

func TestChatSend(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		st := new(MockStore)
		aiClient := new(MockAIClient)
		svc := newChatService(st, aiClient)

		st.On("CheckRateLimit", mock.Anything, "1", "chat").Return(true, nil)
		st.On("GetRecentChats", mock.Anything, "1", 5).Return([]*domain.ChatMessage{
			{UserMessage: "earlier", AIResponse: "reply", Sentiment: "NEUTRAL", CreatedAt: time.Now()},
		}, nil)
		aiClient.On("Chat", mock.Anything, mock.MatchedBy(func(req *ai.ChatRequest) bool {
			return req.Message == "hello" &&
				req.UserContext != nil && req.UserContext.Username == "alice" &&
				len(req.ChatHistory) == 1
		})).Return(&ai.ChatResponse{
			Reply:      "Hi there",
			Sentiment:  "POSITIVE",
			Confidence: 0.9,
		}, nil)
		st.On("SaveChat", mock.Anything, mock.MatchedBy(func(c *domain.ChatMessage) bool {
			return c.UserID == "1" && c.UserMessage == "hello" && c.AIResponse == "Hi there"
		})).Return("42", nil)
		st.On("RecordRateLimit", mock.Anything, "1", "chat").Return(nil)

		res, err := svc.Send(context.Background(), service.SendInput{
			UserID:   "1",
			Username: "alice",
			Message:  "hello",
		})
		assert.NoError(t, err)
		assert.Equal(t, "42", res.ChatID)
		assert.Equal(t, "Hi there", res.Reply)
		assert.False(t, res.Fallback)
		st.AssertCalled(t, "RecordRateLimit", mock.Anything, "1", "chat")
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		st := new(MockStore)
		svc := newChatService(st, new(MockAIClient))

		_, err := svc.Send(context.Background(), service.SendInput{UserID: "1", Message: "   "})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("MessageTooLong", func(t *testing.T) {
		st := new(MockStore)
		svc := newChatService(st, new(MockAIClient))

		_, err := svc.Send(context.Background(), service.SendInput{
			UserID:  "1",
			Message: strings.Repeat("a", 1001),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("AISenderRejected", func(t *testing.T) {
		st := new(MockStore)
		svc := newChatService(st, new(MockAIClient))

		_, err := svc.Send(context.Background(), service.SendInput{
			UserID:  "1",
			Message: "hello",
			Sender:  "ai",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "AI messages should not be saved directly")
	})

	t.Run("RateLimited", func(t *testing.T) {
		st := new(MockStore)
		aiClient := new(MockAIClient)
		svc := newChatService(st, aiClient)

		st.On("CheckRateLimit", mock.Anything, "1", "chat").Return(false, nil)

		_, err := svc.Send(context.Background(), service.SendInput{UserID: "1", Message: "hello"})
		assert.ErrorIs(t, err, domain.ErrRateLimited)
		aiClient.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
	})

	t.Run("AIFailureFallsBack", func(t *testing.T) {
		st := new(MockStore)
		aiClient := new(MockAIClient)
		svc := newChatService(st, aiClient)

		st.On("CheckRateLimit", mock.Anything, "1", "chat").Return(true, nil)
		st.On("GetRecentChats", mock.Anything, "1", 5).Return([]*domain.ChatMessage{}, nil)
		aiClient.On("Chat", mock.Anything, mock.Anything).Return(nil, ai.ErrUnavailable)

		res, err := svc.Send(context.Background(), service.SendInput{UserID: "1", Message: "hello"})
		assert.NoError(t, err)
		assert.True(t, res.Fallback)
		assert.Equal(t, ai.Fallback().Reply, res.Reply)
		assert.Equal(t, "NEUTRAL", res.Sentiment)
		assert.Equal(t, 0.5, res.Confidence)
		// Fallback replies are never persisted.
		st.AssertNotCalled(t, "SaveChat", mock.Anything, mock.Anything)
		st.AssertNotCalled(t, "RecordRateLimit", mock.Anything, "1", "chat")
	})

	t.Run("HistoryFailureNotFatal", func(t *testing.T) {
		st := new(MockStore)
		aiClient := new(MockAIClient)
		svc := newChatService(st, aiClient)

		st.On("CheckRateLimit", mock.Anything, "1", "chat").Return(true, nil)
		st.On("GetRecentChats", mock.Anything, "1", 5).Return(nil, errors.New("backend down"))
		aiClient.On("Chat", mock.Anything, mock.MatchedBy(func(req *ai.ChatRequest) bool {
			return len(req.ChatHistory) == 0
		})).Return(&ai.ChatResponse{Reply: "ok", Sentiment: "NEUTRAL", Confidence: 0.6}, nil)
		st.On("SaveChat", mock.Anything, mock.Anything).Return("9", nil)
		st.On("RecordRateLimit", mock.Anything, "1", "chat").Return(nil)

		res, err := svc.Send(context.Background(), service.SendInput{UserID: "1", Message: "hello"})
		assert.NoError(t, err)
		assert.Equal(t, "ok", res.Reply)
	})
}

func TestChatHistory(t *testing.T) {
	st := new(MockStore)
	svc := newChatService(st, new(MockAIClient))

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st.On("GetChatHistory", mock.Anything, "1", 50).Return([]*domain.ChatMessage{
		{UserMessage: "hi", AIResponse: "hello", Sentiment: "POSITIVE", Confidence: 0.8, CreatedAt: created},
	}, nil)

	entries, err := svc.History(context.Background(), "1", 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "2026-03-01 12:00:00", entries[0].Timestamp)
}

func TestChatHistoryLimitClamped(t *testing.T) {
	st := new(MockStore)
	svc := newChatService(st, new(MockAIClient))

	st.On("GetChatHistory", mock.Anything, "1", 1000).Return([]*domain.ChatMessage{}, nil)

	_, err := svc.History(context.Background(), "1", 5000)
	assert.NoError(t, err)
	st.AssertCalled(t, "GetChatHistory", mock.Anything, "1", 1000)
}
