package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"mindmate/internal/ai"
	"mindmate/internal/domain"
)

// AIClient is the outbound AI service surface the chat flow needs.
type AIClient interface {
	Chat(ctx context.Context, req *ai.ChatRequest) (*ai.ChatResponse, error)
	Health(ctx context.Context) bool
}

const (
	chatRateAction = "chat"
	// contextHistorySize bounds the prior exchanges sent to the AI
	// service for conversational context.
	contextHistorySize = 5

	defaultHistoryLimit = 50
	maxHistoryLimit     = 1000
)

// ChatService runs the chat submission flow: validate, rate-limit
// check, AI round trip, persist the full exchange, rate-limit record.
type ChatService struct {
	store            domain.Store
	ai               AIClient
	maxMessageLength int
	log              zerolog.Logger
}

func NewChatService(store domain.Store, aiClient AIClient, maxMessageLength int, log zerolog.Logger) *ChatService {
	return &ChatService{
		store:            store,
		ai:               aiClient,
		maxMessageLength: maxMessageLength,
		log:              log,
	}
}

type SendInput struct {
	UserID   string
	Username string
	Message  string
	Action   string
	Sender   string
}

type SendResult struct {
	ChatID     string  `json:"chat_id,omitempty"`
	Reply      string  `json:"reply"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	// Fallback marks a canned reply substituted after an AI service
	// failure; nothing is persisted in that case.
	Fallback bool `json:"-"`
}

// Send submits one user message. On AI service failure it returns the
// fixed fallback reply instead of an error, so the user always gets
// some supportive response.
func (s *ChatService) Send(ctx context.Context, in SendInput) (*SendResult, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	if len(message) > s.maxMessageLength {
		return nil, fmt.Errorf("%w: message too long", domain.ErrInvalidInput)
	}
	switch in.Sender {
	case "", "user":
		// the only sender that reaches the AI service
	case "ai":
		return nil, fmt.Errorf("%w: AI messages should not be saved directly", domain.ErrInvalidInput)
	default:
		return nil, fmt.Errorf("%w: invalid sender", domain.ErrInvalidInput)
	}

	allowed, err := s.store.CheckRateLimit(ctx, in.UserID, chatRateAction)
	if err != nil {
		return nil, fmt.Errorf("check rate limit: %w", err)
	}
	if !allowed {
		return nil, domain.ErrRateLimited
	}

	action := in.Action
	if action == "" {
		action = "chat"
	}

	req := &ai.ChatRequest{
		Message:   message,
		UserID:    in.UserID,
		Action:    action,
		Timestamp: formatTimestamp(time.Now()),
		UserContext: &ai.UserContext{
			Username: in.Username,
			UserID:   in.UserID,
		},
	}
	if history, err := s.store.GetRecentChats(ctx, in.UserID, contextHistorySize); err != nil {
		s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("chat history unavailable for AI context")
	} else {
		for _, c := range history {
			req.ChatHistory = append(req.ChatHistory, ai.HistoryEntry{
				UserMessage: c.UserMessage,
				AIResponse:  c.AIResponse,
				Sentiment:   c.Sentiment,
				Timestamp:   formatTimestamp(c.CreatedAt),
			})
		}
	}

	resp, err := s.ai.Chat(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("AI service call failed, substituting fallback")
		fb := ai.Fallback()
		return &SendResult{
			Reply:      fb.Reply,
			Sentiment:  fb.Sentiment,
			Confidence: fb.Confidence,
			Fallback:   true,
		}, nil
	}

	chatID, err := s.store.SaveChat(ctx, &domain.ChatMessage{
		UserID:      in.UserID,
		UserMessage: message,
		AIResponse:  resp.Reply,
		Sentiment:   resp.Sentiment,
		Confidence:  resp.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("save chat: %w", err)
	}

	// Advisory record; a failure here must not fail the exchange.
	if err := s.store.RecordRateLimit(ctx, in.UserID, chatRateAction); err != nil {
		s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("record rate limit failed")
	}

	s.log.Info().Str("user_id", in.UserID).Str("chat_id", chatID).Str("action", action).Msg("chat saved")

	return &SendResult{
		ChatID:     chatID,
		Reply:      resp.Reply,
		Sentiment:  resp.Sentiment,
		Confidence: resp.Confidence,
	}, nil
}

// History returns the most recent exchanges newest-first.
func (s *ChatService) History(ctx context.Context, userID string, limit int) ([]ChatEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	chats, err := s.store.GetChatHistory(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get chat history: %w", err)
	}
	return toChatEntries(chats), nil
}

// AIHealthy reports whether the AI service answers its health probe.
func (s *ChatService) AIHealthy(ctx context.Context) bool {
	return s.ai.Health(ctx)
}
