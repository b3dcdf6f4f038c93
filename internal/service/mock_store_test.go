package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mindmate/internal/ai"
	"mindmate/internal/domain"
)

// MockStore mocks the full persistence surface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateUser(ctx context.Context, username, email, passwordHash string) (string, error) {
	args := m.Called(ctx, username, email, passwordHash)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockStore) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockStore) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (bool, error) {
	args := m.Called(ctx, id, upd)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) SaveChat(ctx context.Context, chat *domain.ChatMessage) (string, error) {
	args := m.Called(ctx, chat)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetRecentChats(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChatMessage), args.Error(1)
}

func (m *MockStore) GetChatHistory(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChatMessage), args.Error(1)
}

func (m *MockStore) SaveMoodCheck(ctx context.Context, check *domain.MoodCheck) (string, error) {
	args := m.Called(ctx, check)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetMoodChecks(ctx context.Context, userID string, limit int) ([]*domain.MoodCheck, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MoodCheck), args.Error(1)
}

func (m *MockStore) CheckRateLimit(ctx context.Context, userID, action string) (bool, error) {
	args := m.Called(ctx, userID, action)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) RecordRateLimit(ctx context.Context, userID, action string) error {
	args := m.Called(ctx, userID, action)
	return args.Error(0)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) Close(ctx context.Context) error {
	return nil
}

// MockAIClient mocks the outbound AI service.
type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) Chat(ctx context.Context, req *ai.ChatRequest) (*ai.ChatResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.ChatResponse), args.Error(1)
}

func (m *MockAIClient) Health(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
