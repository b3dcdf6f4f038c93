package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mindmate/internal/domain"
)

// UserService exposes profile reads and edits.
type UserService struct {
	store domain.Store
}

func NewUserService(store domain.Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.store.GetUserByID(ctx, id)
}

// UpdateProfile changes username and email only; the password hash and
// activity flag are untouched by this path.
func (s *UserService) UpdateProfile(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	upd.Username = strings.TrimSpace(upd.Username)
	upd.Email = strings.TrimSpace(upd.Email)
	if upd.Username == "" || upd.Email == "" {
		return nil, fmt.Errorf("%w: username and email are required", domain.ErrInvalidInput)
	}

	if _, err := s.store.UpdateUser(ctx, id, upd); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.store.GetUserByID(ctx, id)
}
