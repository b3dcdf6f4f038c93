package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mindmate/internal/domain"
	"mindmate/internal/security"
	"mindmate/internal/service"
)

func newAuthService(st *MockStore) *service.AuthService {
	tokenSvc := security.NewTokenService("secret", time.Hour)
	hasher := security.NewPasswordHasher(4) // low cost for tests
	return service.NewAuthService(st, tokenSvc, hasher)
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		st := new(MockStore)
		svc := newAuthService(st)

		var savedHash string
		st.On("CreateUser", mock.Anything, "newuser", "new@example.com", mock.MatchedBy(func(h string) bool {
			savedHash = h
			return h != "" && h != "Password1!"
		})).Return("1", nil)
		st.On("GetUserByID", mock.Anything, "1").Return(&domain.User{
			ID:       "1",
			Username: "newuser",
			Email:    "new@example.com",
			IsActive: true,
		}, nil)

		user, err := svc.Register(context.Background(), service.RegisterInput{
			Username: "newuser",
			Email:    "new@example.com",
			Password: "Password1!",
		})
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "newuser", user.Username)
		assert.NotEqual(t, "Password1!", savedHash)
	})

	t.Run("MissingFields", func(t *testing.T) {
		st := new(MockStore)
		svc := newAuthService(st)

		_, err := svc.Register(context.Background(), service.RegisterInput{
			Username: "  ",
			Email:    "new@example.com",
			Password: "Password1!",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		st.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		st := new(MockStore)
		svc := newAuthService(st)

		st.On("CreateUser", mock.Anything, "taken", "taken@example.com", mock.Anything).
			Return("", domain.ErrDuplicateKey)

		user, err := svc.Register(context.Background(), service.RegisterInput{
			Username: "taken",
			Email:    "taken@example.com",
			Password: "Password1!",
		})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	})
}

func TestLogin(t *testing.T) {
	hasher := security.NewPasswordHasher(4)
	hash, err := hasher.Hash("Password1!")
	assert.NoError(t, err)

	activeUser := &domain.User{
		ID:           "7",
		Username:     "user",
		Email:        "user@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	t.Run("Success", func(t *testing.T) {
		st := new(MockStore)
		svc := newAuthService(st)

		st.On("GetUserByEmail", mock.Anything, "user@example.com").Return(activeUser, nil)

		resp, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "user@example.com",
			Password: "Password1!",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, "7", resp.User.ID)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		st := new(MockStore)
		svc := newAuthService(st)

		st.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

		resp, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "nobody@example.com",
			Password: "Password1!",
		})
		assert.Nil(t, resp)
		assert.Equal(t, service.ErrInvalidCredentials, err)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		st := new(MockStore)
		svc := newAuthService(st)

		st.On("GetUserByEmail", mock.Anything, "user@example.com").Return(activeUser, nil)

		resp, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "user@example.com",
			Password: "wrong",
		})
		assert.Nil(t, resp)
		// The same generic error as for an unknown email.
		assert.Equal(t, service.ErrInvalidCredentials, err)
	})

	t.Run("InactiveUser", func(t *testing.T) {
		st := new(MockStore)
		svc := newAuthService(st)

		inactive := *activeUser
		inactive.IsActive = false
		st.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&inactive, nil)

		resp, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "user@example.com",
			Password: "Password1!",
		})
		assert.Nil(t, resp)
		assert.Equal(t, service.ErrInvalidCredentials, err)
	})
}
