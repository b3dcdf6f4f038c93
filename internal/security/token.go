package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the facts a session token carries once a user has
// authenticated: identifier, username and email.
type SessionClaims struct {
	UserID   string
	Username string
	Email    string
}

// TokenService wraps JWT creation and validation for session tokens.
type TokenService struct {
	secret    []byte
	expiresIn time.Duration
}

func NewTokenService(secret string, expiresIn time.Duration) *TokenService {
	return &TokenService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
	}
}

// CreateForUser creates a session JWT for the given user.
func (t *TokenService) CreateForUser(s SessionClaims) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      s.UserID,
		"username": s.Username,
		"email":    s.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(t.expiresIn).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates a token and returns its session claims.
func (t *TokenService) Parse(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	return &SessionClaims{UserID: sub, Username: username, Email: email}, nil
}
