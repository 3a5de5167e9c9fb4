package http

import (
	"errors"
	"fmt"
	"time"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt"
)

// tokenTTL bounds how long an issued bearer token stays valid.
const tokenTTL = 12 * time.Hour

// ErrInvalidToken is returned for expired, malformed or forged tokens.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the HS256 bearer tokens used by the API.
// A token carries only the principal: the user id and role. Everything else
// is looked up fresh per request.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue creates a signed token for the principal.
func (s *TokenService) Issue(p auth.Principal) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": p.ID().String(),
		"role":    p.Role().String(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})

	return token.SignedString(s.secret)
}

// Verify parses and validates a token string, returning the principal it
// carries. Any failure collapses into ErrInvalidToken; callers answer 401
// without leaking why verification failed.
func (s *TokenService) Verify(tokenString string) (auth.Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return auth.Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Principal{}, ErrInvalidToken
	}

	rawID, ok := claims["user_id"].(string)
	if !ok {
		return auth.Principal{}, ErrInvalidToken
	}
	rawRole, ok := claims["role"].(string)
	if !ok {
		return auth.Principal{}, ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return auth.Principal{}, ErrInvalidToken
	}
	role, err := auth.RoleFromString(rawRole)
	if err != nil {
		return auth.Principal{}, ErrInvalidToken
	}

	p, err := auth.NewPrincipal(id, role)
	if err != nil {
		return auth.Principal{}, ErrInvalidToken
	}

	return p, nil
}
