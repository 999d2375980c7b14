package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stayhub/lodging-api/internal/core/domain"
	"github.com/stayhub/lodging-api/internal/core/ports"
)

// DefaultTokenTTL is one week.
const DefaultTokenTTL = 7 * 24 * time.Hour

type accessClaims struct {
	UserID string `json:"_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs claims with an absolute expiry of now+ttl.
func (s *TokenService) Issue(claims ports.TokenClaims) (string, error) {
	if len(s.secret) == 0 {
		return "", domain.ErrSigningKey
	}

	now := s.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		UserID: claims.UserID,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSigningKey, err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry. Every failure wraps
// domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	if len(s.secret) == 0 {
		return nil, domain.ErrSigningKey
	}

	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidToken, tokenFailure(err))
	}
	if !parsed.Valid || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{UserID: claims.UserID, Role: claims.Role}, nil
}

func tokenFailure(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "bad signature"
	default:
		return err.Error()
	}
}
