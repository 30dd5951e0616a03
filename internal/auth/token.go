package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"movie-catalog-api/internal/model"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// Claims is the verified content of a presented token.
type Claims struct {
	Username  string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// TokenManager issues and validates HS256-signed tokens. It holds no state
// beyond the signing secret, so issuance and validation are safe to call
// from any number of goroutines.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager fails when the secret is empty rather than signing
// tokens with a worthless key.
func NewTokenManager(secret string) (*TokenManager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token signing secret is required")
	}

	return &TokenManager{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}, nil
}

// NewTokenManagerAt is NewTokenManager with an injectable clock. Tests use
// it to mint tokens at arbitrary instants.
func NewTokenManagerAt(secret string, now func() time.Time) (*TokenManager, error) {
	m, err := NewTokenManager(secret)
	if err != nil {
		return nil, err
	}
	if now != nil {
		m.now = now
	}
	return m, nil
}

// Issue signs a token asserting the given username and role, expiring
// TokenTTL from now.
func (m *TokenManager) Issue(username string, role string) (string, time.Time, error) {
	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": role,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Validate verifies the signature and expiry of a presented token and
// returns its claims. Every failure maps to model.ErrUnauthorized; callers
// get no detail that could distinguish a forged token from an expired one.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrUnauthorized
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !parsed.Valid {
		return nil, model.ErrUnauthorized
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrUnauthorized
	}

	claims := &Claims{}
	claims.Username, _ = claimsMap["sub"].(string)
	claims.Role, _ = claimsMap["role"].(string)
	claims.TokenID, _ = claimsMap["jti"].(string)
	if exp, expErr := claimsMap.GetExpirationTime(); expErr == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	if claims.Username == "" {
		return nil, model.ErrUnauthorized
	}

	return claims, nil
}
