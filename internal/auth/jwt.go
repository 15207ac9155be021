// Package auth validates the bearer tokens issued by the identity provider.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

const clockLeeway = 30 * time.Second

// Validator checks HS256 access tokens and extracts the user ID from the subject.
type Validator struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewValidator creates a token validator.
// secret must be at least 32 characters for HS256 security.
func NewValidator(secret, issuer string) *Validator {
	return &Validator{
		secret: []byte(secret),
		issuer: issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockLeeway),
		),
	}
}

// ValidateToken parses and validates an access token.
// Every failure wraps domain.ErrUnauthorized.
func (v *Validator) ValidateToken(_ context.Context, tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	var claims jwt.RegisteredClaims
	_, err := v.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w: %w", domain.ErrUnauthorized, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid subject %q: %w", claims.Subject, domain.ErrUnauthorized)
	}

	return userID, nil
}

// IssueToken signs a token for userID that the validator accepts until ttl elapses.
// Production tokens come from the identity provider; this serves local tooling and tests.
func (v *Validator) IssueToken(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    v.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
