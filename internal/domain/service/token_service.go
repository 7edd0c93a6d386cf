package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ResetClaims defines the custom claims carried by a password reset token.
type ResetClaims struct {
	UserID uuid.UUID `json:"uid"`
	Type   string    `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService issues and validates single-purpose password reset tokens.
type TokenService interface {
	// GenerateResetToken creates a signed token for userID valid for ttl.
	GenerateResetToken(userID uuid.UUID, ttl time.Duration) (token string, expiresAt time.Time, err error)

	// ValidateResetToken checks signature, type and expiry.
	ValidateResetToken(tokenString string) (*ResetClaims, error)

	// HashToken returns the value stored server-side for a token, so a leaked table never reveals live tokens.
	HashToken(tokenString string) string
}
