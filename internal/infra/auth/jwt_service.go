package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const resetTokenType = "reset"

// jwtService signs password reset tokens with HMAC-SHA256.
type jwtService struct {
	resetSecret []byte
	now         func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Reset == "" {
		return nil, errors.New("reset token secret must be provided")
	}

	return &jwtService{
		resetSecret: []byte(cfg.SecretKey.Reset),
		now:         time.Now,
	}, nil
}

// GenerateResetToken creates a reset token for userID that expires after ttl.
func (s *jwtService) GenerateResetToken(userID uuid.UUID, ttl time.Duration) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(ttl)

	claims := &service.ResetClaims{
		UserID: userID,
		Type:   resetTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.resetSecret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign reset token")
	}

	return token, expiresAt, nil
}

// ValidateResetToken checks the signature, expiry and token type.
func (s *jwtService) ValidateResetToken(tokenString string) (*service.ResetClaims, error) {
	claims := &service.ResetClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.resetSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse reset token")
	}
	if !token.Valid || claims.Type != resetTokenType {
		return nil, errors.New("invalid reset token")
	}

	return claims, nil
}

// HashToken returns the hex SHA-256 of the token.
func (s *jwtService) HashToken(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))

	return hex.EncodeToString(sum[:])
}
