// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a shopper account. The cart lives on the user record.
type User struct {
	ID                  uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email               string     // Login identifier and order contact.
	PasswordHash        string     // bcrypt hash of the user's password.
	ResetTokenHash      string     // SHA-256 of the outstanding password reset token, empty when none.
	ResetTokenExpiresAt *time.Time // Expiry of the outstanding reset token.
	Cart                Cart       // The user's current cart.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasValidResetToken reports whether tokenHash matches the stored reset token and it has not expired.
func (u *User) HasValidResetToken(tokenHash string, now time.Time) bool {
	if u.ResetTokenHash == "" || u.ResetTokenExpiresAt == nil {
		return false
	}

	return u.ResetTokenHash == tokenHash && now.Before(*u.ResetTokenExpiresAt)
}

// ClearResetToken drops any outstanding reset token.
func (u *User) ClearResetToken() {
	u.ResetTokenHash = ""
	u.ResetTokenExpiresAt = nil
}
