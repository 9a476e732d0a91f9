package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Verification is a pending email-proof record, one-to-one with a user.
// It is created at signup (and on email change), and deleted the moment
// its code is redeemed, which makes redemption single-use.
type Verification struct {
	ID        int64
	Code      string
	UserID    int64
	User      *User
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewVerificationCode returns a fresh opaque code: a v4 UUID with the
// dashes stripped.
func NewVerificationCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
