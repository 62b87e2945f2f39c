package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
// The group lifecycle only reads users and appends to their notifications.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the public handle shown in member search.
	Username string

	// Email is the user's email address (unique).
	Email string

	// Avatar is a reference to the user's profile image, if any.
	Avatar string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a user with a fresh ID.
func NewUser(email, username, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

// Notification is an invitation record appended to an invitee's profile.
type Notification struct {
	GroupID   int64
	InvitedAt int64
	IsLeader  bool
}
