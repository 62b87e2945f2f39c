package auth

import (
	"context"

	"github.com/mmynk/tripmate/internal/models"
)

// Authenticator is the identity provider used by AuthService.
// The group lifecycle never sees it; it only reads the user ID the session carries.
type Authenticator interface {
	// Register creates a new user account with the given email, username and credential.
	Register(ctx context.Context, email, username, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
