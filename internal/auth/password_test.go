package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
)

type memoryUsers map[string]*models.User

func (m memoryUsers) CreateUser(ctx context.Context, user *models.User) error {
	m[user.Email] = user
	return nil
}

func (m memoryUsers) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m[email]; ok {
		return u, nil
	}
	return nil, storage.ErrNotFound
}

func (m memoryUsers) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func TestPasswordAuthenticator(t *testing.T) {
	a := NewPasswordAuthenticator(memoryUsers{})
	ctx := context.Background()

	if _, err := a.Register(ctx, "a@example.com", "alice", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("weak password: err = %v", err)
	}

	user, err := a.Register(ctx, " A@Example.com ", "alice", "correct horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "a@example.com" || user.ID == "" {
		t.Errorf("user = %+v", user)
	}

	if _, err := a.Register(ctx, "a@example.com", "again", "correct horse"); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate email: err = %v", err)
	}

	if _, err := a.Authenticate(ctx, "a@example.com", "correct horse"); err != nil {
		t.Errorf("Authenticate failed: %v", err)
	}
	if _, err := a.Authenticate(ctx, "a@example.com", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, err := a.Authenticate(ctx, "b@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v", err)
	}
}
