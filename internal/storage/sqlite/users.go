package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
)

const userColumns = "id, username, email, avatar, password_hash, created_at"

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		user.ID,
		user.Username,
		user.Email,
		user.Avatar,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	return scanUser(row)
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row)
}

// ListUsers returns every user ordered by username.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY username, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// AppendNotification adds one notification row for the user.
func (s *SQLiteStore) AppendNotification(ctx context.Context, userID string, n models.Notification) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO notifications (user_id, group_id, invite_date, is_leader) VALUES (?, ?, ?, ?)",
		userID, n.GroupID, n.InvitedAt, n.IsLeader,
	)
	if err != nil {
		return fmt.Errorf("failed to append notification: %w", err)
	}
	return nil
}

// ListNotifications returns the user's notifications in the order they were appended.
func (s *SQLiteStore) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT group_id, invite_date, is_leader FROM notifications WHERE user_id = ? ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.GroupID, &n.InvitedAt, &n.IsLeader); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}
	return notifications, nil
}

// AddSavedTrip records destinationID in the user's saved trips. Saving twice is a no-op.
func (s *SQLiteStore) AddSavedTrip(ctx context.Context, userID string, destinationID int64) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO saved_trips (user_id, destination_id) VALUES (?, ?)",
		userID, destinationID,
	)
	if err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}
	return nil
}

// RemoveSavedTrip drops destinationID from the user's saved trips.
func (s *SQLiteStore) RemoveSavedTrip(ctx context.Context, userID string, destinationID int64) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM saved_trips WHERE user_id = ? AND destination_id = ?",
		userID, destinationID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove saved trip: %w", err)
	}
	return nil
}

// ListSavedTrips returns the saved destination IDs in ascending order.
func (s *SQLiteStore) ListSavedTrips(ctx context.Context, userID string) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT destination_id FROM saved_trips WHERE user_id = ? ORDER BY destination_id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved trips: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan saved trip: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved trips: %w", err)
	}
	return ids, nil
}

func (s *SQLiteStore) requireUser(ctx context.Context, userID string) error {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id = ?", userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	return nil
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Avatar,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}
