// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripmate/internal/models"
)

var (
	// ErrNotFound is returned when a single-row lookup matches zero rows.
	ErrNotFound = errors.New("row not found")

	// ErrCodeTaken is returned by CreateGroup when the join code is already used.
	ErrCodeTaken = errors.New("group code already in use")

	// ErrUnknownDestination is returned by CreateGroup when DestinationID is
	// not in the destination table.
	ErrUnknownDestination = errors.New("destination does not exist")
)

// Store is the data gateway for the groups, users and destination tables.
// Callers depend on the narrower interfaces declared next to them; this one
// exists so a backend can be checked against all of them at once.
type Store interface {
	GroupStore
	UserStore
	DestinationStore

	// Close releases any resources held by the store.
	Close() error
}

// GroupStore covers the groups table.
type GroupStore interface {
	// CreateGroup inserts the group with its members and requests.
	// group.ID and group.CreatedAt are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup returns ErrNotFound when no group has the ID.
	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)

	// GetGroupByCode returns ErrNotFound when no group has the code.
	GetGroupByCode(ctx context.Context, code string) (*models.Group, error)

	// ListGroupsForMember returns every group whose member list contains userID.
	ListGroupsForMember(ctx context.Context, userID string) ([]models.Group, error)

	// AddGroupMember appends userID to the member list in a single statement.
	// It reports false when the user was already a member.
	AddGroupMember(ctx context.Context, groupID int64, userID string) (bool, error)

	// AddGroupRequest appends a request to the group.
	AddGroupRequest(ctx context.Context, groupID int64, req models.Request) error
}

// UserStore covers the users table.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID and GetUserByEmail return ErrNotFound for unknown users.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// ListUsers returns the whole directory.
	ListUsers(ctx context.Context) ([]models.User, error)

	// AppendNotification adds one record to the user's notification list.
	AppendNotification(ctx context.Context, userID string, n models.Notification) error
	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)

	// AddSavedTrip and RemoveSavedTrip maintain the user's saved destinations.
	AddSavedTrip(ctx context.Context, userID string, destinationID int64) error
	RemoveSavedTrip(ctx context.Context, userID string, destinationID int64) error
	ListSavedTrips(ctx context.Context, userID string) ([]int64, error)
}

// DestinationStore covers the destination table.
type DestinationStore interface {
	GetDestination(ctx context.Context, id int64) (*models.Destination, error)

	// FindDestinationByCoordinates matches latitude and longitude exactly.
	// It returns ErrNotFound when nothing is at those coordinates.
	FindDestinationByCoordinates(ctx context.Context, c models.Coordinates) (*models.Destination, error)

	// CreateDestination populates dest.ID.
	CreateDestination(ctx context.Context, dest *models.Destination) error

	UpdateDestinationImages(ctx context.Context, id int64, images []string, primary string) error
}
