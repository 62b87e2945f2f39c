package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/internal/api"
	"github.com/mmynk/tripmate/internal/destinations"
	"github.com/mmynk/tripmate/internal/lifecycle"
	"github.com/mmynk/tripmate/internal/middleware"
	"github.com/mmynk/tripmate/internal/models"
)

// Directory is the cached user list behind SearchUsers.
type Directory interface {
	Ensure(ctx context.Context) error
	Filter(query, currentUserID string, exclude []string) []models.User
}

// NotificationReader lists a user's invitation notifications.
type NotificationReader interface {
	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)
}

// UserService implements the Connect UserService.
type UserService struct {
	directory     Directory
	notifications NotificationReader
	catalog       *destinations.Catalog
}

// NewUserService creates a UserService.
func NewUserService(directory Directory, notifications NotificationReader, catalog *destinations.Catalog) *UserService {
	return &UserService{directory: directory, notifications: notifications, catalog: catalog}
}

// SearchUsers filters the directory, leaving out the caller and the excluded IDs.
func (s *UserService) SearchUsers(ctx context.Context, req *connect.Request[api.SearchUsersRequest]) (*connect.Response[api.SearchUsersResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, lifecycleError(lifecycle.ErrNotAuthenticated)
	}

	if err := s.directory.Ensure(ctx); err != nil {
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	matches := s.directory.Filter(req.Msg.Query, userID, req.Msg.ExcludeIDs)
	users := make([]*api.User, len(matches))
	for i := range matches {
		users[i] = toAPIUser(&matches[i])
	}
	return connect.NewResponse(&api.SearchUsersResponse{Users: users}), nil
}

// ListNotifications returns the caller's invitation notifications, oldest first.
func (s *UserService) ListNotifications(ctx context.Context, req *connect.Request[api.ListNotificationsRequest]) (*connect.Response[api.ListNotificationsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, lifecycleError(lifecycle.ErrNotAuthenticated)
	}

	list, err := s.notifications.ListNotifications(ctx, userID)
	if err != nil {
		slog.Error("ListNotifications failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Notification, len(list))
	for i, n := range list {
		out[i] = api.Notification{GroupID: n.GroupID, InvitedAt: n.InvitedAt, IsLeader: n.IsLeader}
	}
	return connect.NewResponse(&api.ListNotificationsResponse{Notifications: out}), nil
}

// SaveTrip bookmarks or un-bookmarks a destination for the caller.
func (s *UserService) SaveTrip(ctx context.Context, req *connect.Request[api.SaveTripRequest]) (*connect.Response[api.SaveTripResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, lifecycleError(lifecycle.ErrNotAuthenticated)
	}

	ids, err := s.catalog.SaveTrip(ctx, userID, req.Msg.DestinationID, req.Msg.Saved)
	if errors.Is(err, destinations.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		slog.Error("SaveTrip failed", "user_id", userID, "destination_id", req.Msg.DestinationID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.SaveTripResponse{SavedTrips: ids}), nil
}

// ListSavedTrips returns the caller's saved destination IDs.
func (s *UserService) ListSavedTrips(ctx context.Context, req *connect.Request[api.ListSavedTripsRequest]) (*connect.Response[api.ListSavedTripsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, lifecycleError(lifecycle.ErrNotAuthenticated)
	}

	ids, err := s.catalog.SavedTrips(ctx, userID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.ListSavedTripsResponse{SavedTrips: ids}), nil
}
