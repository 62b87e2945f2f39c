package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/internal/api"
	"github.com/mmynk/tripmate/internal/lifecycle"
	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/notify"
	"github.com/mmynk/tripmate/internal/places"
)

// mapPath is where a client opens the map of a group after create or join.
func mapPath(groupID int64) string {
	return fmt.Sprintf("/groups/%d/map", groupID)
}

func toAPIGroup(g *models.Group) *api.Group {
	out := &api.Group{
		ID:            g.ID,
		Name:          g.Name,
		Code:          g.Code,
		Type:          string(g.Type),
		DestinationID: g.DestinationID,
		LeaderID:      g.LeaderID,
		Members:       g.Members,
		CreatorID:     g.CreatorID,
		CreatedAt:     g.CreatedAt,
	}
	for _, r := range g.Requests {
		out.Requests = append(out.Requests, api.Request{UserID: r.UserID, InvitedAt: r.InvitedAt, Status: r.Status})
	}
	return out
}

func toAPIGroups(groups []models.Group) []*api.Group {
	out := make([]*api.Group, len(groups))
	for i := range groups {
		out[i] = toAPIGroup(&groups[i])
	}
	return out
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

func toAPIDelivery(r notify.Result) api.Delivery {
	d := api.Delivery{UserID: r.UserID}
	if r.Err != nil {
		d.Error = r.Err.Error()
	}
	return d
}

func toAPIDestination(d *models.Destination) *api.Destination {
	return &api.Destination{
		ID:           d.ID,
		Name:         d.Name,
		Location:     d.Location,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		Rating:       d.Rating,
		Images:       d.Images,
		PrimaryImage: d.PrimaryImage,
	}
}

func toAPIPlace(p places.Place) api.Place {
	return api.Place(p)
}

func fromAPIPlace(p api.Place) places.Place {
	return places.Place(p)
}

// lifecycleError maps a lifecycle error to a Connect error. Backend messages
// reach the client unchanged.
func lifecycleError(err error) error {
	var verr *lifecycle.ValidationError
	var berr *lifecycle.BackendError
	switch {
	case errors.Is(err, lifecycle.ErrNotAuthenticated):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.As(err, &verr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, lifecycle.ErrGroupNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, lifecycle.ErrAlreadyMember):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.As(err, &berr):
		return connect.NewError(connect.CodeInternal, berr)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
