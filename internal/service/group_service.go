package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/internal/api"
	"github.com/mmynk/tripmate/internal/lifecycle"
	"github.com/mmynk/tripmate/internal/middleware"
	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
)

// GroupReader serves the read-only group RPCs.
type GroupReader interface {
	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)
	ListGroupsForMember(ctx context.Context, userID string) ([]models.Group, error)
}

// GroupService implements the Connect GroupService on top of the lifecycle manager.
type GroupService struct {
	manager  *lifecycle.Manager
	groups   GroupReader
	mapDelay time.Duration
}

// NewGroupService creates a GroupService. mapDelay is reported to clients as
// the pause before opening the group map.
func NewGroupService(manager *lifecycle.Manager, groups GroupReader, mapDelay time.Duration) *GroupService {
	return &GroupService{manager: manager, groups: groups, mapDelay: mapDelay}
}

// CreateGroup fills a fresh form from the request and submits it.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"type", req.Msg.Type,
		"members_count", len(req.Msg.MemberIDs),
	)

	form := lifecycle.NewForm()
	form.GroupName = req.Msg.Name
	if req.Msg.Type != "" {
		form.GroupType = models.GroupType(req.Msg.Type)
	}
	form.DestinationID = req.Msg.DestinationID
	form.Destination = req.Msg.Destination
	if req.Msg.LeaderID != "" {
		form.SelectLeader(models.User{ID: req.Msg.LeaderID})
	}
	for _, id := range req.Msg.MemberIDs {
		form.AddMember(models.User{ID: id})
	}

	result, err := s.manager.CreateGroup(ctx, form)
	if err != nil {
		return nil, lifecycleError(err)
	}

	resp := &api.CreateGroupResponse{
		Group:      toAPIGroup(result.Group),
		Status:     result.Status.String(),
		Groups:     toAPIGroups(result.Groups),
		MapPath:    mapPath(result.Group.ID),
		MapDelayMs: s.mapDelay.Milliseconds(),
	}
	for _, d := range result.Deliveries {
		resp.Deliveries = append(resp.Deliveries, toAPIDelivery(d))
	}
	return connect.NewResponse(resp), nil
}

// JoinGroup adds the caller to the group with the given code.
func (s *GroupService) JoinGroup(ctx context.Context, req *connect.Request[api.JoinGroupRequest]) (*connect.Response[api.JoinGroupResponse], error) {
	slog.Info("JoinGroup request received", "code", req.Msg.Code)

	result, err := s.manager.JoinGroup(ctx, req.Msg.Code)
	if err != nil {
		return nil, lifecycleError(err)
	}

	return connect.NewResponse(&api.JoinGroupResponse{
		Group:         toAPIGroup(result.Group),
		AlreadyMember: result.AlreadyMember,
		Groups:        toAPIGroups(result.Groups),
		MapPath:       mapPath(result.Group.ID),
		MapDelayMs:    s.mapDelay.Milliseconds(),
	}), nil
}

// InviteMember records a pending request on an existing group.
func (s *GroupService) InviteMember(ctx context.Context, req *connect.Request[api.InviteMemberRequest]) (*connect.Response[api.InviteMemberResponse], error) {
	slog.Info("InviteMember request received", "group_id", req.Msg.GroupID, "user_id", req.Msg.UserID)

	if req.Msg.UserID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("user_id is required"))
	}

	result, err := s.manager.InviteMember(ctx, req.Msg.GroupID, req.Msg.UserID, req.Msg.IsLeader)
	if err != nil {
		return nil, lifecycleError(err)
	}

	return connect.NewResponse(&api.InviteMemberResponse{
		Status:   result.Status.String(),
		Delivery: toAPIDelivery(result.Delivery),
	}), nil
}

// ListGroups returns the groups the caller is a member of.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, lifecycleError(lifecycle.ErrNotAuthenticated)
	}

	groups, err := s.groups.ListGroupsForMember(ctx, userID)
	if err != nil {
		slog.Error("ListGroups failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ListGroupsResponse{Groups: toAPIGroups(groups)}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	group, err := s.groups.GetGroup(ctx, req.Msg.GroupID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, lifecycle.ErrGroupNotFound)
	}
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.GetGroupResponse{Group: toAPIGroup(group)}), nil
}
