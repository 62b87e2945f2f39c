package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const GroupServiceName = "tripmate.v1.GroupService"

const (
	GroupServiceCreateGroupProcedure  = "/tripmate.v1.GroupService/CreateGroup"
	GroupServiceJoinGroupProcedure    = "/tripmate.v1.GroupService/JoinGroup"
	GroupServiceInviteMemberProcedure = "/tripmate.v1.GroupService/InviteMember"
	GroupServiceListGroupsProcedure   = "/tripmate.v1.GroupService/ListGroups"
	GroupServiceGetGroupProcedure     = "/tripmate.v1.GroupService/GetGroup"
)

type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	JoinGroup(context.Context, *connect.Request[JoinGroupRequest]) (*connect.Response[JoinGroupResponse], error)
	InviteMember(context.Context, *connect.Request[InviteMemberRequest]) (*connect.Response[InviteMemberResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
}

func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(GroupServiceCreateGroupProcedure, connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...))
	mux.Handle(GroupServiceJoinGroupProcedure, connect.NewUnaryHandler(GroupServiceJoinGroupProcedure, svc.JoinGroup, opts...))
	mux.Handle(GroupServiceInviteMemberProcedure, connect.NewUnaryHandler(GroupServiceInviteMemberProcedure, svc.InviteMember, opts...))
	mux.Handle(GroupServiceListGroupsProcedure, connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opts...))
	mux.Handle(GroupServiceGetGroupProcedure, connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...))
	return "/" + GroupServiceName + "/", mux
}

type GroupServiceClient struct {
	createGroup  *connect.Client[CreateGroupRequest, CreateGroupResponse]
	joinGroup    *connect.Client[JoinGroupRequest, JoinGroupResponse]
	inviteMember *connect.Client[InviteMemberRequest, InviteMemberResponse]
	listGroups   *connect.Client[ListGroupsRequest, ListGroupsResponse]
	getGroup     *connect.Client[GetGroupRequest, GetGroupResponse]
}

func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *GroupServiceClient {
	baseURL = trimBase(baseURL)
	opts = clientOptions(opts)
	return &GroupServiceClient{
		createGroup:  connect.NewClient[CreateGroupRequest, CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		joinGroup:    connect.NewClient[JoinGroupRequest, JoinGroupResponse](httpClient, baseURL+GroupServiceJoinGroupProcedure, opts...),
		inviteMember: connect.NewClient[InviteMemberRequest, InviteMemberResponse](httpClient, baseURL+GroupServiceInviteMemberProcedure, opts...),
		listGroups:   connect.NewClient[ListGroupsRequest, ListGroupsResponse](httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		getGroup:     connect.NewClient[GetGroupRequest, GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
	}
}

func (c *GroupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) JoinGroup(ctx context.Context, req *connect.Request[JoinGroupRequest]) (*connect.Response[JoinGroupResponse], error) {
	return c.joinGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) InviteMember(ctx context.Context, req *connect.Request[InviteMemberRequest]) (*connect.Response[InviteMemberResponse], error) {
	return c.inviteMember.CallUnary(ctx, req)
}

func (c *GroupServiceClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *GroupServiceClient) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}
