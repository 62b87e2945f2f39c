package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const UserServiceName = "tripmate.v1.UserService"

const (
	UserServiceSearchUsersProcedure       = "/tripmate.v1.UserService/SearchUsers"
	UserServiceListNotificationsProcedure = "/tripmate.v1.UserService/ListNotifications"
	UserServiceSaveTripProcedure          = "/tripmate.v1.UserService/SaveTrip"
	UserServiceListSavedTripsProcedure    = "/tripmate.v1.UserService/ListSavedTrips"
)

type UserServiceHandler interface {
	SearchUsers(context.Context, *connect.Request[SearchUsersRequest]) (*connect.Response[SearchUsersResponse], error)
	ListNotifications(context.Context, *connect.Request[ListNotificationsRequest]) (*connect.Response[ListNotificationsResponse], error)
	SaveTrip(context.Context, *connect.Request[SaveTripRequest]) (*connect.Response[SaveTripResponse], error)
	ListSavedTrips(context.Context, *connect.Request[ListSavedTripsRequest]) (*connect.Response[ListSavedTripsResponse], error)
}

func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(UserServiceSearchUsersProcedure, connect.NewUnaryHandler(UserServiceSearchUsersProcedure, svc.SearchUsers, opts...))
	mux.Handle(UserServiceListNotificationsProcedure, connect.NewUnaryHandler(UserServiceListNotificationsProcedure, svc.ListNotifications, opts...))
	mux.Handle(UserServiceSaveTripProcedure, connect.NewUnaryHandler(UserServiceSaveTripProcedure, svc.SaveTrip, opts...))
	mux.Handle(UserServiceListSavedTripsProcedure, connect.NewUnaryHandler(UserServiceListSavedTripsProcedure, svc.ListSavedTrips, opts...))
	return "/" + UserServiceName + "/", mux
}

type UserServiceClient struct {
	searchUsers       *connect.Client[SearchUsersRequest, SearchUsersResponse]
	listNotifications *connect.Client[ListNotificationsRequest, ListNotificationsResponse]
	saveTrip          *connect.Client[SaveTripRequest, SaveTripResponse]
	listSavedTrips    *connect.Client[ListSavedTripsRequest, ListSavedTripsResponse]
}

func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *UserServiceClient {
	baseURL = trimBase(baseURL)
	opts = clientOptions(opts)
	return &UserServiceClient{
		searchUsers:       connect.NewClient[SearchUsersRequest, SearchUsersResponse](httpClient, baseURL+UserServiceSearchUsersProcedure, opts...),
		listNotifications: connect.NewClient[ListNotificationsRequest, ListNotificationsResponse](httpClient, baseURL+UserServiceListNotificationsProcedure, opts...),
		saveTrip:          connect.NewClient[SaveTripRequest, SaveTripResponse](httpClient, baseURL+UserServiceSaveTripProcedure, opts...),
		listSavedTrips:    connect.NewClient[ListSavedTripsRequest, ListSavedTripsResponse](httpClient, baseURL+UserServiceListSavedTripsProcedure, opts...),
	}
}

func (c *UserServiceClient) SearchUsers(ctx context.Context, req *connect.Request[SearchUsersRequest]) (*connect.Response[SearchUsersResponse], error) {
	return c.searchUsers.CallUnary(ctx, req)
}

func (c *UserServiceClient) ListNotifications(ctx context.Context, req *connect.Request[ListNotificationsRequest]) (*connect.Response[ListNotificationsResponse], error) {
	return c.listNotifications.CallUnary(ctx, req)
}

func (c *UserServiceClient) SaveTrip(ctx context.Context, req *connect.Request[SaveTripRequest]) (*connect.Response[SaveTripResponse], error) {
	return c.saveTrip.CallUnary(ctx, req)
}

func (c *UserServiceClient) ListSavedTrips(ctx context.Context, req *connect.Request[ListSavedTripsRequest]) (*connect.Response[ListSavedTripsResponse], error) {
	return c.listSavedTrips.CallUnary(ctx, req)
}
