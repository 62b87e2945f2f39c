package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const DestinationServiceName = "tripmate.v1.DestinationService"

const (
	DestinationServiceGetDestinationProcedure       = "/tripmate.v1.DestinationService/GetDestination"
	DestinationServiceSearchPlacesProcedure         = "/tripmate.v1.DestinationService/SearchPlaces"
	DestinationServiceResolveDestinationProcedure   = "/tripmate.v1.DestinationService/ResolveDestination"
	DestinationServiceSetDestinationImagesProcedure = "/tripmate.v1.DestinationService/SetDestinationImages"
)

type DestinationServiceHandler interface {
	GetDestination(context.Context, *connect.Request[GetDestinationRequest]) (*connect.Response[GetDestinationResponse], error)
	SearchPlaces(context.Context, *connect.Request[SearchPlacesRequest]) (*connect.Response[SearchPlacesResponse], error)
	ResolveDestination(context.Context, *connect.Request[ResolveDestinationRequest]) (*connect.Response[ResolveDestinationResponse], error)
	SetDestinationImages(context.Context, *connect.Request[SetDestinationImagesRequest]) (*connect.Response[SetDestinationImagesResponse], error)
}

func NewDestinationServiceHandler(svc DestinationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(DestinationServiceGetDestinationProcedure, connect.NewUnaryHandler(DestinationServiceGetDestinationProcedure, svc.GetDestination, opts...))
	mux.Handle(DestinationServiceSearchPlacesProcedure, connect.NewUnaryHandler(DestinationServiceSearchPlacesProcedure, svc.SearchPlaces, opts...))
	mux.Handle(DestinationServiceResolveDestinationProcedure, connect.NewUnaryHandler(DestinationServiceResolveDestinationProcedure, svc.ResolveDestination, opts...))
	mux.Handle(DestinationServiceSetDestinationImagesProcedure, connect.NewUnaryHandler(DestinationServiceSetDestinationImagesProcedure, svc.SetDestinationImages, opts...))
	return "/" + DestinationServiceName + "/", mux
}

type DestinationServiceClient struct {
	getDestination       *connect.Client[GetDestinationRequest, GetDestinationResponse]
	searchPlaces         *connect.Client[SearchPlacesRequest, SearchPlacesResponse]
	resolveDestination   *connect.Client[ResolveDestinationRequest, ResolveDestinationResponse]
	setDestinationImages *connect.Client[SetDestinationImagesRequest, SetDestinationImagesResponse]
}

func NewDestinationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *DestinationServiceClient {
	baseURL = trimBase(baseURL)
	opts = clientOptions(opts)
	return &DestinationServiceClient{
		getDestination:       connect.NewClient[GetDestinationRequest, GetDestinationResponse](httpClient, baseURL+DestinationServiceGetDestinationProcedure, opts...),
		searchPlaces:         connect.NewClient[SearchPlacesRequest, SearchPlacesResponse](httpClient, baseURL+DestinationServiceSearchPlacesProcedure, opts...),
		resolveDestination:   connect.NewClient[ResolveDestinationRequest, ResolveDestinationResponse](httpClient, baseURL+DestinationServiceResolveDestinationProcedure, opts...),
		setDestinationImages: connect.NewClient[SetDestinationImagesRequest, SetDestinationImagesResponse](httpClient, baseURL+DestinationServiceSetDestinationImagesProcedure, opts...),
	}
}

func (c *DestinationServiceClient) GetDestination(ctx context.Context, req *connect.Request[GetDestinationRequest]) (*connect.Response[GetDestinationResponse], error) {
	return c.getDestination.CallUnary(ctx, req)
}

func (c *DestinationServiceClient) SearchPlaces(ctx context.Context, req *connect.Request[SearchPlacesRequest]) (*connect.Response[SearchPlacesResponse], error) {
	return c.searchPlaces.CallUnary(ctx, req)
}

func (c *DestinationServiceClient) ResolveDestination(ctx context.Context, req *connect.Request[ResolveDestinationRequest]) (*connect.Response[ResolveDestinationResponse], error) {
	return c.resolveDestination.CallUnary(ctx, req)
}

func (c *DestinationServiceClient) SetDestinationImages(ctx context.Context, req *connect.Request[SetDestinationImagesRequest]) (*connect.Response[SetDestinationImagesResponse], error) {
	return c.setDestinationImages.CallUnary(ctx, req)
}
