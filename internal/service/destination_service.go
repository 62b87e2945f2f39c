package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/internal/api"
	"github.com/mmynk/tripmate/internal/destinations"
	"github.com/mmynk/tripmate/internal/places"
)

// DestinationService implements the Connect DestinationService.
type DestinationService struct {
	catalog *destinations.Catalog
}

// NewDestinationService creates a DestinationService backed by catalog.
func NewDestinationService(catalog *destinations.Catalog) *DestinationService {
	return &DestinationService{catalog: catalog}
}

// GetDestination returns one catalog entry by ID.
func (s *DestinationService) GetDestination(ctx context.Context, req *connect.Request[api.GetDestinationRequest]) (*connect.Response[api.GetDestinationResponse], error) {
	dest, err := s.catalog.Get(ctx, req.Msg.ID)
	if err != nil {
		return nil, catalogError(err)
	}
	return connect.NewResponse(&api.GetDestinationResponse{Destination: toAPIDestination(dest)}), nil
}

// SearchPlaces runs a free-text query against the places API.
func (s *DestinationService) SearchPlaces(ctx context.Context, req *connect.Request[api.SearchPlacesRequest]) (*connect.Response[api.SearchPlacesResponse], error) {
	query := strings.TrimSpace(req.Msg.Query)
	if query == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("query is required"))
	}

	found, err := s.catalog.Search(ctx, query)
	if err != nil {
		slog.Warn("Place search failed", "query", query, "error", err)
		return nil, catalogError(err)
	}

	out := make([]api.Place, len(found))
	for i, p := range found {
		out[i] = toAPIPlace(p)
	}
	return connect.NewResponse(&api.SearchPlacesResponse{Places: out}), nil
}

// ResolveDestination returns the catalog ID for a picked place, creating the
// entry when nothing exists at its coordinates.
func (s *DestinationService) ResolveDestination(ctx context.Context, req *connect.Request[api.ResolveDestinationRequest]) (*connect.Response[api.ResolveDestinationResponse], error) {
	if strings.TrimSpace(req.Msg.Place.Name) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("place name is required"))
	}

	id, created, err := s.catalog.Resolve(ctx, fromAPIPlace(req.Msg.Place))
	if err != nil {
		return nil, catalogError(err)
	}
	return connect.NewResponse(&api.ResolveDestinationResponse{DestinationID: id, Created: created}), nil
}

// SetDestinationImages replaces the images of a destination and returns the
// updated entry.
func (s *DestinationService) SetDestinationImages(ctx context.Context, req *connect.Request[api.SetDestinationImagesRequest]) (*connect.Response[api.SetDestinationImagesResponse], error) {
	if err := s.catalog.SetImages(ctx, req.Msg.ID, req.Msg.Images, req.Msg.PrimaryImage); err != nil {
		return nil, catalogError(err)
	}

	dest, err := s.catalog.Get(ctx, req.Msg.ID)
	if err != nil {
		return nil, catalogError(err)
	}
	return connect.NewResponse(&api.SetDestinationImagesResponse{Destination: toAPIDestination(dest)}), nil
}

func catalogError(err error) error {
	switch {
	case errors.Is(err, destinations.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, destinations.ErrInvalidImage):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, places.ErrMissingAPIKey):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		slog.Error("Destination catalog failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
