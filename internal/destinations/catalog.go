// Package destinations reads and lazily populates the destination catalog.
package destinations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/places"
	"github.com/mmynk/tripmate/internal/storage"
)

var (
	ErrNotFound     = errors.New("destination not found")
	ErrInvalidImage = errors.New("primary image must be one of the images")
)

// Store is the part of the data gateway the catalog uses.
type Store interface {
	GetDestination(ctx context.Context, id int64) (*models.Destination, error)
	FindDestinationByCoordinates(ctx context.Context, c models.Coordinates) (*models.Destination, error)
	CreateDestination(ctx context.Context, dest *models.Destination) error
	UpdateDestinationImages(ctx context.Context, id int64, images []string, primary string) error

	AddSavedTrip(ctx context.Context, userID string, destinationID int64) error
	RemoveSavedTrip(ctx context.Context, userID string, destinationID int64) error
	ListSavedTrips(ctx context.Context, userID string) ([]int64, error)
}

// Searcher finds places by free text.
type Searcher interface {
	Search(ctx context.Context, query string) ([]places.Place, error)
}

// Catalog wraps the destination table and the places API.
type Catalog struct {
	store    Store
	searcher Searcher
}

// NewCatalog creates a Catalog. searcher may be nil when no places API is configured.
func NewCatalog(store Store, searcher Searcher) *Catalog {
	return &Catalog{store: store, searcher: searcher}
}

// Get returns the destination with the given ID.
func (c *Catalog) Get(ctx context.Context, id int64) (*models.Destination, error) {
	dest, err := c.store.GetDestination(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return dest, err
}

// Search queries the places API.
func (c *Catalog) Search(ctx context.Context, query string) ([]places.Place, error) {
	if c.searcher == nil {
		return nil, places.ErrMissingAPIKey
	}
	return c.searcher.Search(ctx, query)
}

// Resolve returns the catalog ID for a picked place, inserting it only when no
// destination sits at exactly the same coordinates. created reports an insert.
func (c *Catalog) Resolve(ctx context.Context, place places.Place) (id int64, created bool, err error) {
	coords := models.Coordinates{Latitude: place.Latitude, Longitude: place.Longitude}

	existing, err := c.store.FindDestinationByCoordinates(ctx, coords)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return 0, false, fmt.Errorf("failed to look up destination: %w", err)
	}

	dest := &models.Destination{
		Name:      place.Name,
		Location:  place.Address,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		Rating:    place.Rating,
		Images:    place.PhotoRefs,
	}
	if len(place.PhotoRefs) > 0 {
		dest.PrimaryImage = place.PhotoRefs[0]
	}
	if err := c.store.CreateDestination(ctx, dest); err != nil {
		return 0, false, fmt.Errorf("failed to create destination: %w", err)
	}

	slog.Info("Destination created", "destination_id", dest.ID, "name", dest.Name)
	return dest.ID, true, nil
}

// SetImages replaces a destination's images. An empty primary picks the first image.
func (c *Catalog) SetImages(ctx context.Context, id int64, images []string, primary string) error {
	if primary == "" && len(images) > 0 {
		primary = images[0]
	}
	if primary != "" && !slices.Contains(images, primary) {
		return ErrInvalidImage
	}

	err := c.store.UpdateDestinationImages(ctx, id, images, primary)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// SaveTrip adds or removes a destination from the user's saved trips and
// returns the resulting list.
func (c *Catalog) SaveTrip(ctx context.Context, userID string, destinationID int64, saved bool) ([]int64, error) {
	if saved {
		if _, err := c.Get(ctx, destinationID); err != nil {
			return nil, err
		}
		if err := c.store.AddSavedTrip(ctx, userID, destinationID); err != nil {
			return nil, err
		}
	} else if err := c.store.RemoveSavedTrip(ctx, userID, destinationID); err != nil {
		return nil, err
	}
	return c.store.ListSavedTrips(ctx, userID)
}

// SavedTrips lists the user's saved destination IDs.
func (c *Catalog) SavedTrips(ctx context.Context, userID string) ([]int64, error) {
	return c.store.ListSavedTrips(ctx, userID)
}
