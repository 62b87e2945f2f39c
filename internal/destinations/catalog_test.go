package destinations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/places"
	"github.com/mmynk/tripmate/internal/storage"
)

type storeMock struct {
	mock.Mock
}

func (m *storeMock) GetDestination(ctx context.Context, id int64) (*models.Destination, error) {
	args := m.Called(ctx, id)
	dest, _ := args.Get(0).(*models.Destination)
	return dest, args.Error(1)
}

func (m *storeMock) FindDestinationByCoordinates(ctx context.Context, c models.Coordinates) (*models.Destination, error) {
	args := m.Called(ctx, c)
	dest, _ := args.Get(0).(*models.Destination)
	return dest, args.Error(1)
}

func (m *storeMock) CreateDestination(ctx context.Context, dest *models.Destination) error {
	args := m.Called(ctx, dest)
	return args.Error(0)
}

func (m *storeMock) UpdateDestinationImages(ctx context.Context, id int64, images []string, primary string) error {
	args := m.Called(ctx, id, images, primary)
	return args.Error(0)
}

func (m *storeMock) AddSavedTrip(ctx context.Context, userID string, destinationID int64) error {
	return m.Called(ctx, userID, destinationID).Error(0)
}

func (m *storeMock) RemoveSavedTrip(ctx context.Context, userID string, destinationID int64) error {
	return m.Called(ctx, userID, destinationID).Error(0)
}

func (m *storeMock) ListSavedTrips(ctx context.Context, userID string) ([]int64, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

var eiffel = places.Place{Name: "Eiffel Tower", Address: "Paris", Latitude: 48.8584, Longitude: 2.2945, PhotoRefs: []string{"p1", "p2"}}

func TestResolve_ExistingCoordinatesDoNotInsert(t *testing.T) {
	store := new(storeMock)
	store.On("FindDestinationByCoordinates", mock.Anything, models.Coordinates{Latitude: 48.8584, Longitude: 2.2945}).
		Return(&models.Destination{ID: 7}, nil).Once()

	id, created, err := NewCatalog(store, nil).Resolve(context.Background(), eiffel)
	require.NoError(t, err)
	require.Equal(t, int64(7), id)
	require.False(t, created)
	store.AssertNotCalled(t, "CreateDestination", mock.Anything, mock.Anything)
}

func TestResolve_UnknownCoordinatesInsertOnce(t *testing.T) {
	store := new(storeMock)
	store.On("FindDestinationByCoordinates", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound).Once()
	store.On("CreateDestination", mock.Anything, mock.MatchedBy(func(d *models.Destination) bool {
		return d.Name == "Eiffel Tower" && d.PrimaryImage == "p1" && len(d.Images) == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Destination).ID = 12
	}).Return(nil).Once()

	id, created, err := NewCatalog(store, nil).Resolve(context.Background(), eiffel)
	require.NoError(t, err)
	require.Equal(t, int64(12), id)
	require.True(t, created)
	store.AssertExpectations(t)
	store.AssertNumberOfCalls(t, "CreateDestination", 1)
}

func TestResolve_LookupFailure(t *testing.T) {
	store := new(storeMock)
	store.On("FindDestinationByCoordinates", mock.Anything, mock.Anything).Return(nil, errors.New("disk I/O error")).Once()

	_, _, err := NewCatalog(store, nil).Resolve(context.Background(), eiffel)
	require.ErrorContains(t, err, "disk I/O error")
	store.AssertNotCalled(t, "CreateDestination", mock.Anything, mock.Anything)
}

func TestGet_NotFound(t *testing.T) {
	store := new(storeMock)
	store.On("GetDestination", mock.Anything, int64(3)).Return(nil, storage.ErrNotFound).Once()

	_, err := NewCatalog(store, nil).Get(context.Background(), 3)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetImages(t *testing.T) {
	store := new(storeMock)
	store.On("UpdateDestinationImages", mock.Anything, int64(4), []string{"a", "b"}, "a").Return(nil).Once()
	catalog := NewCatalog(store, nil)

	require.NoError(t, catalog.SetImages(context.Background(), 4, []string{"a", "b"}, ""))
	require.ErrorIs(t, catalog.SetImages(context.Background(), 4, []string{"a"}, "z"), ErrInvalidImage)
	store.AssertExpectations(t)
}

func TestSaveTrip(t *testing.T) {
	store := new(storeMock)
	store.On("GetDestination", mock.Anything, int64(9)).Return(&models.Destination{ID: 9}, nil).Once()
	store.On("AddSavedTrip", mock.Anything, "u", int64(9)).Return(nil).Once()
	store.On("ListSavedTrips", mock.Anything, "u").Return([]int64{9}, nil).Once()
	store.On("RemoveSavedTrip", mock.Anything, "u", int64(9)).Return(nil).Once()
	store.On("ListSavedTrips", mock.Anything, "u").Return([]int64{}, nil).Once()
	catalog := NewCatalog(store, nil)

	ids, err := catalog.SaveTrip(context.Background(), "u", 9, true)
	require.NoError(t, err)
	require.Equal(t, []int64{9}, ids)

	ids, err = catalog.SaveTrip(context.Background(), "u", 9, false)
	require.NoError(t, err)
	require.Empty(t, ids)
	store.AssertExpectations(t)
}

func TestSearchWithoutSearcher(t *testing.T) {
	_, err := NewCatalog(new(storeMock), nil).Search(context.Background(), "x")
	require.ErrorIs(t, err, places.ErrMissingAPIKey)
}
