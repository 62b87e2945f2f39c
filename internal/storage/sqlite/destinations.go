package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
)

const destinationColumns = "id, name, location, latitude, longitude, rating, images, primary_image"

// GetDestination retrieves a destination by ID.
func (s *SQLiteStore) GetDestination(ctx context.Context, id int64) (*models.Destination, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+destinationColumns+" FROM destination WHERE id = ?", id)
	return scanDestination(row)
}

// FindDestinationByCoordinates matches the exact latitude/longitude pair.
func (s *SQLiteStore) FindDestinationByCoordinates(ctx context.Context, c models.Coordinates) (*models.Destination, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+destinationColumns+" FROM destination WHERE latitude = ? AND longitude = ? ORDER BY id LIMIT 1",
		c.Latitude, c.Longitude,
	)
	return scanDestination(row)
}

// CreateDestination inserts dest and sets dest.ID.
func (s *SQLiteStore) CreateDestination(ctx context.Context, dest *models.Destination) error {
	images, err := encodeImages(dest.Images)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO destination (name, location, latitude, longitude, rating, images, primary_image)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		dest.Name, dest.Location, dest.Latitude, dest.Longitude, dest.Rating, images, dest.PrimaryImage,
	)
	if err != nil {
		return fmt.Errorf("failed to insert destination: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read destination id: %w", err)
	}
	dest.ID = id
	return nil
}

// UpdateDestinationImages replaces the image list and primary image.
func (s *SQLiteStore) UpdateDestinationImages(ctx context.Context, id int64, images []string, primary string) error {
	encoded, err := encodeImages(images)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE destination SET images = ?, primary_image = ? WHERE id = ?",
		encoded, primary, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update destination images: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func encodeImages(images []string) (string, error) {
	if images == nil {
		images = []string{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return "", fmt.Errorf("failed to encode images: %w", err)
	}
	return string(b), nil
}

func scanDestination(row rowScanner) (*models.Destination, error) {
	dest := &models.Destination{}
	var images string
	err := row.Scan(&dest.ID, &dest.Name, &dest.Location, &dest.Latitude, &dest.Longitude,
		&dest.Rating, &images, &dest.PrimaryImage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan destination: %w", err)
	}

	if err := json.Unmarshal([]byte(images), &dest.Images); err != nil {
		return nil, fmt.Errorf("failed to decode destination images: %w", err)
	}
	return dest, nil
}
