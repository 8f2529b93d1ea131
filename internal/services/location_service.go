package services

import (
	"context"
	"fmt"
	"log"

	"fiufit-users/internal/models"
	"fiufit-users/internal/repositories"
)

var namedLocations = []models.NamedLocation{
	{Location: "palermo", Coordinates: []float64{-58.42586046713378, -34.57880358148468}},
	{Location: "belgrano", Coordinates: []float64{-58.45801577289393, -34.56175089404378}},
	{Location: "villa crespo", Coordinates: []float64{-58.423752981303664, -34.597827338324237}},
	{Location: "caballito", Coordinates: []float64{-58.44222487851476, -34.61831744226044}},
	{Location: "recoleta", Coordinates: []float64{-58.39327442626171, -34.58726478830196}},
	{Location: "san telmo", Coordinates: []float64{-58.37187963406637, -34.62169611596372}},
	{Location: "nuñez", Coordinates: []float64{-58.46294463432011, -34.54417416393469}},
	{Location: "almagro", Coordinates: []float64{-58.42080424138491, -34.60990741939613}},
}

// LocationService stores trainer locations and answers radius queries.
type LocationService struct {
	repo repositories.LocationRepository
}

// NewLocationService creates a new LocationService.
func NewLocationService(repo repositories.LocationRepository) *LocationService {
	return &LocationService{
		repo: repo,
	}
}

// Save records the location of a trainer. Athletes and nil coordinates are skipped.
func (s *LocationService) Save(ctx context.Context, isAthlete bool, userID uint, coords *models.Coordinates) error {
	if coords == nil {
		return nil
	}
	if isAthlete {
		log.Printf("Not saving location of athlete %d", userID)
		return nil
	}
	if err := s.repo.Upsert(ctx, userID, *coords); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

// Within returns the ids of trainers located at most radius meters from point.
func (s *LocationService) Within(ctx context.Context, point models.Coordinates, radius float64) ([]uint, error) {
	ids, err := s.repo.Within(ctx, point, radius)
	if err != nil {
		return nil, fmt.Errorf("failed to search by location: %w", err)
	}
	return ids, nil
}

// NamedLocations returns the reference places offered to clients.
func (s *LocationService) NamedLocations() []models.NamedLocation {
	out := make([]models.NamedLocation, len(namedLocations))
	copy(out, namedLocations)
	return out
}

// ParseCoordinates requires longitude and latitude to be given together.
// It returns nil when neither is given.
func ParseCoordinates(longitude, latitude *float64) (*models.Coordinates, error) {
	switch {
	case longitude == nil && latitude == nil:
		return nil, nil
	case longitude == nil || latitude == nil:
		return nil, ErrIncompleteCoordinates
	}
	return &models.Coordinates{Longitude: *longitude, Latitude: *latitude}, nil
}
