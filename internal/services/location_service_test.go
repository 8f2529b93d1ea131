package services_test

import (
	"context"
	"errors"
	"testing"

	"fiufit-users/internal/models"
	"fiufit-users/internal/repositories"
	"fiufit-users/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	coords, err := services.ParseCoordinates(nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, coords)

	coords, err = services.ParseCoordinates(ptr(0.0), ptr(0.0))
	assert.NoError(t, err)
	assert.Equal(t, &models.Coordinates{}, coords)

	_, err = services.ParseCoordinates(ptr(1.0), nil)
	assert.True(t, errors.Is(err, services.ErrIncompleteCoordinates))
	_, err = services.ParseCoordinates(nil, ptr(1.0))
	assert.True(t, errors.Is(err, services.ErrIncompleteCoordinates))
}

func TestLocationService_SaveOnlyTrainers(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryLocationRepository()
	service := services.NewLocationService(repo)
	point := &models.Coordinates{Longitude: -58.4, Latitude: -34.6}

	require.NoError(t, service.Save(ctx, true, 1, point))
	require.NoError(t, service.Save(ctx, false, 2, point))
	require.NoError(t, service.Save(ctx, false, 3, nil))

	_, ok := repo.Get(1)
	assert.False(t, ok)
	stored, ok := repo.Get(2)
	assert.True(t, ok)
	assert.Equal(t, *point, stored)
	_, ok = repo.Get(3)
	assert.False(t, ok)
}

func TestLocationService_WithinFindsOnlyNearTrainer(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryLocationRepository()
	service := services.NewLocationService(repo)

	near := &models.Coordinates{Longitude: -58.423752981303664, Latitude: -34.597827338324237}
	far := &models.Coordinates{Longitude: -60.639317, Latitude: -32.944243}
	require.NoError(t, service.Save(ctx, false, 1, near))
	require.NoError(t, service.Save(ctx, false, 2, far))

	ids, err := service.Within(ctx, models.Coordinates{Longitude: -58.42, Latitude: -34.60}, 1000)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, ids)
}

func TestLocationService_NamedLocations(t *testing.T) {
	service := services.NewLocationService(repositories.NewMemoryLocationRepository())

	locations := service.NamedLocations()
	require.Greater(t, len(locations), 2)
	assert.Equal(t, models.NamedLocation{
		Location:    "villa crespo",
		Coordinates: []float64{-58.423752981303664, -34.597827338324237},
	}, locations[2])
}
