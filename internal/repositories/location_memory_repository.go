package repositories

import (
	"context"
	"math"
	"sort"
	"sync"

	"fiufit-users/internal/models"
)

const earthRadiusMeters = 6371008.8

// MemoryLocationRepository is an in-memory implementation of LocationRepository.
// Distances are great-circle distances on a spherical Earth, like a 2dsphere index.
type MemoryLocationRepository struct {
	locations map[uint]models.Coordinates
	mu        sync.RWMutex
}

// NewMemoryLocationRepository creates a new instance of MemoryLocationRepository.
func NewMemoryLocationRepository() *MemoryLocationRepository {
	return &MemoryLocationRepository{
		locations: make(map[uint]models.Coordinates),
	}
}

// Upsert stores the location of a user, replacing any previous one.
func (r *MemoryLocationRepository) Upsert(_ context.Context, userID uint, point models.Coordinates) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.locations[userID] = point
	return nil
}

// Within returns the users within radius meters of point, nearest first.
func (r *MemoryLocationRepository) Within(_ context.Context, point models.Coordinates, radius float64) ([]uint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type hit struct {
		id       uint
		distance float64
	}
	hits := make([]hit, 0)
	for id, loc := range r.locations {
		if d := Distance(point, loc); d <= radius {
			hits = append(hits, hit{id: id, distance: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].distance == hits[j].distance {
			return hits[i].id < hits[j].id
		}
		return hits[i].distance < hits[j].distance
	})

	ids := make([]uint, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.id)
	}
	return ids, nil
}

// Get returns the stored location of a user.
func (r *MemoryLocationRepository) Get(userID uint) (models.Coordinates, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, ok := r.locations[userID]
	return loc, ok
}

// Distance is the haversine distance in meters between two points.
func Distance(a, b models.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}
