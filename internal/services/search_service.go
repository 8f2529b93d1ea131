package services

import (
	"context"
	"errors"
	"fmt"

	"fiufit-users/internal/metrics"
	"fiufit-users/internal/models"
	"fiufit-users/internal/repositories"
)

// SearchParams selects which users to list. Username and coordinates are mutually exclusive.
type SearchParams struct {
	Username  string
	Longitude *float64
	Latitude  *float64
	Radius    float64
	Offset    int
	Limit     int
}

// SearchResult holds a single user for a username search and a page otherwise.
type SearchResult struct {
	User *models.User
	Page *models.Page[models.User]
}

// SearchService lists users, optionally filtered by username or by distance to a point.
type SearchService struct {
	users     repositories.UserRepository
	locations *LocationService
	metrics   metrics.Recorder
}

// NewSearchService creates a new SearchService.
func NewSearchService(users repositories.UserRepository, locations *LocationService, recorder metrics.Recorder) *SearchService {
	return &SearchService{
		users:     users,
		locations: locations,
		metrics:   recorder,
	}
}

// Search runs the listing selected by p.
func (s *SearchService) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	if p.Username != "" && p.Longitude != nil && p.Latitude != nil {
		return nil, ErrExclusiveFilters
	}
	point, err := ParseCoordinates(p.Longitude, p.Latitude)
	if err != nil {
		return nil, err
	}
	offset, limit := normalizeWindow(p.Offset, p.Limit)

	switch {
	case p.Username != "":
		s.metrics.Record(metrics.UserSearch, "username")
		user, err := s.users.GetByUsername(p.Username)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		return &SearchResult{User: user}, nil

	case point != nil:
		s.metrics.Record(metrics.UserSearch, "location")
		radius := p.Radius
		if radius <= 0 {
			radius = DefaultRadius
		}
		ids, err := s.locations.Within(ctx, *point, radius)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return &SearchResult{Page: NewPage([]models.User{}, 0, offset, limit)}, nil
		}
		users, total, err := s.users.ListByIDs(ids, offset, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list users near %v: %w", point.Pair(), err)
		}
		return &SearchResult{Page: NewPage(users, total, offset, limit)}, nil

	default:
		s.metrics.Record(metrics.UserSearch, "all")
		users, total, err := s.users.List(offset, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return &SearchResult{Page: NewPage(users, total, offset, limit)}, nil
	}
}
