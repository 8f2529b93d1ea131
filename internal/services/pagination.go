package services

import "fiufit-users/internal/models"

// Listing defaults and bounds.
const (
	DefaultLimit  = 10
	MaxLimit      = 100
	DefaultRadius = 1000.0
)

// NewPage wraps one slice of a listing with its pagination metadata.
// Page is 1-based and derived from offset; Pages is zero when total is zero.
func NewPage[T any](items []T, total int64, offset, limit int) *models.Page[T] {
	if items == nil {
		items = []T{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &models.Page[T]{
		Items: items,
		Total: total,
		Page:  1 + offset/limit,
		Size:  len(items),
		Pages: int((total + int64(limit) - 1) / int64(limit)),
	}
}

func normalizeWindow(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return offset, limit
}
