// Package listings persists marketplace listings in PostgreSQL or in the
// hosted Supabase backend.
package listings

import (
	"context"
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
)

// Filter narrows List. Empty fields do not filter. Only active listings are
// ever returned.
type Filter struct {
	Location      string
	Category      string
	AvailableOnly bool
	OwnerID       string
}

// Repository lists newest-first (created_at descending).
type Repository interface {
	List(ctx context.Context, f Filter) ([]*models.Listing, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, l *models.Listing) error
	UpdateAvailability(ctx context.Context, id string, change models.AvailabilityChange, updatedAt time.Time) (*models.Listing, error)
	// ExpireAvailability clears the available-now flag on listings whose
	// window ended at or before now and reports how many were touched.
	ExpireAvailability(ctx context.Context, now time.Time) (int64, error)
}
