// Package upgrades stores time-boxed listing upgrades.
package upgrades

import (
	"context"
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
)

type Repository interface {
	// ListActive returns upgrades flagged active whose expiry is after now.
	// An empty listingID returns them for every listing.
	ListActive(ctx context.Context, listingID string, now time.Time) ([]*models.Upgrade, error)
	Create(ctx context.Context, u *models.Upgrade) error
}
