package services

import (
	"context"

	"github.com/dmitrijs2005/unity/internal/models"
)

// The transports depend on these interfaces rather than on the concrete
// services.

type Browser interface {
	Browse(ctx context.Context, q BrowseQuery) (*BrowseResult, error)
}

type ListingManager interface {
	Create(ctx context.Context, id models.Identity, in NewListing) (*models.Listing, error)
	MyListings(ctx context.Context, id models.Identity) ([]*models.Listing, error)
	ToggleAvailableNow(ctx context.Context, id models.Identity, listingID string) (*models.Listing, error)
}

type UpgradeSeller interface {
	Options() []models.UpgradeOption
	Purchase(ctx context.Context, id models.Identity, listingID string, kind models.UpgradeKind) (*models.Upgrade, error)
	ActiveFor(ctx context.Context, listingID string) ([]*models.Upgrade, error)
	History(ctx context.Context, id models.Identity) ([]*models.UpgradePurchase, error)
}

type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (models.Identity, error)
}

var (
	_ Browser          = (*BrowseService)(nil)
	_ ListingManager   = (*ListingService)(nil)
	_ UpgradeSeller    = (*UpgradeService)(nil)
	_ IdentityResolver = (*IdentityService)(nil)
)

// Set bundles the services a transport serves.
type Set struct {
	Browse   Browser
	Listings ListingManager
	Upgrades UpgradeSeller
	Identity IdentityResolver
}

type identityKey struct{}

// WithIdentity stores the authenticated caller in ctx.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the caller stored by WithIdentity.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(models.Identity)
	return id, ok
}
