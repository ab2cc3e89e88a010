package client

import (
	"context"

	"github.com/dmitrijs2005/unity/internal/api"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/presentation"
)

// BrowsePage is one browse result with cards rebuilt for rendering.
type BrowsePage struct {
	Cards      []presentation.Card
	Locations  []string
	Categories []string
}

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Browse(ctx context.Context, req *api.BrowseRequest) (*BrowsePage, error)
	UpgradeOptions(ctx context.Context) ([]models.UpgradeOption, error)
	MyListings(ctx context.Context) ([]models.Listing, error)
	CreateListing(ctx context.Context, req *api.CreateListingRequest) (*models.Listing, error)
	ToggleAvailableNow(ctx context.Context, listingID string) (*models.Listing, error)
	PurchaseUpgrade(ctx context.Context, listingID string, kind models.UpgradeKind) (*models.Upgrade, error)
	ActiveUpgrades(ctx context.Context, listingID string) ([]models.Upgrade, error)
	PurchaseHistory(ctx context.Context) ([]models.UpgradePurchase, error)
}
