package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/logging"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// UpgradeService sells upgrades. Payment is not collected: a purchase
// activates the upgrade immediately.
type UpgradeService struct {
	repos  repomanager.RepositoryManager
	logger logging.Logger
	now    Clock
}

func NewUpgradeService(repos repomanager.RepositoryManager, logger logging.Logger) *UpgradeService {
	return &UpgradeService{repos: repos, logger: logger, now: systemClock}
}

// Options returns the purchasable upgrades in catalog order.
func (s *UpgradeService) Options() []models.UpgradeOption {
	return models.UpgradeCatalog()
}

// Purchase activates kind on the caller's listing for the catalog duration
// and records the purchase. Both rows are written in one unit of work.
func (s *UpgradeService) Purchase(ctx context.Context, id models.Identity, listingID string, kind models.UpgradeKind) (*models.Upgrade, error) {
	if id.UserID == "" {
		return nil, common.ErrorUnauthorized
	}
	if !id.IsEntertainer() {
		return nil, common.ErrorNotEntertainer
	}
	opt, err := models.LookupUpgradeOption(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownUpgradeKind, kind)
	}

	l, err := ownedListing(ctx, s.repos.Listings(), id, listingID)
	if err != nil {
		return nil, err
	}
	if !l.IsActive {
		return nil, fmt.Errorf("%w: listing is not active", common.ErrorValidation)
	}

	now := s.now()
	upgrade := &models.Upgrade{
		ID:        uuid.NewString(),
		ListingID: l.ID,
		Kind:      opt.Kind,
		ExpiresAt: now.AddDate(0, 0, opt.DurationDays),
		IsActive:  true,
		CreatedAt: now,
	}
	purchase := &models.UpgradePurchase{
		ID:           uuid.NewString(),
		UserID:       id.UserID,
		ListingID:    l.ID,
		Kind:         opt.Kind,
		DurationDays: opt.DurationDays,
		CreatedAt:    now,
	}

	err = s.repos.WithinTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if err := repos.Upgrades().Create(ctx, upgrade); err != nil {
			return fmt.Errorf("create upgrade: %w", err)
		}
		if err := repos.Purchases().Create(ctx, purchase); err != nil {
			return fmt.Errorf("record purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "upgrade activated",
		"listing", l.ID, "user", id.UserID, "kind", opt.Kind, "expires_at", upgrade.ExpiresAt)
	return upgrade, nil
}

// ActiveFor returns the upgrades currently in effect on one listing.
func (s *UpgradeService) ActiveFor(ctx context.Context, listingID string) ([]*models.Upgrade, error) {
	out, err := s.repos.Upgrades().ListActive(ctx, listingID, s.now())
	if err != nil {
		return nil, fmt.Errorf("load upgrades: %w", err)
	}
	return out, nil
}

// History lists the caller's purchases, newest first.
func (s *UpgradeService) History(ctx context.Context, id models.Identity) ([]*models.UpgradePurchase, error) {
	if id.UserID == "" {
		return nil, common.ErrorUnauthorized
	}
	out, err := s.repos.Purchases().ListByUser(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("load purchases: %w", err)
	}
	return out, nil
}
