package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/logging"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/server/repositories/listings"
	"github.com/dmitrijs2005/unity/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/unity/internal/server/repositories/purchases"
	"github.com/dmitrijs2005/unity/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/unity/internal/server/repositories/upgrades"
)

var refNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return refNow }

var nopLogger logging.Logger = logging.Nop{}

// --- listings ---

type fakeListings struct {
	mu        sync.Mutex
	items     []*models.Listing
	lastList  listings.Filter
	listErr   error
	getErr    error
	createErr error
	updateErr error
	expireN   int64
	expireErr error
	expireAt  []time.Time
}

func (f *fakeListings) List(_ context.Context, flt listings.Filter) ([]*models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = flt
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Listing
	for _, l := range f.items {
		if flt.OwnerID != "" && l.UserID != flt.OwnerID {
			continue
		}
		if flt.Location != "" && l.Location != flt.Location {
			continue
		}
		if flt.Category != "" && l.Category != flt.Category {
			continue
		}
		if flt.AvailableOnly && !l.AvailableNow {
			continue
		}
		cp := *l
		cp.Images = slices.Clone(l.Images)
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeListings) GetByID(_ context.Context, id string) (*models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, l := range f.items {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeListings) Create(_ context.Context, l *models.Listing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.items = append(f.items, l)
	return nil
}

func (f *fakeListings) UpdateAvailability(_ context.Context, id string, c models.AvailabilityChange, at time.Time) (*models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for _, l := range f.items {
		if l.ID == id {
			l.AvailableNow = c.AvailableNow
			l.AvailableUntil = c.AvailableUntil
			l.UpdatedAt = at
			cp := *l
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeListings) ExpireAvailability(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expireAt = append(f.expireAt, now)
	return f.expireN, f.expireErr
}

// --- upgrades ---

type fakeUpgrades struct {
	items     []*models.Upgrade
	created   []*models.Upgrade
	listErr   error
	createErr error
	lastNow   time.Time
}

func (f *fakeUpgrades) ListActive(_ context.Context, listingID string, now time.Time) ([]*models.Upgrade, error) {
	f.lastNow = now
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Upgrade
	for _, u := range f.items {
		if listingID != "" && u.ListingID != listingID {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUpgrades) Create(_ context.Context, u *models.Upgrade) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, u)
	return nil
}

// --- purchases ---

type fakePurchases struct {
	created   []*models.UpgradePurchase
	createErr error
}

func (f *fakePurchases) Create(_ context.Context, p *models.UpgradePurchase) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakePurchases) ListByUser(_ context.Context, userID string) ([]*models.UpgradePurchase, error) {
	var out []*models.UpgradePurchase
	for _, p := range f.created {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- profiles ---

type fakeProfiles struct {
	items map[string]*models.Profile
	err   error
}

func (f *fakeProfiles) GetByID(_ context.Context, id string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

// --- manager ---

type fakeManager struct {
	listings  *fakeListings
	upgrades  *fakeUpgrades
	purchases *fakePurchases
	profiles  *fakeProfiles
	txCalls   int
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		listings:  &fakeListings{},
		upgrades:  &fakeUpgrades{},
		purchases: &fakePurchases{},
		profiles:  &fakeProfiles{items: map[string]*models.Profile{}},
	}
}

func (m *fakeManager) Listings() listings.Repository   { return m.listings }
func (m *fakeManager) Upgrades() upgrades.Repository   { return m.upgrades }
func (m *fakeManager) Purchases() purchases.Repository { return m.purchases }
func (m *fakeManager) Profiles() profiles.Repository   { return m.profiles }

func (m *fakeManager) WithinTx(ctx context.Context, fn func(context.Context, repomanager.Repositories) error) error {
	m.txCalls++
	return fn(ctx, m)
}

func (m *fakeManager) RunMigrations(context.Context) error { return nil }
func (m *fakeManager) Close() error                        { return nil }

func ptrTime(t time.Time) *time.Time { return &t }

var (
	entertainer = models.Identity{UserID: "u1", UserType: models.UserTypeEntertainer}
	regularUser = models.Identity{UserID: "u2", UserType: models.UserTypeNonEntertainer}
)
