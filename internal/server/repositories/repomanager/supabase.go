package repomanager

import (
	"context"

	"github.com/dmitrijs2005/unity/internal/server/repositories/listings"
	"github.com/dmitrijs2005/unity/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/unity/internal/server/repositories/purchases"
	"github.com/dmitrijs2005/unity/internal/server/repositories/supabase"
	"github.com/dmitrijs2005/unity/internal/server/repositories/upgrades"
)

// SupabaseRepositoryManager serves repositories over the hosted PostgREST API.
// PostgREST has no cross-request transactions: WithinTx runs fn directly and
// a failure part-way leaves earlier writes in place.
type SupabaseRepositoryManager struct {
	listings  *listings.SupabaseRepository
	upgrades  *upgrades.SupabaseRepository
	purchases *purchases.SupabaseRepository
	profiles  *profiles.SupabaseRepository
}

func NewSupabaseRepositoryManager(c *supabase.Client) *SupabaseRepositoryManager {
	return &SupabaseRepositoryManager{
		listings:  listings.NewSupabaseRepository(c),
		upgrades:  upgrades.NewSupabaseRepository(c),
		purchases: purchases.NewSupabaseRepository(c),
		profiles:  profiles.NewSupabaseRepository(c),
	}
}

func (m *SupabaseRepositoryManager) Listings() listings.Repository   { return m.listings }
func (m *SupabaseRepositoryManager) Upgrades() upgrades.Repository   { return m.upgrades }
func (m *SupabaseRepositoryManager) Purchases() purchases.Repository { return m.purchases }
func (m *SupabaseRepositoryManager) Profiles() profiles.Repository   { return m.profiles }

func (m *SupabaseRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return fn(ctx, m)
}

// RunMigrations is a no-op: the hosted project owns its schema.
func (m *SupabaseRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *SupabaseRepositoryManager) Close() error {
	return nil
}
