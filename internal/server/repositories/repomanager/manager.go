// Package repomanager vends the repositories of one persistence backend and
// runs work against them as a unit.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/unity/internal/server/repositories/listings"
	"github.com/dmitrijs2005/unity/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/unity/internal/server/repositories/purchases"
	"github.com/dmitrijs2005/unity/internal/server/repositories/upgrades"
)

// Repositories groups the repositories bound to one handle (a pool or a
// transaction).
type Repositories interface {
	Listings() listings.Repository
	Upgrades() upgrades.Repository
	Purchases() purchases.Repository
	Profiles() profiles.Repository
}

type RepositoryManager interface {
	Repositories
	// WithinTx runs fn with repositories whose writes commit or roll back
	// together where the backend supports it.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
	RunMigrations(ctx context.Context) error
	Close() error
}
