package upgrades

import (
	"context"
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/server/repositories/supabase"
)

type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(c *supabase.Client) *SupabaseRepository {
	return &SupabaseRepository{client: c}
}

func (r *SupabaseRepository) ListActive(ctx context.Context, listingID string, now time.Time) ([]*models.Upgrade, error) {
	q := supabase.NewQuery().Eq("is_active", "true").Gt("expires_at", now)
	if listingID != "" {
		q.Eq("listing_id", listingID)
	}

	var out []*models.Upgrade
	if err := r.client.Select(ctx, "upgrades", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SupabaseRepository) Create(ctx context.Context, u *models.Upgrade) error {
	return r.client.Insert(ctx, "upgrades", u, nil)
}
