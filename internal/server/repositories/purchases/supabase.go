package purchases

import (
	"context"

	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/server/repositories/supabase"
)

type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(c *supabase.Client) *SupabaseRepository {
	return &SupabaseRepository{client: c}
}

func (r *SupabaseRepository) Create(ctx context.Context, p *models.UpgradePurchase) error {
	return r.client.Insert(ctx, "upgrade_purchases", p, nil)
}

func (r *SupabaseRepository) ListByUser(ctx context.Context, userID string) ([]*models.UpgradePurchase, error) {
	var out []*models.UpgradePurchase
	q := supabase.NewQuery().Eq("user_id", userID).Order("created_at", true)
	if err := r.client.Select(ctx, "upgrade_purchases", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
