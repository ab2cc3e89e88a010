package profiles

import (
	"context"

	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/server/repositories/supabase"
)

type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(c *supabase.Client) *SupabaseRepository {
	return &SupabaseRepository{client: c}
}

func (r *SupabaseRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	var out []*models.Profile
	if err := r.client.Select(ctx, "profiles", supabase.NewQuery().Eq("id", id).Limit(1), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, common.ErrorNotFound
	}
	return out[0], nil
}
