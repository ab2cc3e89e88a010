package listings

import (
	"context"
	"strconv"
	"time"

	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/server/repositories/supabase"
)

const table = "listings"

// SupabaseRepository implements Repository over the PostgREST API.
type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(c *supabase.Client) *SupabaseRepository {
	return &SupabaseRepository{client: c}
}

func (r *SupabaseRepository) List(ctx context.Context, f Filter) ([]*models.Listing, error) {
	q := supabase.NewQuery().Eq("is_active", "true").Order("created_at", true)
	if f.Location != "" {
		q.Eq("location", f.Location)
	}
	if f.Category != "" {
		q.Eq("category", f.Category)
	}
	if f.OwnerID != "" {
		q.Eq("user_id", f.OwnerID)
	}
	if f.AvailableOnly {
		q.Eq("available_now", "true")
	}

	var out []*models.Listing
	if err := r.client.Select(ctx, table, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SupabaseRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	var out []*models.Listing
	if err := r.client.Select(ctx, table, supabase.NewQuery().Eq("id", id).Limit(1), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, common.ErrorNotFound
	}
	return out[0], nil
}

func (r *SupabaseRepository) Create(ctx context.Context, l *models.Listing) error {
	row := *l
	if row.Images == nil {
		row.Images = []string{}
	}
	return r.client.Insert(ctx, table, row, nil)
}

func (r *SupabaseRepository) UpdateAvailability(ctx context.Context, id string, change models.AvailabilityChange, updatedAt time.Time) (*models.Listing, error) {
	body := map[string]any{
		"available_now":   change.AvailableNow,
		"available_until": change.AvailableUntil,
		"updated_at":      updatedAt,
	}

	var out []*models.Listing
	if err := r.client.Update(ctx, table, supabase.NewQuery().Eq("id", id), body, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, common.ErrorNotFound
	}
	return out[0], nil
}

func (r *SupabaseRepository) ExpireAvailability(ctx context.Context, now time.Time) (int64, error) {
	body := map[string]any{
		"available_now":   false,
		"available_until": nil,
		"updated_at":      now,
	}
	q := supabase.NewQuery().Eq("available_now", strconv.FormatBool(true)).Lte("available_until", now)

	var out []struct {
		ID string `json:"id"`
	}
	if err := r.client.Update(ctx, table, q, body, &out); err != nil {
		return 0, err
	}
	return int64(len(out)), nil
}
