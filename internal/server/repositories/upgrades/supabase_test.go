package upgrades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/server/repositories/supabase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupabaseListActive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/rest/v1/upgrades", r.URL.Path)
		assert.Equal(t, "eq.true", q.Get("is_active"))
		assert.Equal(t, "gt.2026-03-01T12:00:00Z", q.Get("expires_at"))
		assert.Equal(t, "eq.l1", q.Get("listing_id"))
		_, _ = w.Write([]byte(`[{"id":"u1","listing_id":"l1","upgrade_type":"image_rotation","expires_at":"2026-03-02T00:00:00Z","is_active":true}]`))
	}))
	defer srv.Close()

	repo := NewSupabaseRepository(supabase.NewClient(srv.URL, "k", time.Second))
	got, err := repo.ListActive(context.Background(), "l1", now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.UpgradeImageRotation, got[0].Kind)
}

func TestSupabaseCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sticky", body["upgrade_type"])
		assert.Equal(t, true, body["is_active"])
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	repo := NewSupabaseRepository(supabase.NewClient(srv.URL, "k", time.Second))
	require.NoError(t, repo.Create(context.Background(), &models.Upgrade{
		ID: "u1", ListingID: "l1", Kind: models.UpgradeSticky, ExpiresAt: now, IsActive: true, CreatedAt: now,
	}))
}
