package listings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/server/repositories/supabase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupabaseRepo(t *testing.T, h http.HandlerFunc) *SupabaseRepository {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewSupabaseRepository(supabase.NewClient(srv.URL, "key", time.Second))
}

func TestSupabaseList_Filters(t *testing.T) {
	repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/rest/v1/listings", r.URL.Path)
		assert.Equal(t, "eq.true", q.Get("is_active"))
		assert.Equal(t, "created_at.desc", q.Get("order"))
		assert.Equal(t, "eq.Riga", q.Get("location"))
		assert.Equal(t, "eq.true", q.Get("available_now"))
		assert.Empty(t, q.Get("category"))
		_, _ = w.Write([]byte(`[{"id":"l1","title":"A","images":["x"],"contact_info":{"website":"w"},"available_now":true,"available_until":"2026-03-01T14:00:00Z"}]`))
	})

	got, err := repo.List(context.Background(), Filter{Location: "Riga", AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"x"}, got[0].Images)
	require.NotNil(t, got[0].ContactInfo.Website)
	require.NotNil(t, got[0].AvailableUntil)
}

func TestSupabaseGetByID_NotFound(t *testing.T) {
	repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.nope", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := repo.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSupabaseCreate_EmptyImagesArray(t *testing.T) {
	repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []any{}, body["images"])
		assert.Equal(t, "l1", body["id"])
		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, repo.Create(context.Background(), &models.Listing{ID: "l1", Title: "T"}))
}

func TestSupabaseUpdateAvailability(t *testing.T) {
	repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.l1", r.URL.Query().Get("id"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, false, body["available_now"])
		assert.Nil(t, body["available_until"])
		_, _ = w.Write([]byte(`[{"id":"l1","available_now":false}]`))
	})

	got, err := repo.UpdateAvailability(context.Background(), "l1", models.AvailabilityChange{}, time.Now())
	require.NoError(t, err)
	assert.False(t, got.AvailableNow)
}

func TestSupabaseExpireAvailability(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "eq.true", q.Get("available_now"))
		assert.Equal(t, "lte.2026-03-01T12:00:00Z", q.Get("available_until"))
		_, _ = w.Write([]byte(`[{"id":"a"},{"id":"b"}]`))
	})

	n, err := repo.ExpireAvailability(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestSupabase_BackendError(t *testing.T) {
	repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := repo.List(context.Background(), Filter{})
	require.ErrorIs(t, err, common.ErrorBackend)
}
