package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingSvc(m *fakeManager) *ListingService {
	s := NewListingService(m, nopLogger, 0)
	s.now = fixedClock
	return s
}

func TestCreate_Success(t *testing.T) {
	m := newFakeManager()

	l, err := newListingSvc(m).Create(context.Background(), entertainer, NewListing{
		Title:    "  Jazz trio ",
		Location: "Riga",
		Images:   []string{"a.jpg", "  ", "b.jpg"},
		Phone:    "123",
		Email:    " ",
	})
	require.NoError(t, err)

	_, perr := uuid.Parse(l.ID)
	assert.NoError(t, perr)
	assert.Equal(t, "Jazz trio", l.Title)
	assert.Equal(t, "u1", l.UserID)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, l.Images)
	require.NotNil(t, l.ContactInfo.Phone)
	assert.Nil(t, l.ContactInfo.Email)
	assert.Nil(t, l.ContactInfo.Website)
	assert.True(t, l.IsActive)
	assert.False(t, l.AvailableNow)
	assert.Equal(t, refNow, l.CreatedAt)
	assert.Len(t, m.listings.items, 1)
}

func TestCreate_Validation(t *testing.T) {
	m := newFakeManager()
	svc := newListingSvc(m)

	_, err := svc.Create(context.Background(), entertainer, NewListing{Title: "   "})
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = svc.Create(context.Background(), regularUser, NewListing{Title: "T", Images: []string{"a", "b"}})
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = svc.Create(context.Background(), models.Identity{}, NewListing{Title: "T"})
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	assert.Empty(t, m.listings.items)
}

func TestCreate_RegularUserSingleImage(t *testing.T) {
	m := newFakeManager()
	l, err := newListingSvc(m).Create(context.Background(), regularUser, NewListing{Title: "T", Images: []string{"a", ""}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, l.Images)
}

func TestCreate_RepositoryError(t *testing.T) {
	m := newFakeManager()
	m.listings.createErr = errors.New("insert failed")

	_, err := newListingSvc(m).Create(context.Background(), entertainer, NewListing{Title: "T"})
	require.ErrorContains(t, err, "insert failed")
}

func TestMyListings(t *testing.T) {
	m := newFakeManager()
	m.listings.items = []*models.Listing{
		{ID: "a", UserID: "u1", IsActive: true},
		{ID: "b", UserID: "u2", IsActive: true},
	}

	got, err := newListingSvc(m).MyListings(context.Background(), entertainer)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "u1", m.listings.lastList.OwnerID)
}

func TestToggleAvailableNow_OnThenOff(t *testing.T) {
	m := newFakeManager()
	m.listings.items = []*models.Listing{{ID: "a", UserID: "u1", IsActive: true}}
	svc := newListingSvc(m)

	on, err := svc.ToggleAvailableNow(context.Background(), entertainer, "a")
	require.NoError(t, err)
	assert.True(t, on.AvailableNow)
	require.NotNil(t, on.AvailableUntil)
	assert.Equal(t, refNow.Add(4*time.Hour), *on.AvailableUntil)

	off, err := svc.ToggleAvailableNow(context.Background(), entertainer, "a")
	require.NoError(t, err)
	assert.False(t, off.AvailableNow)
	assert.Nil(t, off.AvailableUntil)
}

func TestToggleAvailableNow_ConfiguredWindow(t *testing.T) {
	m := newFakeManager()
	m.listings.items = []*models.Listing{{ID: "a", UserID: "u1", IsActive: true}}
	svc := NewListingService(m, nopLogger, 24*time.Hour)
	svc.now = fixedClock

	on, err := svc.ToggleAvailableNow(context.Background(), entertainer, "a")
	require.NoError(t, err)
	assert.Equal(t, refNow.Add(24*time.Hour), *on.AvailableUntil)
}

func TestToggleAvailableNow_Errors(t *testing.T) {
	m := newFakeManager()
	m.listings.items = []*models.Listing{{ID: "a", UserID: "u1", IsActive: true}}
	svc := newListingSvc(m)

	_, err := svc.ToggleAvailableNow(context.Background(), regularUser, "a")
	require.ErrorIs(t, err, common.ErrorForbidden)

	_, err = svc.ToggleAvailableNow(context.Background(), entertainer, "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)

	m.listings.updateErr = errors.New("write rejected")
	_, err = svc.ToggleAvailableNow(context.Background(), entertainer, "a")
	require.ErrorContains(t, err, "write rejected")
	assert.False(t, m.listings.items[0].AvailableNow, "rejected write leaves the listing unchanged")
}
