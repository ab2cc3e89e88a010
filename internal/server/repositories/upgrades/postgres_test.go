package upgrades

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestListActive_AllListings(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "listing_id", "upgrade_type", "expires_at", "is_active", "created_at"}).
		AddRow("u1", "l1", "sticky", now.Add(time.Hour), true, now).
		AddRow("u2", "l2", "highlight", now.Add(2*time.Hour), true, now)

	mock.ExpectQuery(`FROM upgrades WHERE is_active = true AND expires_at > \$1$`).
		WithArgs(now).
		WillReturnRows(rows)

	got, err := repo.ListActive(context.Background(), "", now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.UpgradeSticky, got[0].Kind)
	assert.Equal(t, "l2", got[1].ListingID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActive_OneListing(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`expires_at > \$1 AND listing_id = \$2`).
		WithArgs(now, "l1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "listing_id", "upgrade_type", "expires_at", "is_active", "created_at"}))

	got, err := repo.ListActive(context.Background(), "l1", now)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActive_Error(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM upgrades`).WillReturnError(errors.New("down"))

	_, err := repo.ListActive(context.Background(), "", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select upgrades")
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	u := &models.Upgrade{ID: "u1", ListingID: "l1", Kind: models.UpgradeHighlight,
		ExpiresAt: now.AddDate(0, 0, 30), IsActive: true, CreatedAt: now}

	mock.ExpectExec(`INSERT INTO upgrades`).
		WithArgs("u1", "l1", "highlight", now.AddDate(0, 0, 30), true, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), u))
	require.NoError(t, mock.ExpectationsWereMet())
}
