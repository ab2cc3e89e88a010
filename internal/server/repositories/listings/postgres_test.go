package listings

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cols    = []string{"id", "user_id", "title", "description", "location", "category", "images", "contact_info",
		"is_active", "available_now", "available_until", "created_at", "updated_at"}
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

func listingRow(id string) []driver.Value {
	return []driver.Value{id, "u1", "Title " + id, "desc", "Riga", "music",
		[]byte(`["a.jpg","b.jpg"]`), []byte(`{"phone":"123"}`), true, false, nil, created, created}
}

func TestList_NoFilters(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM listings WHERE is_active = true ORDER BY created_at DESC`).
		WithoutArgs().
		WillReturnRows(sqlmock.NewRows(cols).AddRow(listingRow("l1")...).AddRow(listingRow("l2")...))

	got, err := repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "l1", got[0].ID)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, got[0].Images)
	require.NotNil(t, got[0].ContactInfo.Phone)
	assert.Equal(t, "123", *got[0].ContactInfo.Phone)
	assert.Nil(t, got[0].ContactInfo.Email)
	assert.Nil(t, got[0].AvailableUntil)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_AllFilters(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`WHERE is_active = true AND location = \$1 AND category = \$2 AND user_id = \$3 AND available_now = true ORDER BY created_at DESC`).
		WithArgs("Riga", "music", "u1").
		WillReturnRows(sqlmock.NewRows(cols))

	got, err := repo.List(context.Background(), Filter{Location: "Riga", Category: "music", OwnerID: "u1", AvailableOnly: true})
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_QueryError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("db is down"))

	_, err := repo.List(context.Background(), Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select listings")
}

func TestList_BadImagesJSON(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	row := listingRow("l1")
	row[6] = []byte(`{`)
	mock.ExpectQuery(`SELECT`).WillReturnRows(sqlmock.NewRows(cols).AddRow(row...))

	_, err := repo.List(context.Background(), Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing l1 images")
}

func TestGetByID(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	until := created.Add(4 * time.Hour)
	row := listingRow("l1")
	row[9] = true
	row[10] = until

	mock.ExpectQuery(`SELECT .* FROM listings WHERE id = \$1`).
		WithArgs("l1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(row...))

	got, err := repo.GetByID(context.Background(), "l1")
	require.NoError(t, err)
	assert.True(t, got.AvailableNow)
	require.NotNil(t, got.AvailableUntil)
	assert.True(t, until.Equal(*got.AvailableUntil))
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`FROM listings WHERE id`).WithArgs("nope").WillReturnRows(sqlmock.NewRows(cols))

	_, err := repo.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	email := "a@b.c"
	l := &models.Listing{
		ID: "l1", UserID: "u1", Title: "T", Location: "Riga", Category: "music",
		ContactInfo: models.ContactInfo{Email: &email},
		IsActive:    true, CreatedAt: created, UpdatedAt: created,
	}

	mock.ExpectExec(`INSERT INTO listings`).
		WithArgs("l1", "u1", "T", "", "Riga", "music", `[]`, `{"email":"a@b.c"}`,
			true, false, nil, created, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), l))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO listings`).WillReturnError(errors.New("duplicate"))

	err := repo.Create(context.Background(), &models.Listing{ID: "l1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: duplicate")
}

func TestUpdateAvailability(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	until := created.Add(4 * time.Hour)
	row := listingRow("l1")
	row[9] = true
	row[10] = until
	row[12] = created.Add(time.Minute)

	mock.ExpectQuery(`UPDATE listings SET available_now = \$2, available_until = \$3, updated_at = \$4\s+WHERE id = \$1 RETURNING`).
		WithArgs("l1", true, until, created.Add(time.Minute)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(row...))

	got, err := repo.UpdateAvailability(context.Background(), "l1",
		models.AvailabilityChange{AvailableNow: true, AvailableUntil: &until}, created.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, got.AvailableNow)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAvailability_NotFound(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`UPDATE listings`).
		WithArgs("nope", false, nil, created).
		WillReturnRows(sqlmock.NewRows(cols))

	_, err := repo.UpdateAvailability(context.Background(), "nope", models.AvailabilityChange{}, created)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestExpireAvailability(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE listings SET available_now = false, available_until = NULL`).
		WithArgs(created).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.ExpireAvailability(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestExpireAvailability_RowsAffectedError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE listings`).WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))

	_, err := repo.ExpireAvailability(context.Background(), created)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows affected error")
}
