package listings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/dbx"
	"github.com/dmitrijs2005/unity/internal/models"
)

const columns = `id, user_id, title, description, location, category, images, contact_info,
	is_active, available_now, available_until, created_at, updated_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
// Images and contact info live in JSONB columns.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(row scanner) (*models.Listing, error) {
	var (
		l       models.Listing
		images  []byte
		contact []byte
		until   sql.NullTime
	)
	if err := row.Scan(&l.ID, &l.UserID, &l.Title, &l.Description, &l.Location, &l.Category,
		&images, &contact, &l.IsActive, &l.AvailableNow, &until, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &l.Images); err != nil {
			return nil, fmt.Errorf("listing %s images: %w", l.ID, err)
		}
	}
	if len(contact) > 0 {
		if err := json.Unmarshal(contact, &l.ContactInfo); err != nil {
			return nil, fmt.Errorf("listing %s contact info: %w", l.ID, err)
		}
	}
	if until.Valid {
		t := until.Time
		l.AvailableUntil = &t
	}
	return &l, nil
}

// List returns active listings matching f, newest first.
func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]*models.Listing, error) {
	conds := []string{"is_active = true"}
	var args []any

	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Location != "" {
		add("location = $%d", f.Location)
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.OwnerID != "" {
		add("user_id = $%d", f.OwnerID)
	}
	if f.AvailableOnly {
		conds = append(conds, "available_now = true")
	}

	query := `SELECT ` + columns + ` FROM listings WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select listings: %w", err)
	}
	return dbx.CollectRows(rows, func(rows *sql.Rows) (*models.Listing, error) {
		return scanListing(rows)
	})
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM listings WHERE id = $1`, id)
	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select listing: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) Create(ctx context.Context, l *models.Listing) error {
	images := l.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return err
	}
	contactJSON, err := json.Marshal(l.ContactInfo)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO listings (id, user_id, title, description, location, category, images, contact_info,
			is_active, available_now, available_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.db.ExecContext(ctx, query,
		l.ID, l.UserID, l.Title, l.Description, l.Location, l.Category, string(imagesJSON), string(contactJSON),
		l.IsActive, l.AvailableNow, l.AvailableUntil, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// UpdateAvailability writes both availability fields in one statement and
// returns the updated row.
func (r *PostgresRepository) UpdateAvailability(ctx context.Context, id string, change models.AvailabilityChange, updatedAt time.Time) (*models.Listing, error) {
	query := `UPDATE listings SET available_now = $2, available_until = $3, updated_at = $4
		WHERE id = $1 RETURNING ` + columns

	row := r.db.QueryRowContext(ctx, query, id, change.AvailableNow, change.AvailableUntil, updatedAt)
	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) ExpireAvailability(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE listings SET available_now = false, available_until = NULL, updated_at = $1
		WHERE available_now = true AND available_until IS NOT NULL AND available_until <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
