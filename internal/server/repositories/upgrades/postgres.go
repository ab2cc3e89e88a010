package upgrades

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/unity/internal/dbx"
	"github.com/dmitrijs2005/unity/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActive(ctx context.Context, listingID string, now time.Time) ([]*models.Upgrade, error) {
	query := `SELECT id, listing_id, upgrade_type, expires_at, is_active, created_at
		FROM upgrades WHERE is_active = true AND expires_at > $1`
	args := []any{now}
	if listingID != "" {
		query += ` AND listing_id = $2`
		args = append(args, listingID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select upgrades: %w", err)
	}
	return dbx.CollectRows(rows, func(rows *sql.Rows) (*models.Upgrade, error) {
		var u models.Upgrade
		var kind string
		if err := rows.Scan(&u.ID, &u.ListingID, &kind, &u.ExpiresAt, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Kind = models.UpgradeKind(kind)
		return &u, nil
	})
}

func (r *PostgresRepository) Create(ctx context.Context, u *models.Upgrade) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO upgrades (id, listing_id, upgrade_type, expires_at, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.ListingID, string(u.Kind), u.ExpiresAt, u.IsActive, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
