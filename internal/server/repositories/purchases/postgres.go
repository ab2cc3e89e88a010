package purchases

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/unity/internal/dbx"
	"github.com/dmitrijs2005/unity/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.UpgradePurchase) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO upgrade_purchases (id, user_id, listing_id, upgrade_type, duration_days, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.UserID, p.ListingID, string(p.Kind), p.DurationDays, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByUser returns the user's purchases, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.UpgradePurchase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, listing_id, upgrade_type, duration_days, created_at
		FROM upgrade_purchases WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select purchases: %w", err)
	}
	return dbx.CollectRows(rows, func(rows *sql.Rows) (*models.UpgradePurchase, error) {
		var p models.UpgradePurchase
		var kind string
		if err := rows.Scan(&p.ID, &p.UserID, &p.ListingID, &kind, &p.DurationDays, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Kind = models.UpgradeKind(kind)
		return &p, nil
	})
}
