// Package purchases records upgrade purchases. Rows are write-once.
package purchases

import (
	"context"

	"github.com/dmitrijs2005/unity/internal/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.UpgradePurchase) error
	ListByUser(ctx context.Context, userID string) ([]*models.UpgradePurchase, error)
}
