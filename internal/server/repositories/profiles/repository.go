// Package profiles reads user profiles; they are owned by the identity
// provider and never written here.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/unity/internal/models"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
}
