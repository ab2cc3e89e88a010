package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/dbx"
	"github.com/dmitrijs2005/unity/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	var p models.Profile
	var userType string

	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_type, display_name, email, created_at, updated_at FROM profiles WHERE id = $1`, id).
		Scan(&p.ID, &userType, &p.DisplayName, &p.Email, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select profile: %w", err)
	}

	p.UserType = models.UserType(userType)
	return &p, nil
}
