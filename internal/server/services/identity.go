package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/server/auth"
	"github.com/dmitrijs2005/unity/internal/server/repositories/repomanager"
)

// IdentityService maps an access token to the caller's identity. The user
// type only gates features; it is never an authorization boundary for data
// the backend already protects.
type IdentityService struct {
	repos     repomanager.Repositories
	jwtSecret []byte
}

func NewIdentityService(repos repomanager.Repositories, secret string) *IdentityService {
	return &IdentityService{repos: repos, jwtSecret: []byte(secret)}
}

// Resolve verifies token and loads the caller's user type. A user without
// a profile row is treated as a non-entertainer.
func (s *IdentityService) Resolve(ctx context.Context, token string) (models.Identity, error) {
	userID, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return models.Identity{}, err
	}

	id := models.Identity{UserID: userID, UserType: models.UserTypeNonEntertainer}

	p, err := s.repos.Profiles().GetByID(ctx, userID)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return id, nil
	case err != nil:
		return models.Identity{}, fmt.Errorf("load profile: %w", err)
	}

	if p.UserType == models.UserTypeEntertainer {
		id.UserType = models.UserTypeEntertainer
	}
	return id, nil
}
