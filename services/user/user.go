package user

import (
	"context"
	"fmt"
	"time"

	"divineastro/database/repository"
	"divineastro/models"
	"divineastro/services/identity"
)

func (s *DefaultUserService) SyncUser(ctx context.Context, ident identity.Identity, input models.UserSyncInput) (*models.User, error) {
	now := time.Now().UTC()
	usr := &models.User{
		ID:              ident.ID,
		Email:           ident.Email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		ProfileImageURL: input.ProfileImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if existing, err := s.Repo.GetByID(ctx, ident.ID); err == nil {
		usr.CreatedAt = existing.CreatedAt
	} else if err != repository.ErrNotFound {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if err := s.Repo.Upsert(ctx, usr); err != nil {
		return nil, fmt.Errorf("failed to sync user: %w", err)
	}
	return usr, nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.Repo.GetByEmail(ctx, email)
}
