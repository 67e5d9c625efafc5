package user

import (
	"context"

	"divineastro/database/repository"
	"divineastro/models"
	"divineastro/services/identity"
)

// UserService keeps the users table in step with Supabase Auth signups.
type UserService interface {
	// SyncUser upserts the profile row for a verified identity.
	SyncUser(ctx context.Context, ident identity.Identity, input models.UserSyncInput) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo repository.UserRepository
}
