package repository

import (
	"context"
	"net/url"

	"divineastro/database"
	"divineastro/models"
	"divineastro/utils"

	"go.uber.org/zap"
)

// UserRepository defines methods for user profile data access.
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// FailoverUserRepo serves user profiles from Supabase with a memory fallback.
type FailoverUserRepo struct {
	db  *database.SupabaseClient
	mem *memCollection[models.User]
}

func NewFailoverUserRepo(db *database.SupabaseClient) *FailoverUserRepo {
	return &FailoverUserRepo{db: db, mem: newMemCollection[models.User]()}
}

func (r *FailoverUserRepo) Upsert(ctx context.Context, user *models.User) error {
	if r.db != nil {
		if err := r.db.Upsert(ctx, "users", "id", user, user); err == nil {
			return nil
		} else {
			utils.GetLogger().Warn("users: store write failed, using memory fallback", zap.Error(err))
		}
	}
	r.mem.put(user.ID, *user)
	return nil
}

func (r *FailoverUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if r.db != nil {
		var out models.User
		err := r.db.SelectSingle(ctx, "users", "id=eq."+url.QueryEscape(id), &out)
		if err == nil {
			return &out, nil
		}
		if err != database.ErrNoRows {
			utils.GetLogger().Warn("users: store read failed, using memory fallback", zap.String("id", id), zap.Error(err))
		}
	}
	if u, ok := r.mem.get(id); ok {
		return &u, nil
	}
	return nil, ErrNotFound
}

func (r *FailoverUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.db != nil {
		var out models.User
		err := r.db.SelectSingle(ctx, "users", "email=eq."+url.QueryEscape(email), &out)
		if err == nil {
			return &out, nil
		}
		if err != database.ErrNoRows {
			utils.GetLogger().Warn("users: store read failed, using memory fallback", zap.String("email", email), zap.Error(err))
		}
	}
	for _, u := range r.mem.all() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}
