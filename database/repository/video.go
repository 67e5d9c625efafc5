package repository

import (
	"context"
	"net/url"
	"sort"

	"divineastro/database"
	"divineastro/models"
	"divineastro/utils"

	"go.uber.org/zap"
)

// VideoRepository defines methods for video content data access.
type VideoRepository interface {
	GetAll(ctx context.Context) ([]models.Video, error)
	Create(ctx context.Context, video *models.Video) error
	Delete(ctx context.Context, id string) error
}

// FailoverVideoRepo serves videos from Supabase with a memory fallback.
type FailoverVideoRepo struct {
	db  *database.SupabaseClient
	mem *memCollection[models.Video]
}

func NewFailoverVideoRepo(db *database.SupabaseClient) *FailoverVideoRepo {
	return &FailoverVideoRepo{db: db, mem: newMemCollection[models.Video]()}
}

func (r *FailoverVideoRepo) GetAll(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video
	fetched := false
	if r.db != nil {
		if err := r.db.Select(ctx, "videos", "", &videos); err == nil {
			fetched = true
		} else {
			utils.GetLogger().Warn("videos: store read failed, using memory fallback", zap.Error(err))
		}
	}
	if !fetched {
		videos = r.mem.all()
	}
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
	return videos, nil
}

func (r *FailoverVideoRepo) Create(ctx context.Context, video *models.Video) error {
	if r.db != nil {
		if err := r.db.Insert(ctx, "videos", video, video); err == nil {
			return nil
		} else {
			utils.GetLogger().Warn("videos: store write failed, using memory fallback", zap.Error(err))
		}
	}
	r.mem.put(video.ID, *video)
	return nil
}

func (r *FailoverVideoRepo) Delete(ctx context.Context, id string) error {
	if r.db != nil {
		if err := r.db.Delete(ctx, "videos", "id=eq."+url.QueryEscape(id)); err == nil {
			r.mem.remove(id)
			return nil
		} else {
			utils.GetLogger().Warn("videos: store delete failed, using memory fallback", zap.Error(err))
		}
	}
	if !r.mem.remove(id) {
		return ErrNotFound
	}
	return nil
}
