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

// BlogRepository defines methods for blog post data access.
type BlogRepository interface {
	GetAll(ctx context.Context) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Create(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error
}

// FailoverBlogRepo serves blog posts from Supabase with a seeded memory fallback.
type FailoverBlogRepo struct {
	db  *database.SupabaseClient
	mem *memCollection[models.BlogPost]
}

func NewFailoverBlogRepo(db *database.SupabaseClient) *FailoverBlogRepo {
	r := &FailoverBlogRepo{db: db, mem: newMemCollection[models.BlogPost]()}
	for _, p := range seedBlogPosts() {
		r.mem.put(p.ID, p)
	}
	return r
}

// GetAll returns posts newest-first by publication date.
func (r *FailoverBlogRepo) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	fetched := false
	if r.db != nil {
		if err := r.db.Select(ctx, "blog_posts", "", &posts); err == nil {
			fetched = true
		} else {
			utils.GetLogger().Warn("blog: store read failed, using memory fallback", zap.Error(err))
		}
	}
	if !fetched {
		posts = r.mem.all()
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts, nil
}

func (r *FailoverBlogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	if r.db != nil {
		var out models.BlogPost
		err := r.db.SelectSingle(ctx, "blog_posts", "slug=eq."+url.QueryEscape(slug), &out)
		if err == nil {
			return &out, nil
		}
		if err != database.ErrNoRows {
			utils.GetLogger().Warn("blog: store read failed, using memory fallback", zap.String("slug", slug), zap.Error(err))
		}
	}
	for _, p := range r.mem.all() {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *FailoverBlogRepo) Create(ctx context.Context, post *models.BlogPost) error {
	if r.db != nil {
		if err := r.db.Insert(ctx, "blog_posts", post, post); err == nil {
			return nil
		} else {
			utils.GetLogger().Warn("blog: store write failed, using memory fallback", zap.Error(err))
		}
	}
	r.mem.put(post.ID, *post)
	return nil
}

func (r *FailoverBlogRepo) Delete(ctx context.Context, id string) error {
	if r.db != nil {
		if err := r.db.Delete(ctx, "blog_posts", "id=eq."+url.QueryEscape(id)); err == nil {
			r.mem.remove(id)
			return nil
		} else {
			utils.GetLogger().Warn("blog: store delete failed, using memory fallback", zap.Error(err))
		}
	}
	if !r.mem.remove(id) {
		return ErrNotFound
	}
	return nil
}
