package repository

import (
	"context"

	"divineastro/database"
	"divineastro/models"
	"divineastro/utils"

	"go.uber.org/zap"
)

// TestimonialRepository defines methods for testimonial data access.
type TestimonialRepository interface {
	GetAll(ctx context.Context) ([]models.Testimonial, error)
	Create(ctx context.Context, testimonial *models.Testimonial) error
}

// FailoverTestimonialRepo serves testimonials from Supabase, falling back to
// the seeded reviews shown on the landing page.
type FailoverTestimonialRepo struct {
	db  *database.SupabaseClient
	mem *memCollection[models.Testimonial]
}

func NewFailoverTestimonialRepo(db *database.SupabaseClient) *FailoverTestimonialRepo {
	r := &FailoverTestimonialRepo{db: db, mem: newMemCollection[models.Testimonial]()}
	for _, t := range seedTestimonials() {
		r.mem.put(t.ID, t)
	}
	return r
}

func (r *FailoverTestimonialRepo) GetAll(ctx context.Context) ([]models.Testimonial, error) {
	if r.db != nil {
		var out []models.Testimonial
		if err := r.db.Select(ctx, "testimonials", "", &out); err == nil {
			return out, nil
		} else {
			utils.GetLogger().Warn("testimonials: store read failed, using memory fallback", zap.Error(err))
		}
	}
	return r.mem.all(), nil
}

func (r *FailoverTestimonialRepo) Create(ctx context.Context, testimonial *models.Testimonial) error {
	if r.db != nil {
		if err := r.db.Insert(ctx, "testimonials", testimonial, testimonial); err == nil {
			return nil
		} else {
			utils.GetLogger().Warn("testimonials: store write failed, using memory fallback", zap.Error(err))
		}
	}
	r.mem.put(testimonial.ID, *testimonial)
	return nil
}
