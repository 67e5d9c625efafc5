package content

import (
	"context"

	"divineastro/database/repository"
	"divineastro/models"
)

// ContentService manages blog posts, videos, testimonials, and the static
// zodiac reference pages.
type ContentService interface {
	GetBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreateBlogPost(ctx context.Context, post models.BlogPost) (*models.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id string) error

	GetVideos(ctx context.Context) ([]models.Video, error)
	CreateVideo(ctx context.Context, video models.Video) (*models.Video, error)
	DeleteVideo(ctx context.Context, id string) error

	GetTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (*models.Testimonial, error)

	GetZodiacSigns() []models.ZodiacSign
	GetZodiacSign(slug string) (*models.ZodiacSign, error)
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	BlogRepo        repository.BlogRepository
	VideoRepo       repository.VideoRepository
	TestimonialRepo repository.TestimonialRepository
}
