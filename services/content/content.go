package content

import (
	"context"
	"fmt"
	"time"

	"divineastro/models"

	"github.com/google/uuid"
)

func (s *DefaultContentService) GetBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	return s.BlogRepo.GetAll(ctx)
}

func (s *DefaultContentService) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return s.BlogRepo.GetBySlug(ctx, slug)
}

func (s *DefaultContentService) CreateBlogPost(ctx context.Context, post models.BlogPost) (*models.BlogPost, error) {
	post.ID = uuid.NewString()
	if post.PublishedAt.IsZero() {
		post.PublishedAt = time.Now().UTC()
	}
	if err := s.BlogRepo.Create(ctx, &post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return &post, nil
}

func (s *DefaultContentService) DeleteBlogPost(ctx context.Context, id string) error {
	return s.BlogRepo.Delete(ctx, id)
}

func (s *DefaultContentService) GetVideos(ctx context.Context) ([]models.Video, error) {
	return s.VideoRepo.GetAll(ctx)
}

func (s *DefaultContentService) CreateVideo(ctx context.Context, video models.Video) (*models.Video, error) {
	video.ID = uuid.NewString()
	video.CreatedAt = time.Now().UTC()
	if err := s.VideoRepo.Create(ctx, &video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return &video, nil
}

func (s *DefaultContentService) DeleteVideo(ctx context.Context, id string) error {
	return s.VideoRepo.Delete(ctx, id)
}

func (s *DefaultContentService) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.TestimonialRepo.GetAll(ctx)
}

func (s *DefaultContentService) CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (*models.Testimonial, error) {
	testimonial.ID = uuid.NewString()
	if err := s.TestimonialRepo.Create(ctx, &testimonial); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return &testimonial, nil
}
