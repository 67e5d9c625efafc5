package handlers

import (
	"errors"
	"net/http"

	"divineastro/database/repository"
	"divineastro/models"
	"divineastro/services/content"
	"divineastro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler exposes the blog, video, testimonial and zodiac endpoints.
type ContentHandler struct {
	Service content.ContentService
}

// ListBlogPostsHandler handles GET /api/blog.
func (h *ContentHandler) ListBlogPostsHandler(c *gin.Context) {
	posts, err := h.Service.GetBlogPosts(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list blog posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blog posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBlogPostHandler handles GET /api/blog/:slug.
func (h *ContentHandler) GetBlogPostHandler(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.Service.GetBlogPostBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch blog post", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blog post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreateBlogPostHandler handles POST /api/blog (admin only).
func (h *ContentHandler) CreateBlogPostHandler(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.BindingError(c, err)
		return
	}
	created, err := h.Service.CreateBlogPost(c.Request.Context(), post)
	if err != nil {
		utils.GetLogger().Error("Failed to create blog post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create blog post"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteBlogPostHandler handles DELETE /api/blog/:slug (admin only).
// The admin dashboard passes the post id in the path segment.
func (h *ContentHandler) DeleteBlogPostHandler(c *gin.Context) {
	id := c.Param("slug")
	if err := h.Service.DeleteBlogPost(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete blog post", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete blog post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}

// ListVideosHandler handles GET /api/videos.
func (h *ContentHandler) ListVideosHandler(c *gin.Context) {
	videos, err := h.Service.GetVideos(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list videos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch videos"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

// CreateVideoHandler handles POST /api/videos (admin only).
func (h *ContentHandler) CreateVideoHandler(c *gin.Context) {
	var video models.Video
	if err := c.ShouldBindJSON(&video); err != nil {
		utils.BindingError(c, err)
		return
	}
	created, err := h.Service.CreateVideo(c.Request.Context(), video)
	if err != nil {
		utils.GetLogger().Error("Failed to create video", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create video"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteVideoHandler handles DELETE /api/videos/:id (admin only).
func (h *ContentHandler) DeleteVideoHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteVideo(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete video", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete video"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

// ListTestimonialsHandler handles GET /api/testimonials.
func (h *ContentHandler) ListTestimonialsHandler(c *gin.Context) {
	testimonials, err := h.Service.GetTestimonials(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// CreateTestimonialHandler handles POST /api/testimonials (admin only).
func (h *ContentHandler) CreateTestimonialHandler(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		utils.BindingError(c, err)
		return
	}
	created, err := h.Service.CreateTestimonial(c.Request.Context(), testimonial)
	if err != nil {
		utils.GetLogger().Error("Failed to create testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create testimonial"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListZodiacSignsHandler handles GET /api/zodiac.
func (h *ContentHandler) ListZodiacSignsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.GetZodiacSigns())
}

// GetZodiacSignHandler handles GET /api/zodiac/:slug.
func (h *ContentHandler) GetZodiacSignHandler(c *gin.Context) {
	slug := c.Param("slug")
	sign, err := h.Service.GetZodiacSign(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "zodiac sign not found"})
		return
	}
	c.JSON(http.StatusOK, sign)
}
