package handlers

import (
	"divineastro/services/identity"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Verifier identity.Verifier

	// Appointment endpoints
	CreateAppointmentHandler       gin.HandlerFunc
	ListAppointmentsHandler        gin.HandlerFunc
	GetAppointmentHandler          gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc

	// Catalog endpoints
	ListProductsHandler  gin.HandlerFunc
	GetProductHandler    gin.HandlerFunc
	CreateProductHandler gin.HandlerFunc
	UpdateProductHandler gin.HandlerFunc
	DeleteProductHandler gin.HandlerFunc

	// Content endpoints
	ListBlogPostsHandler     gin.HandlerFunc
	GetBlogPostHandler       gin.HandlerFunc
	CreateBlogPostHandler    gin.HandlerFunc
	DeleteBlogPostHandler    gin.HandlerFunc
	ListVideosHandler        gin.HandlerFunc
	CreateVideoHandler       gin.HandlerFunc
	DeleteVideoHandler       gin.HandlerFunc
	ListTestimonialsHandler  gin.HandlerFunc
	CreateTestimonialHandler gin.HandlerFunc
	ListZodiacSignsHandler   gin.HandlerFunc
	GetZodiacSignHandler     gin.HandlerFunc

	// Order and payment endpoints
	CreateOrderHandler        gin.HandlerFunc
	ListOrdersHandler         gin.HandlerFunc
	GetOrderHandler           gin.HandlerFunc
	CreatePaymentOrderHandler gin.HandlerFunc
	VerifyPaymentHandler      gin.HandlerFunc

	// Cart endpoints
	CreateCartHandler gin.HandlerFunc
	GetCartHandler    gin.HandlerFunc
	UpdateCartHandler gin.HandlerFunc
	DeleteCartHandler gin.HandlerFunc

	// User endpoints
	SyncUserHandler    gin.HandlerFunc
	CurrentUserHandler gin.HandlerFunc

	// Contact and newsletter endpoints
	ContactFormHandler gin.HandlerFunc
	NewsletterHandler  gin.HandlerFunc

	// Admin upload endpoints
	UploadFileHandler gin.HandlerFunc
}
