package routes

import (
	"net/http"
	"time"

	"divineastro/handlers"
	"divineastro/middleware"
	"divineastro/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the consultation booking endpoints.
// Booking and lookup are public; the admin workflow requires an admin identity.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.CreateAppointmentHandler)
		api.GET("/:id", hb.GetAppointmentHandler)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(hb.Verifier), middleware.RequireAdmin())
		admin.GET("", hb.ListAppointmentsHandler)
		admin.PATCH("/:id/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterCatalogRoutes registers the product endpoints. Reads are public;
// writes require an admin identity.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/products")
	{
		api.GET("", hb.ListProductsHandler)
		api.GET("/:id", hb.GetProductHandler)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(hb.Verifier), middleware.RequireAdmin())
		admin.POST("", hb.CreateProductHandler)
		admin.PUT("/:id", hb.UpdateProductHandler)
		admin.DELETE("/:id", hb.DeleteProductHandler)
	}
}

// RegisterContentRoutes registers blog, video, testimonial and zodiac endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	blog := r.Group("/api/blog")
	{
		blog.GET("", hb.ListBlogPostsHandler)
		blog.GET("/:slug", hb.GetBlogPostHandler)

		admin := blog.Group("")
		admin.Use(middleware.AuthMiddleware(hb.Verifier), middleware.RequireAdmin())
		admin.POST("", hb.CreateBlogPostHandler)
		admin.DELETE("/:slug", hb.DeleteBlogPostHandler)
	}

	videos := r.Group("/api/videos")
	{
		videos.GET("", hb.ListVideosHandler)

		admin := videos.Group("")
		admin.Use(middleware.AuthMiddleware(hb.Verifier), middleware.RequireAdmin())
		admin.POST("", hb.CreateVideoHandler)
		admin.DELETE("/:id", hb.DeleteVideoHandler)
	}

	testimonials := r.Group("/api/testimonials")
	{
		testimonials.GET("", hb.ListTestimonialsHandler)

		admin := testimonials.Group("")
		admin.Use(middleware.AuthMiddleware(hb.Verifier), middleware.RequireAdmin())
		admin.POST("", hb.CreateTestimonialHandler)
	}

	zodiac := r.Group("/api/zodiac")
	{
		zodiac.GET("", hb.ListZodiacSignsHandler)
		zodiac.GET("/:slug", hb.GetZodiacSignHandler)
	}
}

// RegisterOrderRoutes registers checkout and payment endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	orders := r.Group("/api/orders")
	{
		orders.POST("", hb.CreateOrderHandler)
		orders.GET("/:id", hb.GetOrderHandler)

		admin := orders.Group("")
		admin.Use(middleware.AuthMiddleware(hb.Verifier), middleware.RequireAdmin())
		admin.GET("", hb.ListOrdersHandler)
	}

	payment := r.Group("/api/payment")
	{
		payment.POST("/create-order", hb.CreatePaymentOrderHandler)
		payment.POST("/verify", hb.VerifyPaymentHandler)
	}
}

// RegisterCartRoutes registers the Redis cart session endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.POST("", hb.CreateCartHandler)
		api.GET("/:id", hb.GetCartHandler)
		api.PUT("/:id/items", hb.UpdateCartHandler)
		api.DELETE("/:id", hb.DeleteCartHandler)
	}
}

// RegisterUserRoutes registers the authenticated profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.POST("/sync", hb.SyncUserHandler)
		api.GET("/me", hb.CurrentUserHandler)
	}
}

// RegisterContactRoutes registers the contact form and newsletter endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.ContactFormHandler)
	r.POST("/api/newsletter", hb.NewsletterHandler)
}

// RegisterAdminRoutes registers the admin media upload endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.AuthMiddleware(hb.Verifier), middleware.RequireAdmin())
		admin.POST("/uploads/:bucket", hb.UploadFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAppointmentRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
