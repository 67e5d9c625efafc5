package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"divineastro/config"
	"divineastro/cron"
	"divineastro/database"
	"divineastro/database/repository"
	"divineastro/handlers"
	"divineastro/middleware"
	"divineastro/routes"
	"divineastro/services/appointment"
	"divineastro/services/cart"
	"divineastro/services/catalog"
	"divineastro/services/content"
	"divineastro/services/identity"
	"divineastro/services/order"
	"divineastro/services/user"
	"divineastro/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// The Supabase store is optional at startup: without it every repository
	// serves from its seeded in-memory fallback.
	db, err := database.NewSupabaseClient()
	if err != nil {
		logger.Warn("Supabase unavailable, serving from in-memory store", zap.Error(err))
		db = nil
	}

	utils.InitCartCache()
	utils.InitAuthCache()

	uploadHandler := handlers.UploadsDisabledHandler
	if cloudinaryStorageService, err := utils.Cloudinary(); err != nil {
		logger.Warn("Cloudinary unavailable, admin uploads disabled", zap.Error(err))
	} else {
		uploadHandler = handlers.NewStorageHandler(cloudinaryStorageService).UploadFileHandler
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	productRepo := repository.NewFailoverProductRepo(db)
	blogRepo := repository.NewFailoverBlogRepo(db)
	appointmentRepo := repository.NewFailoverAppointmentRepo(db)
	orderRepo := repository.NewFailoverOrderRepo(db)
	videoRepo := repository.NewFailoverVideoRepo(db)
	testimonialRepo := repository.NewFailoverTestimonialRepo(db)
	userRepo := repository.NewFailoverUserRepo(db)

	// services.
	verifier := identity.NewSupabaseVerifier(utils.GetAuthCacheClient())

	cron.InitReminderWorker()

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:      appointmentRepo,
		Reminders: cron.NewScheduler(),
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: productRepo,
	}
	contentService := &content.DefaultContentService{
		BlogRepo:        blogRepo,
		VideoRepo:       videoRepo,
		TestimonialRepo: testimonialRepo,
	}
	orderService := &order.DefaultOrderService{
		Repo: orderRepo,
	}
	cartService := &cart.DefaultCartService{
		Cache: utils.GetCartCacheClient(),
		TTL:   time.Duration(config.AppConfig.CartTTLMin) * time.Minute,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	appointmentHandler := &handlers.AppointmentHandler{Service: appointmentService}
	catalogHandler := &handlers.CatalogHandler{Service: catalogService}
	contentHandler := &handlers.ContentHandler{Service: contentService}
	orderHandler := &handlers.OrderHandler{Service: orderService}
	cartHandler := &handlers.CartHandler{Service: cartService}
	userHandler := &handlers.UserHandler{Service: userService}
	contactHandler := &handlers.ContactHandler{}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Verifier: verifier,

		// Appointment endpoints.
		CreateAppointmentHandler:       appointmentHandler.CreateAppointmentHandler,
		ListAppointmentsHandler:        appointmentHandler.ListAppointmentsHandler,
		GetAppointmentHandler:          appointmentHandler.GetAppointmentHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateAppointmentStatusHandler,

		// Catalog endpoints.
		ListProductsHandler:  catalogHandler.ListProductsHandler,
		GetProductHandler:    catalogHandler.GetProductHandler,
		CreateProductHandler: catalogHandler.CreateProductHandler,
		UpdateProductHandler: catalogHandler.UpdateProductHandler,
		DeleteProductHandler: catalogHandler.DeleteProductHandler,

		// Content endpoints.
		ListBlogPostsHandler:     contentHandler.ListBlogPostsHandler,
		GetBlogPostHandler:       contentHandler.GetBlogPostHandler,
		CreateBlogPostHandler:    contentHandler.CreateBlogPostHandler,
		DeleteBlogPostHandler:    contentHandler.DeleteBlogPostHandler,
		ListVideosHandler:        contentHandler.ListVideosHandler,
		CreateVideoHandler:       contentHandler.CreateVideoHandler,
		DeleteVideoHandler:       contentHandler.DeleteVideoHandler,
		ListTestimonialsHandler:  contentHandler.ListTestimonialsHandler,
		CreateTestimonialHandler: contentHandler.CreateTestimonialHandler,
		ListZodiacSignsHandler:   contentHandler.ListZodiacSignsHandler,
		GetZodiacSignHandler:     contentHandler.GetZodiacSignHandler,

		// Order and payment endpoints.
		CreateOrderHandler:        orderHandler.CreateOrderHandler,
		ListOrdersHandler:         orderHandler.ListOrdersHandler,
		GetOrderHandler:           orderHandler.GetOrderHandler,
		CreatePaymentOrderHandler: orderHandler.CreatePaymentOrderHandler,
		VerifyPaymentHandler:      orderHandler.VerifyPaymentHandler,

		// Cart endpoints.
		CreateCartHandler: cartHandler.CreateCartHandler,
		GetCartHandler:    cartHandler.GetCartHandler,
		UpdateCartHandler: cartHandler.UpdateCartHandler,
		DeleteCartHandler: cartHandler.DeleteCartHandler,

		// User endpoints.
		SyncUserHandler:    userHandler.SyncUserHandler,
		CurrentUserHandler: userHandler.CurrentUserHandler,

		// Contact and newsletter endpoints.
		ContactFormHandler: contactHandler.ContactFormHandler,
		NewsletterHandler:  contactHandler.NewsletterHandler,

		// Admin upload endpoints.
		UploadFileHandler: uploadHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCartCacheClient(), utils.GetAuthCacheClient()},
		config.AppConfig.SupabaseURL,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
