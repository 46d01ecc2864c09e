// File: partnerhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partnerhub/config"
	"partnerhub/database"
	chatRepo "partnerhub/database/repository/chat"
	notificationRepo "partnerhub/database/repository/notification"
	partnerRepoPkg "partnerhub/database/repository/partner"
	paymentRepo "partnerhub/database/repository/payment"
	pricingRepo "partnerhub/database/repository/pricing"
	productRepo "partnerhub/database/repository/product"
	scheduleRepo "partnerhub/database/repository/schedule"
	"partnerhub/handlers"
	"partnerhub/middleware"
	"partnerhub/routes"
	"partnerhub/services/chat"
	"partnerhub/services/notification"
	"partnerhub/services/partner"
	"partnerhub/services/payment"
	"partnerhub/services/pricing"
	"partnerhub/services/product"
	"partnerhub/services/schedule"
	"partnerhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	partnerRepository := partnerRepoPkg.NewMongoPartnerRepo()
	productRepository := productRepo.NewMongoProductRepo()
	pricingRepository := pricingRepo.NewMongoPricingRepo()
	scheduleRepository := scheduleRepo.NewMongoScheduleRepo()
	chatRepository := chatRepo.NewMongoChatRepo()
	notificationRepository := notificationRepo.NewMongoNotificationRepo()
	paymentRepository := paymentRepo.NewMongoPaymentRepo()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelIndexes()
	if err := pricingRepository.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure pricing indexes: %v", err)
	}
	if err := paymentRepository.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure payment indexes: %v", err)
	}

	// services.
	partnerService := &partner.DefaultPartnerService{
		Repo: partnerRepository,
	}
	productService := &product.DefaultProductService{
		Repo: productRepository,
	}
	pricingService := &pricing.DefaultPricingService{
		Repo: pricingRepository,
	}
	scheduleService := &schedule.DefaultScheduleService{
		Repo: scheduleRepository,
	}
	chatService := &chat.DefaultChatService{
		Repo:     chatRepository,
		Partners: partnerRepository,
	}
	notificationService := &notification.DefaultNotificationService{
		Repo:     notificationRepository,
		Partners: partnerRepository,
		FCM:      utils.FCMClient,
		Queue:    notification.NewPushQueueClient(),
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:    paymentRepository,
		Gateway: payment.StripeGateway{},
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		PartnerRepo: partnerRepository,

		Partner:      handlers.NewPartnerHandler(partnerService),
		Product:      handlers.NewProductHandler(productService),
		Pricing:      handlers.NewPricingHandler(pricingService),
		Schedule:     handlers.NewScheduleHandler(scheduleService),
		Chat:         handlers.NewChatHandler(chatService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Payment:      handlers.NewPaymentHandler(paymentService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
