// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"partnerhub/handlers"
	"partnerhub/middleware"
	"partnerhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPartnerRoutes registers partner account endpoints.
func RegisterPartnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/partners")
	{
		api.POST("/register", hb.Partner.RegisterPartnerHandler)
		api.POST("/login", hb.Partner.AuthenticatePartnerHandler)
		api.POST("/verify-otp", hb.Partner.VerifyPartnerOTPHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthPartnerMiddleware(hb.PartnerRepo, utils.GetAuthCacheClient()))
		api.GET("/me", hb.Partner.GetPartnerProfileHandler)
		api.PUT("/complete-profile", hb.Partner.CompletePartnerProfileHandler)
		api.DELETE("/revoke", hb.Partner.RevokePartnerTokenHandler)
		api.DELETE("/me", hb.Partner.DeactivatePartnerHandler)
	}
}

// RegisterProductRoutes registers the partner-scoped product catalog.
func RegisterProductRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/products")
	{
		api.Use(middleware.JWTAuthPartnerMiddleware(hb.PartnerRepo, utils.GetAuthCacheClient()))
		api.POST("", hb.Product.CreateProductHandler)
		api.GET("", hb.Product.ListProductsHandler)
		api.GET("/:id", hb.Product.GetProductHandler)
		api.PUT("/:id", hb.Product.UpdateProductHandler)
		api.DELETE("/:id", hb.Product.DeleteProductHandler)
	}
}

// RegisterPricingRoutes registers the registration fee admin surface.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/registerFee")
	{
		api.GET("/getPricingSettings", hb.Pricing.GetPricingSettingsHandler)
		api.POST("/updatePricingSettings", hb.Pricing.UpdatePricingSettingsHandler)
		api.GET("/getPricingHistory", hb.Pricing.GetPricingHistoryHandler)
		api.GET("/getPricingMetrics", hb.Pricing.GetPricingMetricsHandler)

		api.POST("/createFeature", hb.Pricing.CreateFeatureHandler)
		api.GET("/getFeatures", hb.Pricing.GetFeaturesHandler)
		api.PUT("/updateFeature/:id", hb.Pricing.UpdateFeatureHandler)
		api.DELETE("/deleteFeature/:id", hb.Pricing.DeleteFeatureHandler)
		api.PUT("/reorderFeatures", hb.Pricing.ReorderFeaturesHandler)
		api.PUT("/toggleFeature/:id", hb.Pricing.ToggleFeatureHandler)

		api.POST("/createHelpContent", hb.Pricing.CreateHelpContentHandler)
		api.GET("/getHelpContent", hb.Pricing.GetHelpContentHandler)
		api.PUT("/updateHelpContent/:id", hb.Pricing.UpdateHelpContentHandler)
		api.DELETE("/deleteHelpContent/:id", hb.Pricing.DeleteHelpContentHandler)
		api.GET("/getHelpCategories", hb.Pricing.GetHelpCategoriesHandler)
		api.GET("/searchHelpContent", hb.Pricing.SearchHelpContentHandler)
	}
}

// RegisterScheduleRoutes registers slot availability and booking.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.Use(middleware.JWTAuthPartnerMiddleware(hb.PartnerRepo, utils.GetAuthCacheClient()))
		api.POST("/setup", hb.Schedule.SetupSlotsHandler)
		api.GET("/availability", hb.Schedule.GetAvailableSlotsHandler)
		api.GET("/:serviceId/:date", hb.Schedule.GetScheduleHandler)
		api.POST("/book", hb.Schedule.BookSlotHandler)
	}
}

// RegisterChatRoutes registers booking-scoped messaging.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chats")
	{
		api.Use(middleware.JWTAuthPartnerMiddleware(hb.PartnerRepo, utils.GetAuthCacheClient()))
		api.POST("", hb.Chat.SendMessageHandler)
		api.GET("/booking/:bookingId", hb.Chat.ListMessagesHandler)
		api.PATCH("/:id/read", hb.Chat.MarkMessageReadHandler)
	}
}

// RegisterNotificationRoutes registers notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.POST("", hb.Notification.CreateNotificationHandler)
		api.GET("/:userId", hb.Notification.ListNotificationsHandler)
		api.PATCH("/:id/read", hb.Notification.MarkNotificationReadHandler)
	}
}

// RegisterPaymentRoutes registers payment order endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthPartnerMiddleware(hb.PartnerRepo, utils.GetAuthCacheClient()))
		api.POST("/order", hb.Payment.CreatePaymentOrderHandler)
		api.PATCH("/:transactionId/status", hb.Payment.UpdatePaymentStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Partnerhub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPartnerRoutes(r, hb)
	RegisterProductRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
