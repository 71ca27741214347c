package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"k2demo/handlers"
)

// RegisterProductRoutes registers catalog search and lookup endpoints.
func RegisterProductRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/products")
	{
		api.GET("/search", hb.SearchProducts)
		api.GET("/:id", hb.GetProduct)
	}
}

// RegisterCheckoutRoutes registers the checkout session lifecycle endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout/sessions")
	{
		api.POST("", hb.CreateCheckoutSession)
		api.GET("/:id", hb.GetCheckoutSession)
		api.PATCH("/:id", hb.UpdateCheckoutSession)
		api.POST("/:id/complete", hb.CompleteCheckoutSession)
	}
}

// RegisterK2Routes registers the diagnostic lookup for compiler traces. It is
// a separate channel from the search response on purpose.
func RegisterK2Routes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/k2")
	{
		api.GET("/debug/:correlationId", hb.GetK2DebugLog)
	}
}

// RegisterDemoRoutes registers the demo control surface: merchant mode,
// shopper identity, and the shared log stream.
func RegisterDemoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/demo")
	{
		api.GET("/mode", hb.GetMode)
		api.POST("/mode", hb.SetMode)
		api.GET("/identity", hb.GetIdentity)
		api.POST("/identity", hb.SetIdentity)
		api.GET("/logs", hb.ListLogs)
		api.POST("/logs", hb.PublishLog)
		api.POST("/logs/clear", hb.ClearLogs)
		api.GET("/logs/stream", hb.StreamLogs)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "K2 demo storefront"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", handlers.HeaderK2Mode, handlers.HeaderShopperIdentity, handlers.HeaderCorrelationID},
		ExposeHeaders:    []string{"Content-Length", handlers.HeaderCorrelationID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/.well-known/ucp", hb.UCPProfile)
	RegisterProductRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterK2Routes(r, hb)
	RegisterDemoRoutes(r, hb)
	RegisterHealthRoute(r)
}
