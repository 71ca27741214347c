package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"k2demo/config"
	"k2demo/handlers"
	"k2demo/middleware"
	"k2demo/routes"
	"k2demo/services/catalog"
	"k2demo/services/checkout"
	"k2demo/services/demo"
	"k2demo/services/demolog"
	"k2demo/services/k2"
	"k2demo/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	cat := catalog.MustNew(catalog.DefaultProducts)
	engine := k2.NewEngine(cat, k2.DefaultScenarios)
	debugLogs := k2.NewDebugStore(k2.DefaultDebugCapacity)
	checkoutService := checkout.NewCheckoutService(checkout.NewSessionStore(), cat)
	bus := demolog.NewBus()
	settings := demo.NewSettings(config.AppConfig.MerchantMode, config.AppConfig.ShopperIdentity)
	if config.AppConfig.K2Mode != "" {
		settings.SetMode(config.AppConfig.K2Mode)
	}

	handlerBundle := handlers.NewHandlerBundle(cat, engine, debugLogs, checkoutService, bus, settings)

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
