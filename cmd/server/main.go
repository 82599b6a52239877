package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/lineup-core/internal/api/handlers"
	"github.com/stitts-dev/lineup-core/internal/progress"
	"github.com/stitts-dev/lineup-core/pkg/config"
	"github.com/stitts-dev/lineup-core/pkg/logging"
)

func main() {
	cfg := config.Load()

	structuredLogger := logging.Init(cfg.LogLevel, cfg.IsDevelopment())
	structuredLogger.WithFields(logrus.Fields{
		"service":     cfg.ServiceName,
		"environment": cfg.Environment,
		"port":        cfg.Port,
	}).Info("starting lineup optimizer service")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	progressHub := progress.NewHub(structuredLogger)
	go progressHub.Run()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	optimizeHandler := handlers.NewOptimizeHandler(progressHub, cfg, structuredLogger)
	healthHandler := handlers.NewHealthHandler(cfg.ServiceName, structuredLogger)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/optimize", optimizeHandler.OptimizeLineups)
		apiV1.POST("/optimize/validate", optimizeHandler.ValidateLineupRequest)
	}

	router.GET("/ws/optimize/progress/:optimization_id", progressHub.HandleWebSocket)

	router.GET("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		structuredLogger.WithField("port", cfg.Port).Info("lineup optimizer service started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			structuredLogger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	structuredLogger.Info("shutting down lineup optimizer service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		structuredLogger.Fatalf("lineup optimizer service forced to shutdown: %v", err)
	}

	structuredLogger.Info("lineup optimizer service exited")
}
