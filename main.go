package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yug-24/TaskFlow/config"
	"github.com/yug-24/TaskFlow/middleware"
	"github.com/yug-24/TaskFlow/routes"
	"github.com/yug-24/TaskFlow/services"
	"github.com/yug-24/TaskFlow/store"
)

func main() {
	logger, err := config.InitLogger()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	st, err := store.Connect(ctx, conf, logger)
	if err != nil {
		logger.Fatalf("failed to initialize store: %v", err)
	}

	// Auth-gated routes answer 503 until the verifier is configured; the
	// health endpoint stays reachable either way.
	var verifier middleware.TokenVerifier
	if fv, err := services.NewFirebaseVerifier(ctx, conf); err != nil {
		logger.Errorw("firebase verifier unavailable, API running in degraded mode", "error", err)
	} else {
		verifier = fv
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.SetupMiddleware(r, conf, logger)
	routes.RegisterRoutes(r, routes.Deps{
		Tasks:    st,
		Habits:   st,
		Verifier: verifier,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		logger.Infow("server starting", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server shutdown failed: %v", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		logger.Errorw("store close failed", "error", err)
	}

	logger.Info("server stopped")
}
