package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"scrollit/cmd/config"
	"scrollit/pkg/auth"
	"scrollit/pkg/database"
	"scrollit/pkg/handlers"
	"scrollit/pkg/mediahost"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	host, err := mediahost.NewS3Host(cfg.AWSRegion, cfg.S3Bucket, cfg.UploadFolder)
	if err != nil {
		logger.Fatal("init media host", zap.Error(err))
	}

	sessions := auth.NewManager(cfg.JWTSecret)
	h := handlers.New(db, sessions, host, logger)

	r := gin.Default()
	api := r.Group("/api")

	// Public surface: register, login, and the feed listing.
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.GET("/video", h.ListVideos)

	// Everything else requires a session.
	protected := api.Group("")
	protected.Use(sessions.RequireSession())
	protected.POST("/video", h.CreateVideo)
	protected.POST("/media/upload", h.UploadMedia)

	// No read/write timeouts: a 100 MB upload on a slow link is legitimate.
	srv := &http.Server{
		Addr:        cfg.ServerAddr,
		Handler:     r,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
