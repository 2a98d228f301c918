package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"questnotifier/internal/api"
	"questnotifier/internal/push"
	"questnotifier/internal/repository"
	"questnotifier/internal/service"
	"questnotifier/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	pusher, err := push.New(ctx, cfg.Push)
	if err != nil {
		zapLogger.Fatal("Failed to initialize push client", zap.Error(err))
	}

	dispatcher := service.NewDispatcher(repo, pusher)
	svc := service.NewService(
		dispatcher,
		service.NewCreationHandler(dispatcher),
		service.NewDeadlineSweeper(repo, repo, dispatcher),
		service.NewDailyDigest(repo, repo, repo, dispatcher, cfg.Scheduler.DigestLocalHour),
	)

	scheduler := service.NewScheduler(time.UTC)
	if _, err := scheduler.ScheduleEvery(cfg.Scheduler.SweepInterval, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		svc.Sweep(jobCtx)
	}); err != nil {
		zapLogger.Fatal("Failed to schedule deadline sweep", zap.Error(err))
	}
	if _, err := scheduler.ScheduleHourly(func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()
		svc.Run(jobCtx)
	}); err != nil {
		zapLogger.Fatal("Failed to schedule daily digest", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{http.MethodHead, http.MethodGet, http.MethodPost}
	config.AllowHeaders = []string{"*"}
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api/v1")
	api.NewEventRoutes(a, repo, repo, svc)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		zapLogger.Info("Starting server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server shutdown failed", zap.Error(err))
	}
	zapLogger.Info("Shutdown complete")
}
