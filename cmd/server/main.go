package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nandoripardo888/TO--DO/config"
	"github.com/nandoripardo888/TO--DO/internal/api/handler"
	"github.com/nandoripardo888/TO--DO/internal/api/router"
	"github.com/nandoripardo888/TO--DO/internal/event"
	"github.com/nandoripardo888/TO--DO/internal/repository"
	"github.com/nandoripardo888/TO--DO/internal/service"
	"github.com/nandoripardo888/TO--DO/pkg/database"
	"github.com/nandoripardo888/TO--DO/pkg/jwt"
	applogger "github.com/nandoripardo888/TO--DO/pkg/logger"
	"github.com/nandoripardo888/TO--DO/pkg/redis"
)

func main() {
	// 1. config
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database + migrations
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("unwrap sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}

	// 4. redis (optional: degrade without the statistics cache)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, statistics cache disabled", zap.Error(err))
		rdb = nil
	}

	// 5. jwt manager
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. event bus for status propagation
	bus, err := event.NewBus()
	if err != nil {
		logger.Fatal("create event bus", zap.Error(err))
	}

	// 7. dependency injection: repository → service → handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, bus, rdb, logger)
	h := handler.NewHandler(svc)

	// 8. routes
	engine := router.Setup(cfg, h, jwtMgr, logger)

	// 9. run the event router
	busCtx, busCancel := context.WithCancel(context.Background())
	defer busCancel()
	go func() {
		if err := bus.Run(busCtx); err != nil {
			logger.Error("event bus stopped", zap.Error(err))
		}
	}()

	// 10. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}

	busCancel()
	if err := bus.Close(); err != nil {
		logger.Error("event bus close", zap.Error(err))
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close", zap.Error(err))
		}
	}

	logger.Info("stopped")
}
