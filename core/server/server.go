package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"availability-api/core/config"
	"availability-api/core/database"
	"availability-api/core/logger"
	"availability-api/core/middleware"
	coreredis "availability-api/core/redis"
	"availability-api/modules/availability"
	availService "availability-api/modules/availability/service"
	"availability-api/modules/event"
	"availability-api/modules/preference"
	"availability-api/modules/slot"
	"availability-api/modules/user"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Run wires the whole service together and blocks until SIGINT/SIGTERM.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := config.Get()

	if err := logger.Init(cfg.Log.Level); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	rdb, err := coreredis.InitRedis(coreredis.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mw := middleware.NewMiddleware()
	e.Use(mw.Recover())
	e.Use(mw.CORS())
	e.Use(mw.RequestID())
	e.Use(mw.RequestLogger())

	v1 := e.Group("/api/v1")

	user.Init(v1, db, mw)
	eventRepo := event.Init(v1, db, mw)
	slotRepo := slot.Init(v1, db, mw)
	availSvc := availability.Init(v1, db, mw, slotRepo, eventRepo)
	preference.Init(v1, rdb, mw)

	// Background worker + scheduler for the vote retention job
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	worker := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 2})
	workerMux := asynq.NewServeMux()
	workerMux.HandleFunc(availService.TypeVotePurge, availSvc.HandleVotePurgeTask)
	if err := worker.Start(workerMux); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	defer worker.Shutdown()

	scheduler := asynq.NewScheduler(redisOpt, nil)
	purgeTask, err := availService.NewVotePurgeTask(cfg.Retention.VoteRetentionDays)
	if err != nil {
		return fmt.Errorf("build purge task: %w", err)
	}
	if _, err := scheduler.Register(cfg.Retention.PurgeSchedule, purgeTask); err != nil {
		return fmt.Errorf("register purge task: %w", err)
	}
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer scheduler.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("Server starting", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
