package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/eaglebank/banking-console/internal/bank"
	"github.com/eaglebank/banking-console/internal/cache"
	"github.com/eaglebank/banking-console/internal/command"
	"github.com/eaglebank/banking-console/internal/config"
	"github.com/eaglebank/banking-console/internal/console"
	"github.com/eaglebank/banking-console/internal/events"
	"github.com/eaglebank/banking-console/internal/logger"
	"github.com/eaglebank/banking-console/internal/repository"
	"github.com/eaglebank/banking-console/internal/utils"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logg.Sync() //nolint:errcheck

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Database connection
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logg.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		logg.Fatal("failed to ping database", zap.Error(err))
	}
	if err := repository.EnsureSchema(ctx, db); err != nil {
		logg.Fatal("failed to bootstrap schema", zap.Error(err))
	}

	// Redis is optional: without it lookups go straight to PostgreSQL and
	// events are dropped.
	var readRepo *repository.CardReadRepository
	var publisher events.Emitter = events.Nop{}
	rdb, err := cache.Connect(ctx, cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	switch {
	case errors.Is(err, cache.ErrDisabled):
		logg.Info("redis not configured, running without cache and events")
	case err != nil:
		logg.Warn("redis unavailable, running without cache and events", zap.Error(err))
	default:
		defer rdb.Close()
		readRepo = repository.NewCardReadRepository(db, rdb.Client, cfg.CacheTTL, logg)
		publisher = events.NewPublisher(rdb.Client, cfg.EventsStream)
	}
	if readRepo == nil {
		readRepo = repository.NewCardReadRepository(db, nil, 0, logg)
	}
	writeRepo := repository.NewCardWriteRepository(db)

	svc := command.NewCardCommandService(writeRepo, readRepo, publisher, utils.PINHasher{Hash: cfg.HashPINs}, logg)
	ctrl := bank.NewController(svc, console.New(os.Stdin, os.Stdout), logg)

	logg.Info("banking console started", zap.Bool("redis", rdb != nil), zap.Bool("hash_pins", cfg.HashPINs))
	if err := ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error("control loop stopped", zap.Error(err))
		os.Exit(1)
	}
}
