package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"workforce/internal/config"
	"workforce/internal/database/migration"
	dbpostgres "workforce/internal/database/postgres"
	"workforce/internal/database/seeder"
	"workforce/internal/pkg/logger"
)

// Loads demo workers and roles so a fresh environment has something to score.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.New(cfg.App.LogLevel, cfg.App.LogFormat)
	defer func() {
		_ = zlog.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	r := seeder.Runner{Seeders: seeder.Defaults()}
	if err := r.Run(ctx, db); err != nil {
		zlog.Fatal("seeding failed", zap.Error(err))
	}

	zlog.Info("seeding completed")
}
