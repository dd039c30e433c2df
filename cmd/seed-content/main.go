// Package main loads a YAML content pack into the PostgreSQL content tables.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/labyrinth/internal/config"
	"github.com/cory-johannsen/labyrinth/internal/content"
	"github.com/cory-johannsen/labyrinth/internal/observability"
	"github.com/cory-johannsen/labyrinth/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "content", "path to the YAML content pack directory")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	pack := content.NewFileStore(*contentDir)
	locations, err := pack.LoadLocations(ctx)
	if err != nil {
		logger.Fatal("loading locations", zap.Error(err))
	}
	riddles, err := pack.LoadRiddles(ctx)
	if err != nil {
		logger.Fatal("loading riddles", zap.Error(err))
	}
	notes, err := pack.LoadNotes(ctx)
	if err != nil {
		logger.Fatal("loading notes", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer pool.Close()

	repo := postgres.NewContentRepository(pool.DB())
	if err := repo.SeedContent(ctx, locations, riddles, notes); err != nil {
		logger.Fatal("seeding content", zap.Error(err))
	}

	logger.Info("content seeded",
		zap.Int("locations", len(locations)),
		zap.Int("riddles", len(riddles)),
		zap.Int("notes", len(notes)),
		zap.Duration("elapsed", time.Since(start)),
	)
}
