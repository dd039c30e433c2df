// Package main provides the console game client: it wires configuration,
// logging, a content store, and a fresh game session into the bubbletea UI.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cory-johannsen/labyrinth/internal/config"
	"github.com/cory-johannsen/labyrinth/internal/content"
	"github.com/cory-johannsen/labyrinth/internal/game/engine"
	"github.com/cory-johannsen/labyrinth/internal/game/rng"
	"github.com/cory-johannsen/labyrinth/internal/game/session"
	"github.com/cory-johannsen/labyrinth/internal/observability"
	"github.com/cory-johannsen/labyrinth/internal/storage/postgres"
	"github.com/cory-johannsen/labyrinth/internal/tui"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	seed := flag.Int64("seed", 0, "deterministic rng seed; 0 = crypto randomness")
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

	var src rng.Source
	if *seed != 0 {
		src = rng.NewSeededSource(*seed)
		logger.Info("using seeded rng", zap.Int64("seed", *seed))
	} else {
		src = rng.NewCryptoSource()
	}
	src = rng.NewLoggedSource(src, logger)

	var store content.Store
	switch cfg.Game.ContentSource {
	case "postgres":
		dbStart := time.Now()
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		store = postgres.NewContentRepository(pool.DB())
	default:
		store = content.NewFileStore(cfg.Game.ContentDir)
	}

	eng := engine.NewEngine(store, src, logger, engine.NewLogNotifier(logger))

	sessions := session.NewManager()
	sess := sessions.Create(eng)
	defer sessions.Remove(sess.ID())

	if _, err := sess.InitializeGame(ctx); err != nil {
		logger.Fatal("initializing game", zap.Error(err))
	}
	logger.Info("session ready",
		zap.String("session_id", sess.ID()),
		zap.Duration("elapsed", time.Since(start)),
	)

	program := tea.NewProgram(tui.NewModel(sess, cfg.Console), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Fatal("running UI", zap.Error(err))
	}
}
