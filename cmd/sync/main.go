// Copyright (c) 2026 Hailey Portfolio. All rights reserved.

// Command sync runs one static-site export and exits. It shares the
// pipeline with the POST /api/sync endpoint, so a cron job and the admin
// panel produce identical output.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/haileyart/portfolio/internal/artwork"
	"github.com/haileyart/portfolio/internal/platform/config"
	"github.com/haileyart/portfolio/internal/platform/image"
	pgstore "github.com/haileyart/portfolio/internal/platform/postgres"
	"github.com/haileyart/portfolio/internal/profile"
	"github.com/haileyart/portfolio/internal/sync"
)

func main() {
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	log := rawLog.With(slog.String("app", "portfolio-sync"))
	slog.SetDefault(log)

	if err := godotenv.Load(); err == nil {
		log.Info("dotenv_loaded")
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	pipeline := sync.NewPipeline(
		sync.NewStoreSource(artwork.NewPostgresRepository(pool), profile.NewPostgresRepository(pool)),
		nil,
		image.Processor{},
		cfg.DataDir,
		log,
	)

	summary, err := pipeline.Run(ctx)
	must(log, err, "run export")

	log.Info("export_finished",
		slog.Int("artworks", summary.Artworks),
		slog.Int("collections", summary.Collections),
		slog.Bool("profile", summary.ProfileFound),
		slog.String("artist_pick", summary.ArtistPickTitle),
	)
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("sync failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
