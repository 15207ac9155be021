// Command cleanup finishes deck deletions that were interrupted after the
// deck was marked pending. It is intended to be invoked by an external cron
// job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error or some decks could not be deleted.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/studydeck-backend/internal/adapter/postgres"
	deckrepo "github.com/heartmarshall/studydeck-backend/internal/adapter/postgres/deck"
	flashcardrepo "github.com/heartmarshall/studydeck-backend/internal/adapter/postgres/flashcard"
	sessionrepo "github.com/heartmarshall/studydeck-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/studydeck-backend/internal/adapter/redis"
	"github.com/heartmarshall/studydeck-backend/internal/adapter/redis/statscache"
	"github.com/heartmarshall/studydeck-backend/internal/app"
	"github.com/heartmarshall/studydeck-backend/internal/config"
	"github.com/heartmarshall/studydeck-backend/internal/service/deck"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	decks := deckrepo.New(pool)
	cards := flashcardrepo.New(pool)
	sessions := sessionrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	svc := deck.NewService(logger, decks, cards, sessions, txm, nil)
	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			// Stale cached reports expire on their own.
			logger.Warn("statistics cache unreachable, skipping invalidation",
				slog.String("error", err.Error()),
			)
		} else {
			defer client.Close() //nolint:errcheck
			svc = deck.NewService(logger, decks, cards, sessions, txm,
				statscache.New(client, cfg.Study.StatsCacheTTL))
		}
	}

	res, err := svc.ResumePendingDeletions(ctx, cfg.Study.CleanupBatchSize)
	if err != nil {
		logger.Error("resume pending deletions failed",
			slog.String("error", err.Error()),
			slog.Int("batch", cfg.Study.CleanupBatchSize),
		)
		os.Exit(1)
	}

	logger.Info("pending deletions resumed",
		slog.Int("deleted", res.Deleted),
		slog.Int("failed", res.Failed),
	)

	if res.Failed > 0 {
		os.Exit(1)
	}
}
