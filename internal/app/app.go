package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/studydeck-backend/internal/adapter/postgres"
	deckrepo "github.com/heartmarshall/studydeck-backend/internal/adapter/postgres/deck"
	flashcardrepo "github.com/heartmarshall/studydeck-backend/internal/adapter/postgres/flashcard"
	sessionrepo "github.com/heartmarshall/studydeck-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/studydeck-backend/internal/adapter/redis"
	"github.com/heartmarshall/studydeck-backend/internal/adapter/redis/statscache"
	"github.com/heartmarshall/studydeck-backend/internal/auth"
	"github.com/heartmarshall/studydeck-backend/internal/config"
	"github.com/heartmarshall/studydeck-backend/internal/service/deck"
	"github.com/heartmarshall/studydeck-backend/internal/service/session"
	"github.com/heartmarshall/studydeck-backend/internal/service/statistics"
	"github.com/heartmarshall/studydeck-backend/internal/transport/middleware"
	"github.com/heartmarshall/studydeck-backend/internal/transport/rest"
	"github.com/heartmarshall/studydeck-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects the
// stores, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	var cache *statscache.Cache
	var redisClient *goredis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer redisClient.Close() //nolint:errcheck
		cache = statscache.New(redisClient, cfg.Study.StatsCacheTTL)
		logger.Info("statistics cache enabled", slog.Duration("ttl", cfg.Study.StatsCacheTTL))
	} else {
		logger.Info("statistics cache disabled")
	}

	decks := deckrepo.New(pool)
	cards := flashcardrepo.New(pool)
	sessions := sessionrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// A typed nil must not reach the services: they test the interface against nil.
	var (
		sessionSvc *session.Service
		statsSvc   *statistics.Service
		deckSvc    *deck.Service
		health     *rest.HealthHandler
	)
	if cache != nil {
		sessionSvc = session.NewService(logger, decks, cards, sessions, txm, session.WithStatsInvalidator(cache))
		statsSvc = statistics.NewService(logger, sessions, decks, cards, cache)
		deckSvc = deck.NewService(logger, decks, cards, sessions, txm, cache)
		health = rest.NewHealthHandler(pool, redis.Pinger{Client: redisClient}, Version)
	} else {
		sessionSvc = session.NewService(logger, decks, cards, sessions, txm)
		statsSvc = statistics.NewService(logger, sessions, decks, cards, nil)
		deckSvc = deck.NewService(logger, decks, cards, sessions, txm, nil)
		health = rest.NewHealthHandler(pool, nil, Version)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Log:         logger,
		CORS:        cfg.CORS,
		Validator:   auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		RateLimiter: limiter,
		RatePerMin:  cfg.Server.RateLimitPerMinute,
		Health:      health,
		Decks:       rest.NewDeckHandler(deckSvc, logger),
		Sessions:    rest.NewSessionHandler(sessionSvc, logger),
		Statistics:  rest.NewStatisticsHandler(statsSvc, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close() //nolint:errcheck

	applied, err := migrations.Up(ctx, db)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	logger.Info("migrations applied", slog.Int("count", applied))
	return nil
}
