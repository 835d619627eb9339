package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/playperu/marcopolo/internal/catalog"
	"github.com/playperu/marcopolo/internal/config"
	"github.com/playperu/marcopolo/internal/database"
	"github.com/playperu/marcopolo/internal/game"
	"github.com/playperu/marcopolo/internal/handler/health"
	"github.com/playperu/marcopolo/internal/highscore"
	"github.com/playperu/marcopolo/internal/migrations"
	"github.com/playperu/marcopolo/internal/offline"
	"github.com/playperu/marcopolo/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	clock := clockwork.NewRealClock()
	checks := map[string]health.Checker{}

	// --- Catalog ---
	cat := catalog.Default()
	logger.Info("loaded country catalog", "countries", cat.Len())

	// --- Highscores ---
	var board highscore.Leaderboard = highscore.NewClient(cfg.HighscoreAPIURL, cfg.HighscoreAPIKey, nil, logger)
	if cfg.RedisURL != "" {
		rdb, err := openRedis(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rdb.Close()
		board = highscore.NewCachedLeaderboard(board, rdb, cfg.LeaderboardTTL, logger)
		checks["redis"] = health.Redis(rdb)
		logger.Info("connected to redis", "leaderboard_ttl", cfg.LeaderboardTTL)
	}

	// --- Offline cache ---
	var worker *offline.Worker
	if cfg.OriginURL != nil {
		if cfg.CacheDBPath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.CacheDBPath), 0o755); err != nil {
				return fmt.Errorf("creating cache directory: %w", err)
			}
		}
		db, err := database.Open(ctx, cfg.CacheDBPath)
		if err != nil {
			return fmt.Errorf("connecting to sqlite: %w", err)
		}
		defer db.Close()

		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		checks["sqlite"] = health.SQL(db)
		logger.Info("connected to sqlite", "path", cfg.CacheDBPath)

		worker = offline.NewWorker(offline.Options{
			Origin:      cfg.OriginURL,
			Version:     cfg.CacheVersion,
			Development: cfg.Development,
			Storage:     offline.NewSQLiteStorage(db),
			Client:      &http.Client{Timeout: 15 * time.Second},
			Logger:      logger,
		})
		// An origin that is down at boot leaves the worker passing requests
		// through; installing is retried on the next restart.
		if err := worker.Install(ctx); err != nil {
			logger.Error("offline cache not installed", "error", err)
		} else if err := worker.SkipWaiting(ctx); err != nil {
			return fmt.Errorf("activating offline cache: %w", err)
		}
		defer worker.Wait()
	}

	// --- Sessions ---
	broker := server.NewBroker()
	sessions := server.NewRegistry(game.SessionConfig{
		Catalog:    cat,
		Clock:      clock,
		RoundDelay: cfg.RoundDelay,
		OnEvent:    broker.Publish,
	}, logger)
	defer sessions.Close()

	reaper, err := server.NewReaper(sessions, cfg.SessionIdleTTL, time.Minute, clock, logger)
	if err != nil {
		return fmt.Errorf("creating session reaper: %w", err)
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, server.Deps{
		Logger:      logger,
		Catalog:     cat,
		Sessions:    sessions,
		Broker:      broker,
		Leaderboard: board,
		Offline:     worker,
		SPADir:      cfg.SPADir,
		FlagCDN:     cfg.FlagCDNURL,
		Clock:       clock,
	}, func(r chi.Router) {
		r.Mount("/healthz", health.NewHandler(logger, checks).Routes())
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		reaper.Start()
		<-gctx.Done()
		logger.Info("stopping session reaper")
		return reaper.Shutdown()
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func openRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}
