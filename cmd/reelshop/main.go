package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/reelshop-lab/reelshop/internal/catalog"
	"github.com/reelshop-lab/reelshop/internal/core/aggregation"
	corecfg "github.com/reelshop-lab/reelshop/internal/core/config"
	"github.com/reelshop-lab/reelshop/internal/core/storage"
	"github.com/reelshop-lab/reelshop/internal/core/storage/memory"
	"github.com/reelshop-lab/reelshop/internal/core/storage/postgres"
	"github.com/reelshop-lab/reelshop/internal/ingestion"
	"github.com/reelshop-lab/reelshop/internal/migrations"
	"github.com/reelshop-lab/reelshop/internal/recommend"
	"github.com/reelshop-lab/reelshop/internal/server"
)

// store is what the services and the health check need from a backend.
type store interface {
	storage.InteractionStore
	storage.CatalogStore
	Ping(ctx context.Context) error
}

func main() {
	configPath := flag.String("config", "reelshop.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger with defaults until the config says otherwise
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Logging))
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"cache_backend", cfg.Recommend.CacheBackend,
		"cache_mode", cfg.Recommend.CacheMode,
		"cache_ttl", cfg.Recommend.CacheTTLDuration(),
		"weighting", cfg.Recommend.Weighting)

	// 2. Initialize Storage
	db, closeDB, err := openStore(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer closeDB()

	checks := map[string]server.HealthChecker{"database": db}

	// 3. Initialize Recommendation Cache
	var slot recommend.Slot
	switch cfg.Recommend.CacheBackend {
	case "redis":
		client, err := recommend.ConnectRedis(cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			slog.Error("Failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		defer client.Close()
		redisSlot := recommend.NewRedisSlot(client, cfg.Redis.Key, cfg.Recommend.CacheTTLDuration())
		checks["redis"] = redisSlot
		slot = redisSlot
	default:
		slot = recommend.NewMemorySlot()
	}

	cacheMode, err := recommend.ParseCacheMode(cfg.Recommend.CacheMode)
	if err != nil {
		slog.Error("Invalid cache mode", "error", err)
		os.Exit(1)
	}
	cache := recommend.NewCache(slot, cfg.Recommend.CacheTTLDuration(), cacheMode)

	// 4. Initialize Recommendation Engine
	aggregator, err := aggregation.NewBucketAggregator(cfg.Recommend.Weighting)
	if err != nil {
		slog.Error("Invalid weighting operator", "error", err)
		os.Exit(1)
	}

	recommendSvc := recommend.NewService(
		db,
		db,
		aggregator,
		recommend.NewSelector(cfg.Recommend.PreferredRatio),
		cache,
		recommend.Options{
			DefaultCount: cfg.Recommend.DefaultCount,
			MaxCount:     cfg.Recommend.MaxCount,
		},
	)

	// 5. Initialize Catalog and Ingestion
	catalogSvc := catalog.NewService(db, cfg.BucketMap, catalog.Options{
		FeedDefaultCount: cfg.Catalog.FeedDefaultCount,
		FeedMaxCount:     cfg.Catalog.FeedMaxCount,
		MaxBodySizeMB:    cfg.Server.MaxBodySizeMB,
	})
	ingestionSvc := ingestion.NewService(db, cfg.Server.MaxBodySizeMB)

	// 6. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), cfg.Server.Mode, checks)
	catalogSvc.RegisterRoutes(srv.Engine)
	ingestionSvc.RegisterRoutes(srv.Engine)
	recommendSvc.RegisterRoutes(srv.Engine)

	// 7. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// openStore returns the configured backend and its cleanup func.
func openStore(cfg corecfg.DatabaseConfig) (store, func(), error) {
	if cfg.Type == "memory" {
		slog.Warn("[Storage] Using in-memory store, data is lost on restart")
		return memory.NewStore(), func() {}, nil
	}

	adapter, err := postgres.NewAdapter(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := adapter.Close(); err != nil {
			slog.Error("[Postgres] Close failed", "error", err)
		}
	}

	if err := migrations.RunMigrations(adapter.DB(), cfg.AutoMigrate); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("run database migrations: %w", err)
	}
	if err := adapter.Prepare(); err != nil {
		closeFn()
		return nil, nil, err
	}
	return adapter, closeFn, nil
}

func newLogger(cfg corecfg.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
