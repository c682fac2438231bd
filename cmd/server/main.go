package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"te_dashboard/internal/app/di"
	"te_dashboard/internal/app/router"
	"te_dashboard/internal/feature/dashboard/transport/handler"
	"te_dashboard/internal/feature/dashboard/usecase"
	"te_dashboard/internal/platform/cache"
	"te_dashboard/internal/platform/config"
	"te_dashboard/internal/platform/externalapi/tradingeconomics"
	"te_dashboard/internal/platform/scheduler"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Credential: missing or malformed TE_API_KEY is fatal at startup.
	teCfg, err := tradingeconomics.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	// Optional Redis cache mirror
	var mirror *cache.RedisMirror
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(context.Background(), cfg.Redis.Addr)
		if err != nil {
			slog.Warn("redis unavailable, running without cache mirror", "error", err)
		} else {
			mirror = cache.NewRedisMirror(rdb, cfg.Redis.Namespace)
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	// Cached data source over the upstream API
	source := di.NewDataSource(teCfg, mirror)

	// Refresh scheduler, off until the UI selects an interval
	sched := scheduler.New(source.ForceRefreshMarkets, nil)
	defer sched.Stop()

	// Usecase
	uc := usecase.NewDashboardUsecase(source, di.TickerEntries(cfg.Ticker))

	// Handlers
	dashH := handler.NewDashboardHandler(uc)
	refreshH := handler.NewRefreshHandler(sched)

	r := router.NewRouter(dashH, refreshH)

	slog.Info("dashboard backend listening", "addr", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
