package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/vkuzn/depot-stock/internal/config"
	"github.com/vkuzn/depot-stock/internal/domain/alerts"
	"github.com/vkuzn/depot-stock/internal/domain/audit"
	"github.com/vkuzn/depot-stock/internal/domain/catalog"
	"github.com/vkuzn/depot-stock/internal/domain/fuel"
	"github.com/vkuzn/depot-stock/internal/domain/inventory"
	"github.com/vkuzn/depot-stock/internal/infra/db"
	httpx "github.com/vkuzn/depot-stock/internal/infra/http"
	"github.com/vkuzn/depot-stock/internal/infra/logger"
	"github.com/vkuzn/depot-stock/internal/infra/notify"
	"github.com/vkuzn/depot-stock/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(sqlDB, ".")
}

func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	auditRepo := audit.NewRepo(pool)
	catalogRepo := catalog.NewRepo(pool)
	ledger := fuel.NewLedger(fuel.NewRepo(pool))

	stores := []alerts.ItemLister{
		inventory.NewRepo(pool, inventory.CategoryOil),
		inventory.NewRepo(pool, inventory.CategoryChemical),
		inventory.NewRepo(pool, inventory.CategoryPart),
	}
	agg := alerts.NewAggregator(stores, ledger, auditRepo)

	srv := httpx.New(cfg.HTTP.Addr, pool, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	if cfg.Telegram.Token != "" && cfg.Telegram.DepotChatID != 0 {
		interval := 15 * time.Minute
		if cfg.Alerts.SweepInterval != "" {
			d, err := time.ParseDuration(cfg.Alerts.SweepInterval)
			if err != nil {
				log.Error("bad sweep interval, using default", "value", cfg.Alerts.SweepInterval, "err", err)
			} else {
				interval = d
			}
		}

		notifier, err := notify.New(cfg.Telegram.Token, cfg.Telegram.DepotChatID, agg, stores, ledger, catalogRepo, log)
		if err != nil {
			log.Error("notifier init failed", "err", err)
			return
		}
		go notifier.Run(ctx, interval)
		log.Info("low-stock notifier started", "interval", interval.String())
	} else {
		log.Info("low-stock notifier disabled")
	}

	logStartupSummary(ctx, log, agg)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}

func logStartupSummary(ctx context.Context, log *slog.Logger, agg *alerts.Aggregator) {
	s, err := agg.Summary(ctx)
	if err != nil {
		log.Error("startup summary failed", "err", err)
		return
	}
	log.Info("depot summary",
		"oils", s.OilsCount,
		"chemicals", s.ChemicalsCount,
		"parts", s.PartsCount,
		"diesel_liters", s.DieselLiters,
		"low_stock", s.LowStockCount,
		"activities", s.ActivityCount,
	)
}
