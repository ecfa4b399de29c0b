package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Cheertaboi/coffee-shop-billing/internal/api"
	"github.com/Cheertaboi/coffee-shop-billing/internal/billing"
	"github.com/Cheertaboi/coffee-shop-billing/internal/cache"
	"github.com/Cheertaboi/coffee-shop-billing/internal/config"
	"github.com/Cheertaboi/coffee-shop-billing/internal/logger"
	"github.com/Cheertaboi/coffee-shop-billing/internal/repository"
	"github.com/Cheertaboi/coffee-shop-billing/internal/service"
	"github.com/Cheertaboi/coffee-shop-billing/pkg/db"
	"github.com/Cheertaboi/coffee-shop-billing/pkg/kafka"
	"github.com/Cheertaboi/coffee-shop-billing/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logg := logger.New(cfg.ServiceName, cfg.LogLevel)

	if err := run(cfg, logg); err != nil {
		logg.Error("coffee-shop exited", "error", err)
		os.Exit(1)
	}
}

// run owns every resource so that deferred cleanup happens before main exits.
func run(cfg config.Config, logg *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.NewPostgresConnection(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer conn.Close()

	menuSvc := service.NewMenuService(repository.NewMenuRepo(conn), cache.NewMenuCache(cfg.MenuCacheTTL), logg)
	if err := menuSvc.Bootstrap(ctx, cfg.SeedMenu, repository.DefaultMenu()); err != nil {
		return fmt.Errorf("menu bootstrap: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewServerMetrics("billing", reg)

	var publisher service.BillPublisher
	if kc := kafka.NewClient(cfg.KafkaBrokers); kc.Enabled() {
		bp := kafka.NewBillPublisher(kc.NewWriter(cfg.KafkaBillsTopic))
		defer bp.Close()
		publisher = bp
		logg.Info("publishing bills to kafka", "topic", cfg.KafkaBillsTopic, "brokers", kc.Brokers)
	}

	checkoutSvc := service.NewCheckoutService(billing.Standard{}, publisher, m, logg)

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: api.NewRouter(api.Deps{
			Checkout: checkoutSvc,
			Menu:     menuSvc,
			Metrics:  m,
			Gatherer: reg,
			Log:      logg,
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logg.Error("HTTP server Shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logg.Info("starting coffee-shop", "addr", cfg.HTTP.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	<-idleConnsClosed
	logg.Info("server stopped")
	return nil
}
