package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/atelierworks/atelier/internal/bootstrap"
	"github.com/atelierworks/atelier/internal/config"
	"github.com/atelierworks/atelier/internal/modules/handler"
	"github.com/atelierworks/atelier/internal/pkg/ratelimit"
	"github.com/atelierworks/atelier/internal/router"
	"github.com/atelierworks/atelier/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	inj := bootstrap.BuildContainer(*configPath)

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled && cfg.Telemetry.OtlpEndpoint != "" {
		if _, err := telemetry.SetupTracing(cfg); err != nil {
			log.Warn("tracing setup failed, continuing without it", zap.Error(err))
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := telemetry.Shutdown(shutdownCtx); err != nil {
					log.Warn("tracing shutdown", zap.Error(err))
				}
			}()
		}
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:          cfg,
		Log:             log,
		RateLimitStore:  do.MustInvoke[ratelimit.Store](inj),
		HealthHandler:   do.MustInvoke[*handler.HealthHandler](inj),
		ArtworkHandler:  do.MustInvoke[*handler.ArtworkHandler](inj),
		GenerateHandler: do.MustInvoke[*handler.GenerateHandler](inj),
		CMSHandler:      do.MustInvoke[*handler.CMSHandler](inj),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("gallery api listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("storage_dir", cfg.Storage.Dir),
			zap.Bool("vault_enabled", cfg.AI.Vault.Enabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
	log.Info("server stopped")
}
