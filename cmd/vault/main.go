package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/atelierworks/atelier/internal/config"
	"github.com/atelierworks/atelier/internal/infra/logger"
	"github.com/atelierworks/atelier/internal/vault"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	providers, err := vault.LoadProviders(cfg.Vault.ProvidersFile)
	if err != nil {
		log.Fatal("load provider descriptors", zap.Error(err))
	}

	// An unreadable credential store is the one startup condition the
	// vault refuses to run through: serving requests while silently
	// stripping credentials would be worse than not serving at all.
	creds, err := vault.LoadCredentials(cfg.Vault.CredentialsFile, providers, log)
	if err != nil {
		log.Fatal("load credential store", zap.Error(err))
	}

	engine, err := vault.NewRouter(providers, creds, log)
	if err != nil {
		log.Fatal("build vault router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Vault.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("credential vault listening",
			zap.String("addr", cfg.Vault.Addr),
			zap.Int("providers", len(providers)))
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
		log.Fatal("vault exited", zap.Error(err))
	}
	log.Info("vault stopped")
}
