package bootstrap

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/atelierworks/atelier/internal/config"
	"github.com/atelierworks/atelier/internal/infra/cache"
	"github.com/atelierworks/atelier/internal/infra/httpclient"
	"github.com/atelierworks/atelier/internal/infra/logger"
	"github.com/atelierworks/atelier/internal/modules/handler"
	"github.com/atelierworks/atelier/internal/modules/repo"
	"github.com/atelierworks/atelier/internal/modules/service"
	"github.com/atelierworks/atelier/internal/pkg/ratelimit"
)

func BuildContainer(configPath string) *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load(configPath)
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// rate limit store
	do.Provide(inj, func(i *do.Injector) (ratelimit.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		window := time.Duration(cfg.RateLimit.WindowSec) * time.Second

		if cfg.RateLimit.Backend == "redis" {
			rdb := do.MustInvoke[*redis.Client](i)
			return ratelimit.NewRedisStore(rdb, window, cfg.RateLimit.Max), nil
		}
		return ratelimit.NewMemoryStore(window, cfg.RateLimit.Max), nil
	})

	// redis, only reached when the rate limit backend asks for it
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// CMS HTTP client
	do.Provide(inj, func(i *do.Injector) (*httpclient.CMSClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		return httpclient.NewCMSClient(cfg, log), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ArtworkRepo, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		return repo.NewArtworkRepo(cfg.Storage.Dir, log)
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ArtworkService, error) {
		return service.NewArtworkService(do.MustInvoke[repo.ArtworkRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.GenerateService, error) {
		return service.NewGenerateService(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		)
	})
	do.Provide(inj, func(i *do.Injector) (service.CMSService, error) {
		return service.NewCMSService(
			do.MustInvoke[*httpclient.CMSClient](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.HealthHandler, error) {
		return handler.NewHealthHandler(do.MustInvoke[*config.Config](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ArtworkHandler, error) {
		return handler.NewArtworkHandler(do.MustInvoke[service.ArtworkService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.GenerateHandler, error) {
		return handler.NewGenerateHandler(do.MustInvoke[service.GenerateService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CMSHandler, error) {
		return handler.NewCMSHandler(do.MustInvoke[service.CMSService](i)), nil
	})

	return inj
}
