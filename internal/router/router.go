package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/atelierworks/atelier/docs"
	"github.com/atelierworks/atelier/internal/config"
	"github.com/atelierworks/atelier/internal/middleware"
	"github.com/atelierworks/atelier/internal/modules/handler"
	"github.com/atelierworks/atelier/internal/pkg/ratelimit"
	"github.com/atelierworks/atelier/internal/telemetry"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config          *config.Config
	Log             *zap.Logger
	RateLimitStore  ratelimit.Store
	HealthHandler   *handler.HealthHandler
	ArtworkHandler  *handler.ArtworkHandler
	GenerateHandler *handler.GenerateHandler
	CMSHandler      *handler.CMSHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", d.HealthHandler.Health)

		api.POST("/ai/generate",
			middleware.RateLimit(d.RateLimitStore, d.Log),
			d.GenerateHandler.Generate)

		api.POST("/save", d.ArtworkHandler.SaveArtwork)
		api.GET("/artworks", d.ArtworkHandler.ListArtworks)
		api.GET("/artworks/:id", d.ArtworkHandler.GetArtwork)

		api.POST("/cms/upload", d.CMSHandler.Upload)
	}

	return r
}
