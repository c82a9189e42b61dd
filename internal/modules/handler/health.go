package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atelierworks/atelier/internal/config"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

type HealthResp struct {
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	StorageDir   string `json:"storageDir"`
	VaultEnabled bool   `json:"vaultEnabled"`
}

// Health godoc
//
//	@Summary	Liveness and basic configuration
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	handler.HealthResp
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResp{
		Status:       "ok",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		StorageDir:   h.cfg.Storage.Dir,
		VaultEnabled: h.cfg.AI.Vault.Enabled,
	})
}
