package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelierworks/atelier/internal/modules/model"
	"github.com/atelierworks/atelier/internal/modules/serializer"
	"github.com/atelierworks/atelier/internal/modules/service"
	"github.com/atelierworks/atelier/internal/pkg/dataurl"
)

type GenerateHandler struct {
	svc service.GenerateService
}

func NewGenerateHandler(s service.GenerateService) *GenerateHandler {
	return &GenerateHandler{svc: s}
}

type GenerateReq struct {
	Type    string `json:"type" binding:"required"`
	Context string `json:"context" binding:"omitempty,max=5000"`
	Image   string `json:"image" binding:"omitempty"`
}

type GenerateResp struct {
	Result string `json:"result"`
}

// Generate godoc
//
//	@Summary		Draft artwork metadata
//	@Description	Ask the configured AI provider to draft a title, description or tags for an artwork. Calls go through the credential vault when enabled.
//	@Tags			ai
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	handler.GenerateResp
//	@Failure		400	{object}	serializer.Response
//	@Failure		429	{object}	serializer.Response
//	@Failure		503	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/ai/generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	req := GenerateReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(bindErrMsg(err), err))
		return
	}

	if !model.ValidGenerateType(req.Type) {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(
			fmt.Sprintf("type must be one of: %s, %s, %s", model.GenerateTitle, model.GenerateDescription, model.GenerateTags), nil))
		return
	}

	var img *dataurl.Image
	if req.Image != "" {
		parsed, err := dataurl.Parse(req.Image)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		img = parsed
	}

	result, err := h.svc.Generate(c.Request.Context(), service.GenerateRequest{
		Type:    req.Type,
		Context: req.Context,
		Image:   img,
	})
	if err != nil {
		if errors.Is(err, service.ErrVaultUnreachable) {
			c.JSON(http.StatusServiceUnavailable, serializer.UpstreamErr("credential vault unreachable", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.ProviderErr(err))
		return
	}

	c.JSON(http.StatusOK, GenerateResp{Result: result})
}
