package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelierworks/atelier/internal/modules/model"
	"github.com/atelierworks/atelier/internal/modules/serializer"
	"github.com/atelierworks/atelier/internal/modules/service"
)

type CMSHandler struct {
	svc service.CMSService
}

func NewCMSHandler(s service.CMSService) *CMSHandler {
	return &CMSHandler{svc: s}
}

type CMSUploadReq struct {
	ID          string   `json:"id" binding:"required,max=200"`
	Title       string   `json:"title" binding:"omitempty,max=200"`
	Description string   `json:"description" binding:"omitempty,max=5000"`
	Tags        []string `json:"tags" binding:"omitempty,dive,max=200"`
	Price       string   `json:"price" binding:"omitempty,max=200"`
	Dimensions  string   `json:"dimensions" binding:"omitempty,max=200"`
	Medium      string   `json:"medium" binding:"omitempty,max=200"`
	Status      string   `json:"status" binding:"omitempty,oneof=Available Sold Reserved NFS"`
}

type CMSUploadResp struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	RemoteID string `json:"remoteId"`
}

// Upload godoc
//
//	@Summary		Push metadata to the CMS
//	@Description	Forward an artwork's metadata to the configured CMS collection.
//	@Tags			cms
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	handler.CMSUploadResp
//	@Failure		400	{object}	serializer.Response
//	@Failure		503	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/cms/upload [post]
func (h *CMSHandler) Upload(c *gin.Context) {
	req := CMSUploadReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(bindErrMsg(err), err))
		return
	}

	rec := &model.ArtworkRecord{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Price:       req.Price,
		Dimensions:  req.Dimensions,
		Medium:      req.Medium,
		Status:      req.Status,
	}

	result, err := h.svc.Upload(c.Request.Context(), rec)
	if err != nil {
		if errors.Is(err, service.ErrCMSNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, serializer.UpstreamErr("cms credentials not configured", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "cms upload failed", err))
		return
	}

	c.JSON(http.StatusOK, CMSUploadResp{Success: true, Message: result.Message, RemoteID: result.RemoteID})
}
