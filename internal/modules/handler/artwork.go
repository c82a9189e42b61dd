package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelierworks/atelier/internal/modules/model"
	"github.com/atelierworks/atelier/internal/modules/serializer"
	"github.com/atelierworks/atelier/internal/modules/service"
	"github.com/atelierworks/atelier/internal/pkg/dataurl"
)

type ArtworkHandler struct {
	svc service.ArtworkService
}

func NewArtworkHandler(s service.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{svc: s}
}

type SaveArtworkReq struct {
	ID          string   `json:"id" binding:"required,max=200"`
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"max=5000"`
	Tags        []string `json:"tags" binding:"omitempty,dive,max=200"`
	ImageBase64 string   `json:"imageBase64" binding:"required"`
	Price       string   `json:"price" binding:"omitempty,max=200"`
	Dimensions  string   `json:"dimensions" binding:"omitempty,max=200"`
	Medium      string   `json:"medium" binding:"omitempty,max=200"`
	Status      string   `json:"status" binding:"required,oneof=Available Sold Reserved NFS"`
}

type SaveArtworkResp struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
}

// SaveArtwork godoc
//
//	@Summary		Save artwork
//	@Description	Persist an artwork: image file, per-record JSON, manifest entry and CSV row. Saving an existing id overwrites the record in full.
//	@Tags			artwork
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	handler.SaveArtworkResp
//	@Failure		400	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/save [post]
func (h *ArtworkHandler) SaveArtwork(c *gin.Context) {
	req := SaveArtworkReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(bindErrMsg(err), err))
		return
	}

	img, err := dataurl.Parse(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
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

	saved, err := h.svc.Save(c.Request.Context(), rec, img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.StorageErr("", err))
		return
	}

	c.JSON(http.StatusOK, SaveArtworkResp{Success: true, Path: saved.ImagePath})
}

type ListArtworksResp struct {
	Artworks []model.ArtworkRecord `json:"artworks"`
}

// ListArtworks godoc
//
//	@Summary		List artworks
//	@Description	Return every catalogued record in manifest order.
//	@Tags			artwork
//	@Produce		json
//	@Success		200	{object}	handler.ListArtworksResp
//	@Failure		500	{object}	serializer.Response
//	@Router			/artworks [get]
func (h *ArtworkHandler) ListArtworks(c *gin.Context) {
	artworks, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.StorageErr("", err))
		return
	}
	if artworks == nil {
		artworks = []model.ArtworkRecord{}
	}
	c.JSON(http.StatusOK, ListArtworksResp{Artworks: artworks})
}

// GetArtwork godoc
//
//	@Summary		Get one artwork
//	@Description	Return a single record from its per-record file.
//	@Tags			artwork
//	@Produce		json
//	@Param			id	path		string	true	"artwork id"
//	@Success		200	{object}	model.ArtworkRecord
//	@Failure		404	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/artworks/{id} [get]
func (h *ArtworkHandler) GetArtwork(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrArtworkNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(http.StatusNotFound, "artwork not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.StorageErr("", err))
		return
	}
	c.JSON(http.StatusOK, rec)
}
