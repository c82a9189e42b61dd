package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/atelierworks/atelier/internal/modules/model"
	"github.com/atelierworks/atelier/internal/modules/repo"
	"github.com/atelierworks/atelier/internal/pkg/dataurl"
)

type ArtworkService interface {
	// Save is a full overwrite of the record with the caller-supplied id:
	// image file, per-record JSON, manifest entry and CSV row all replaced.
	Save(ctx context.Context, rec *model.ArtworkRecord, img *dataurl.Image) (*model.ArtworkRecord, error)
	List(ctx context.Context) ([]model.ArtworkRecord, error)
	// Get reads one record by id. Returns ErrArtworkNotFound for unknown ids.
	Get(ctx context.Context, id string) (*model.ArtworkRecord, error)
}

type artworkService struct {
	r repo.ArtworkRepo
}

func NewArtworkService(r repo.ArtworkRepo) ArtworkService {
	return &artworkService{r: r}
}

func (s *artworkService) Save(ctx context.Context, rec *model.ArtworkRecord, img *dataurl.Image) (*model.ArtworkRecord, error) {
	rec.LastUpdated = time.Now().UTC()

	saved, err := s.r.Save(ctx, rec, img.Data, img.Ext)
	if err != nil {
		return nil, fmt.Errorf("save artwork %s: %w", rec.ID, err)
	}
	return saved, nil
}

func (s *artworkService) List(ctx context.Context) ([]model.ArtworkRecord, error) {
	return s.r.List(ctx)
}

func (s *artworkService) Get(ctx context.Context, id string) (*model.ArtworkRecord, error) {
	rec, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrArtworkNotFound
		}
		return nil, err
	}
	return rec, nil
}
