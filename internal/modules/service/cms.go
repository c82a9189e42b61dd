package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atelierworks/atelier/internal/infra/httpclient"
	"github.com/atelierworks/atelier/internal/modules/model"
)

// CMSUploadResult is what the handler reports back to the UI.
type CMSUploadResult struct {
	Message  string
	RemoteID string
}

type CMSService interface {
	// Upload pushes the record's metadata to the CMS. Returns
	// ErrCMSNotConfigured when credentials are missing.
	Upload(ctx context.Context, rec *model.ArtworkRecord) (*CMSUploadResult, error)
}

type cmsService struct {
	client *httpclient.CMSClient
	log    *zap.Logger
}

func NewCMSService(client *httpclient.CMSClient, log *zap.Logger) CMSService {
	return &cmsService{client: client, log: log}
}

func (s *cmsService) Upload(ctx context.Context, rec *model.ArtworkRecord) (*CMSUploadResult, error) {
	if !s.client.Configured() {
		return nil, ErrCMSNotConfigured
	}

	resp, err := s.client.UpsertItem(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("cms upsert %s: %w", rec.ID, err)
	}

	remoteID := resp.ID
	if remoteID == "" {
		// Some CMS backends acknowledge without an id; mint one so the UI
		// always has a stable reference for the uploaded item.
		remoteID = uuid.NewString()
	}

	msg := resp.Message
	if msg == "" {
		msg = "uploaded"
	}
	return &CMSUploadResult{Message: msg, RemoteID: remoteID}, nil
}
