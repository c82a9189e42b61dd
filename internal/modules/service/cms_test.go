package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atelierworks/atelier/internal/infra/httpclient"
	"github.com/atelierworks/atelier/internal/modules/model"
)

func newCMSService(baseURL string) CMSService {
	return NewCMSService(&httpclient.CMSClient{
		BaseURL:    baseURL,
		APIKey:     "cms-key",
		Collection: "artworks",
		HTTPClient: http.DefaultClient,
		Logger:     zap.NewNop(),
	}, zap.NewNop())
}

func TestCMSUpload_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "cms-42", "message": "item created"}`))
	}))
	defer srv.Close()

	res, err := newCMSService(srv.URL).Upload(context.Background(), &model.ArtworkRecord{
		ID:     "art-001",
		Title:  "Harbour at Dusk",
		Tags:   []string{"oil", "seascape"},
		Status: "Available",
	})
	require.NoError(t, err)

	assert.Equal(t, "/collections/artworks/items", gotPath)
	assert.Equal(t, "Bearer cms-key", gotAuth)
	assert.Equal(t, "art-001", gotBody["external_id"])
	assert.Equal(t, "cms-42", res.RemoteID)
	assert.Equal(t, "item created", res.Message)
}

func TestCMSUpload_MintsIDWhenRemoteOmitsOne(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	res, err := newCMSService(srv.URL).Upload(context.Background(), &model.ArtworkRecord{ID: "art-001"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.RemoteID)
	assert.Equal(t, "uploaded", res.Message)
}

func TestCMSUpload_NotConfigured(t *testing.T) {
	svc := NewCMSService(&httpclient.CMSClient{
		HTTPClient: http.DefaultClient,
		Logger:     zap.NewNop(),
	}, zap.NewNop())

	_, err := svc.Upload(context.Background(), &model.ArtworkRecord{ID: "art-001"})
	assert.ErrorIs(t, err, ErrCMSNotConfigured)
}

func TestCMSUpload_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream broke`))
	}))
	defer srv.Close()

	_, err := newCMSService(srv.URL).Upload(context.Background(), &model.ArtworkRecord{ID: "art-001"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCMSNotConfigured)
}
