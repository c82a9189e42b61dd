package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atelierworks/atelier/internal/config"
	"github.com/atelierworks/atelier/internal/pkg/dataurl"
)

type stubGenerator struct {
	out        string
	err        error
	lastPrompt string
	lastImage  *dataurl.Image
}

func (s *stubGenerator) generate(ctx context.Context, prompt string, img *dataurl.Image) (string, error) {
	s.lastPrompt = prompt
	s.lastImage = img
	return s.out, s.err
}

func TestGenerate_TrimsProviderOutput(t *testing.T) {
	gen := &stubGenerator{out: "  Tempest Over Basalt\n"}
	svc := &generateService{gen: gen, vaultEnabled: true, log: zap.NewNop()}

	out, err := svc.Generate(context.Background(), GenerateRequest{Type: "title"})
	require.NoError(t, err)
	assert.Equal(t, "Tempest Over Basalt", out)
}

func TestGenerate_PromptCarriesArtistNotes(t *testing.T) {
	gen := &stubGenerator{out: "ok"}
	svc := &generateService{gen: gen, vaultEnabled: true, log: zap.NewNop()}

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Type:    "description",
		Context: "painted en plein air, 2024",
	})
	require.NoError(t, err)
	assert.Contains(t, gen.lastPrompt, "gallery description")
	assert.Contains(t, gen.lastPrompt, "Artist notes: painted en plein air, 2024")
}

func TestGenerate_TransportFailureWithVault(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	svc := &generateService{gen: gen, vaultEnabled: true, log: zap.NewNop()}

	_, err := svc.Generate(context.Background(), GenerateRequest{Type: "title"})
	assert.ErrorIs(t, err, ErrVaultUnreachable)
}

func TestGenerate_TransportFailureDirectMode(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	svc := &generateService{gen: gen, vaultEnabled: false, log: zap.NewNop()}

	_, err := svc.Generate(context.Background(), GenerateRequest{Type: "title"})
	assert.ErrorIs(t, err, ErrProviderRejected)
}

func TestGenerate_ProviderRejectionPassesThrough(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("%w: invalid api key", ErrProviderRejected)}
	svc := &generateService{gen: gen, vaultEnabled: true, log: zap.NewNop()}

	_, err := svc.Generate(context.Background(), GenerateRequest{Type: "title"})
	assert.ErrorIs(t, err, ErrProviderRejected)
	assert.NotErrorIs(t, err, ErrVaultUnreachable)
}

func TestProviderTarget(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		vault    bool
		wantURL  string
		wantKey  string
	}{
		{"openai through vault gets /v1", "openai", true, "http://127.0.0.1:3100/openai/v1", "vault-placeholder"},
		{"anthropic through vault", "anthropic", true, "http://127.0.0.1:3100/anthropic", "vault-placeholder"},
		{"gemini through vault", "gemini", true, "http://127.0.0.1:3100/gemini", "vault-placeholder"},
		{"direct mode uses the configured key", "openai", false, "", "sk-direct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.AI.Provider = tt.provider
			cfg.AI.APIKey = "sk-direct"
			cfg.AI.Vault.Enabled = tt.vault
			cfg.AI.Vault.URL = "http://127.0.0.1:3100"

			url, key := providerTarget(cfg)
			assert.Equal(t, tt.wantURL, url)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestNewGenerateService_UnknownProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.AI.Provider = "cohere"

	_, err := NewGenerateService(cfg, zap.NewNop())
	assert.Error(t, err)
}
