package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/atelierworks/atelier/internal/config"
	"github.com/atelierworks/atelier/internal/modules/model"
	"github.com/atelierworks/atelier/internal/pkg/dataurl"
)

// GenerateRequest is one metadata drafting call.
type GenerateRequest struct {
	Type    string // title | description | tags
	Context string // artist notes, optional
	Image   *dataurl.Image
}

type GenerateService interface {
	// Generate returns one drafted string for the requested field.
	// Failures are either ErrVaultUnreachable or ErrProviderRejected.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// generator is the provider-specific call, one implementation per SDK.
type generator interface {
	generate(ctx context.Context, prompt string, img *dataurl.Image) (string, error)
}

type generateService struct {
	gen          generator
	vaultEnabled bool
	log          *zap.Logger
}

// NewGenerateService wires the configured provider. When the vault is
// enabled the SDK base URL points at the vault's provider prefix and this
// process holds only a placeholder key; the vault injects the real one.
func NewGenerateService(cfg *config.Config, log *zap.Logger) (GenerateService, error) {
	baseURL, apiKey := providerTarget(cfg)

	hc := &http.Client{
		Timeout:   2 * time.Minute,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	var gen generator
	var err error
	switch cfg.AI.Provider {
	case "openai":
		gen = newOpenAIGenerator(apiKey, baseURL, modelOrDefault(cfg.AI.Model, "gpt-4o-mini"), hc)
	case "anthropic":
		gen = newAnthropicGenerator(apiKey, baseURL, modelOrDefault(cfg.AI.Model, "claude-sonnet-4-5"), hc)
	case "gemini":
		gen, err = newGeminiGenerator(apiKey, baseURL, modelOrDefault(cfg.AI.Model, "gemini-2.0-flash"), hc)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.AI.Provider)
	}

	return &generateService{gen: gen, vaultEnabled: cfg.AI.Vault.Enabled, log: log}, nil
}

// providerTarget resolves the base URL and key for the configured provider.
func providerTarget(cfg *config.Config) (baseURL, apiKey string) {
	if cfg.AI.Vault.Enabled {
		base := strings.TrimSuffix(cfg.AI.Vault.URL, "/") + "/" + cfg.AI.Provider
		if cfg.AI.Provider == "openai" {
			// The OpenAI SDK expects the /v1 segment in its base URL.
			base += "/v1"
		}
		// Placeholder only; the vault overwrites the credential header.
		return base, "vault-placeholder"
	}
	return "", cfg.AI.APIKey
}

func modelOrDefault(m, def string) string {
	if m == "" {
		return def
	}
	return m
}

func (s *generateService) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	out, err := s.gen.generate(ctx, buildPrompt(req), req.Image)
	if err != nil {
		if errors.Is(err, ErrProviderRejected) {
			s.log.Error("provider rejected generation", zap.String("type", req.Type), zap.Error(err))
			return "", err
		}
		// Transport-level failure. With the vault in the path that means the
		// vault itself could not be reached.
		s.log.Error("generation transport failure", zap.String("type", req.Type), zap.Error(err))
		if s.vaultEnabled {
			return "", fmt.Errorf("%w: %v", ErrVaultUnreachable, err)
		}
		return "", fmt.Errorf("%w: %v", ErrProviderRejected, err)
	}
	return strings.TrimSpace(out), nil
}

func buildPrompt(req GenerateRequest) string {
	var b strings.Builder
	switch req.Type {
	case model.GenerateTitle:
		b.WriteString("Suggest a short, evocative title for this artwork. Reply with the title only, no quotes.")
	case model.GenerateDescription:
		b.WriteString("Write a two to three sentence gallery description for this artwork, in a warm but unpretentious voice.")
	case model.GenerateTags:
		b.WriteString("Suggest 5 to 8 concise lowercase tags for this artwork. Reply with one comma-separated line, nothing else.")
	}
	if req.Context != "" {
		b.WriteString("\n\nArtist notes: ")
		b.WriteString(req.Context)
	}
	return b.String()
}
