package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/atelierworks/atelier/internal/pkg/dataurl"
)

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func newGeminiGenerator(apiKey, baseURL, model string, hc *http.Client) (*geminiGenerator, error) {
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
	}
	if baseURL != "" {
		cfg.HTTPOptions.BaseURL = baseURL
	}
	client, err := genai.NewClient(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	return &geminiGenerator{client: client, model: model}, nil
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string, img *dataurl.Image) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}
	if img != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: img.MediaType,
				Data:     img.Data,
			},
		})
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Role: genai.RoleUser, Parts: parts}}, nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: gemini status %d", ErrProviderRejected, apiErr.Code)
		}
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", ErrProviderRejected)
	}
	return text, nil
}
