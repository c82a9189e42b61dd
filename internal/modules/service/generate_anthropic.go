package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/atelierworks/atelier/internal/pkg/dataurl"
)

type anthropicGenerator struct {
	client anthropic.Client
	model  string
}

func newAnthropicGenerator(apiKey, baseURL, model string, hc *http.Client) *anthropicGenerator {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(hc),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &anthropicGenerator{client: anthropic.NewClient(opts...), model: model}
}

func (g *anthropicGenerator) generate(ctx context.Context, prompt string, img *dataurl.Image) (string, error) {
	blocks := []anthropic.ContentBlockParamUnion{
		anthropic.NewTextBlock(prompt),
	}
	if img != nil {
		blocks = append(blocks, anthropic.NewImageBlockBase64(img.MediaType, base64.StdEncoding.EncodeToString(img.Data)))
	}

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: anthropic status %d", ErrProviderRejected, apiErr.StatusCode)
		}
		return "", err
	}

	var out strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrProviderRejected)
	}
	return out.String(), nil
}
