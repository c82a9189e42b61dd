package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/atelierworks/atelier/internal/pkg/dataurl"
)

type openaiGenerator struct {
	client openai.Client
	model  string
}

func newOpenAIGenerator(apiKey, baseURL, model string, hc *http.Client) *openaiGenerator {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(hc),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openaiGenerator{client: openai.NewClient(opts...), model: model}
}

func (g *openaiGenerator) generate(ctx context.Context, prompt string, img *dataurl.Image) (string, error) {
	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(prompt),
	}
	if img != nil {
		parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: img.DataURL(),
		}))
	}

	userParam := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfArrayOfContentParts: parts,
		},
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfUser: &userParam},
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: openai status %d", ErrProviderRejected, apiErr.StatusCode)
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrProviderRejected)
	}
	return resp.Choices[0].Message.Content, nil
}
