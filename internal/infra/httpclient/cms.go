package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/atelierworks/atelier/internal/config"
	"github.com/atelierworks/atelier/internal/modules/model"
)

// CMSClient pushes artwork metadata to the external CMS data API.
type CMSClient struct {
	BaseURL    string
	APIKey     string
	Collection string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewCMSClient creates a new CMSClient with OpenTelemetry instrumentation.
func NewCMSClient(cfg *config.Config, log *zap.Logger) *CMSClient {
	return &CMSClient{
		BaseURL:    cfg.CMS.BaseURL,
		APIKey:     cfg.CMS.APIKey,
		Collection: cfg.CMS.Collection,
		HTTPClient: &http.Client{
			Timeout:   time.Minute,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Logger: log,
	}
}

// Configured reports whether the CMS credentials are present.
func (c *CMSClient) Configured() bool {
	return c.BaseURL != "" && c.APIKey != ""
}

type cmsItemPayload struct {
	ExternalID  string   `json:"external_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Price       string   `json:"price,omitempty"`
	Dimensions  string   `json:"dimensions,omitempty"`
	Medium      string   `json:"medium,omitempty"`
	Status      string   `json:"status"`
}

// CMSItemResponse is the CMS's answer to an item upsert.
type CMSItemResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// UpsertItem creates or updates the CMS item keyed by the artwork id.
func (c *CMSClient) UpsertItem(ctx context.Context, rec *model.ArtworkRecord) (*CMSItemResponse, error) {
	endpoint := fmt.Sprintf("%s/collections/%s/items", c.BaseURL, c.Collection)

	body, err := sonic.Marshal(cmsItemPayload{
		ExternalID:  rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Tags:        rec.Tags,
		Price:       rec.Price,
		Dimensions:  rec.Dimensions,
		Medium:      rec.Medium,
		Status:      rec.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.Logger.Error("cms_upsert request failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var result CMSItemResponse
	if err := sonic.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &result, nil
}
