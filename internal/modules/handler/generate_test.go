package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/atelierworks/atelier/internal/modules/service"
)

// MockGenerateService is a mock implementation of GenerateService
type MockGenerateService struct {
	mock.Mock
}

func (m *MockGenerateService) Generate(ctx context.Context, req service.GenerateRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func TestGenerateHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           map[string]interface{}
		mockSetup      func(*MockGenerateService)
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "drafts a title",
			body: map[string]interface{}{"type": "title", "context": "stormy coastline, oil"},
			mockSetup: func(m *MockGenerateService) {
				m.On("Generate", mock.Anything, mock.MatchedBy(func(r service.GenerateRequest) bool {
					return r.Type == "title" && r.Context == "stormy coastline, oil" && r.Image == nil
				})).Return("Tempest Over Basalt", nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp GenerateResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Tempest Over Basalt", resp.Result)
			},
		},
		{
			name: "image payload is decoded and forwarded",
			body: map[string]interface{}{"type": "description", "image": onePxPNG},
			mockSetup: func(m *MockGenerateService) {
				m.On("Generate", mock.Anything, mock.MatchedBy(func(r service.GenerateRequest) bool {
					return r.Image != nil && r.Image.MediaType == "image/png"
				})).Return("A quiet study in white.", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown type is rejected",
			body:           map[string]interface{}{"type": "haiku"},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "title")
				assert.Contains(t, w.Body.String(), "tags")
			},
		},
		{
			name:           "missing type is rejected",
			body:           map[string]interface{}{"context": "notes"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed image is rejected before the provider call",
			body:           map[string]interface{}{"type": "tags", "image": "data:text/plain;base64,aGk="},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "vault unreachable maps to 503",
			body: map[string]interface{}{"type": "title"},
			mockSetup: func(m *MockGenerateService) {
				m.On("Generate", mock.Anything, mock.Anything).
					Return("", service.ErrVaultUnreachable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "vault")
			},
		},
		{
			name: "provider rejection maps to a generic 500",
			body: map[string]interface{}{"type": "title"},
			mockSetup: func(m *MockGenerateService) {
				m.On("Generate", mock.Anything, mock.Anything).
					Return("", service.ErrProviderRejected)
			},
			expectedStatus: http.StatusInternalServerError,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				// the provider's own error text must not leak to the caller
				assert.NotContains(t, w.Body.String(), "api key")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockGenerateService)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}
			h := NewGenerateHandler(svc)

			r := gin.New()
			r.POST("/api/ai/generate", h.Generate)

			b, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/ai/generate", bytes.NewReader(b))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.check != nil {
				tt.check(t, w)
			}
			svc.AssertExpectations(t)
		})
	}
}
