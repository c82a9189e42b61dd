package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/atelierworks/atelier/internal/pkg/ratelimit"
)

type stubStore struct {
	res ratelimit.Result
	err error
}

func (s *stubStore) Allow(ctx context.Context, key string) (ratelimit.Result, error) {
	return s.res, s.err
}

func newLimitedRouter(store ratelimit.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/ai/generate", RateLimit(store, zap.NewNop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"result": "ok"})
	})
	return r
}

func TestRateLimit_Allowed(t *testing.T) {
	r := newLimitedRouter(&stubStore{res: ratelimit.Result{Allowed: true}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/ai/generate", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_DeniedSetsRetryAfter(t *testing.T) {
	r := newLimitedRouter(&stubStore{res: ratelimit.Result{Allowed: false, RetryAfter: 15 * time.Second}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/ai/generate", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "15", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"retry_after":15`)
}

func TestRateLimit_SubSecondRetryRoundsUp(t *testing.T) {
	r := newLimitedRouter(&stubStore{res: ratelimit.Result{Allowed: false, RetryAfter: 200 * time.Millisecond}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/ai/generate", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestRateLimit_StoreErrorFailsOpen(t *testing.T) {
	r := newLimitedRouter(&stubStore{err: errors.New("redis down")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/ai/generate", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
