//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"pro-video-services/internal/handler/middleware"
	"pro-video-services/internal/pkg/config"
	"pro-video-services/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewRateLimiter(cfg).Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func requestFrom(router *gin.Engine, ip string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	t.Run("burst is allowed then rejected", func(t *testing.T) {
		router := newLimitedRouter(config.RateLimitConfig{RequestsPerMinute: 1, Burst: 3})

		for i := range 3 {
			w := requestFrom(router, "10.0.0.1")
			assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
		}

		w := requestFrom(router, "10.0.0.1")
		httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Too many requests")
	})

	t.Run("buckets are per client ip", func(t *testing.T) {
		router := newLimitedRouter(config.RateLimitConfig{RequestsPerMinute: 1, Burst: 1})

		assert.Equal(t, http.StatusOK, requestFrom(router, "10.0.0.1").Code)
		assert.Equal(t, http.StatusTooManyRequests, requestFrom(router, "10.0.0.1").Code)
		assert.Equal(t, http.StatusOK, requestFrom(router, "10.0.0.2").Code)
	})

	t.Run("non-positive settings fall back to defaults", func(t *testing.T) {
		router := newLimitedRouter(config.RateLimitConfig{})

		assert.Equal(t, http.StatusOK, requestFrom(router, "10.0.0.3").Code)
	})
}
