//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"pro-video-services/internal/handler/dto/request"
	"pro-video-services/internal/pkg/cookie"
	"pro-video-services/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin logs in with the configured admin email and returns the token from the cookie.
func LoginAdmin(t *testing.T, router *gin.Engine, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	adminCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, adminCookie, "Admin token not found in cookies")
	require.NotEmpty(t, adminCookie.Value, "Admin token cookie is empty")

	return adminCookie.Value
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
