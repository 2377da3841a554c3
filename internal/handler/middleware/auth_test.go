//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"pro-video-services/internal/domain/user"
	"pro-video-services/internal/handler/middleware"
	"pro-video-services/internal/pkg/config"
	"pro-video-services/internal/pkg/cookie"
	"pro-video-services/internal/pkg/errs"
	"pro-video-services/internal/usecase"
	"pro-video-services/tests/common/authtest"
	"pro-video-services/tests/common/httptest"
	usecasemock "pro-video-services/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const adminEmail = "admin@example.com"

func newAdminRouter(m *middleware.AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin", m.RequireAdmin(), func(c *gin.Context) {
		email, _ := middleware.GetAdminEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	jwtCfg := config.JWTConfig{Secret: "test-secret", Duration: "1h"}
	helper := authtest.NewJWTHelper(jwtCfg)
	validator := usecase.NewTokenValidator(helper.Service(t))
	router := newAdminRouter(middleware.NewAuthMiddleware(validator, true))

	t.Run("valid bearer token", func(t *testing.T) {
		token := helper.GenerateToken(t, adminEmail, user.RoleAdmin)

		var body struct {
			Email string `json:"email"`
		}
		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/admin", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, adminEmail, body.Email)
	})

	t.Run("valid cookie token", func(t *testing.T) {
		token := helper.GenerateToken(t, adminEmail, user.RoleAdmin)
		cookies := []*http.Cookie{{Name: cookie.AdminTokenCookieName, Value: token}}

		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/api/admin", nil, cookies, "")
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/admin", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		token := helper.CreateExpiredToken(t, adminEmail, user.RoleAdmin)
		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/admin", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("malformed token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/admin", nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireAdmin_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	// no token is inspected while admin auth is disabled
	validator.EXPECT().ValidateToken(gomock.Any()).Times(0)

	router := newAdminRouter(middleware.NewAuthMiddleware(validator, false))

	w := httptest.PerformRequest(t, router, http.MethodGet, "/api/admin", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_ValidatorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken("tok").Return(user.Email{}, user.Role(""), errs.New("signature is invalid"))

	router := newAdminRouter(middleware.NewAuthMiddleware(validator, true))

	w := httptest.PerformRequest(t, router, http.MethodGet, "/api/admin", nil, "tok")
	httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
}
