package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"pro-video-services/internal/domain/user"
	"pro-video-services/internal/handler/httperr"
	"pro-video-services/internal/pkg/cookie"
	"pro-video-services/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	enabled        bool
}

const (
	ctxAdminEmailKey = "admin_email"
	ctxAdminRoleKey  = "admin_role"
)

// NewAuthMiddleware leaves admin routes open when enabled is false.
func NewAuthMiddleware(tokenValidator usecase.TokenValidator, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		enabled:        enabled,
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Message: "Access token required"})
			return
		}

		email, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Message: "Invalid or expired token"})
			return
		}
		if role != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Message: "Admin access required"})
			return
		}

		c.Set(ctxAdminEmailKey, email.String())
		c.Set(ctxAdminRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"email": email.String(),
			"role":  string(role),
		})
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(authHeader[len("Bearer "):]); token != "" {
			return token
		}
	}
	return cookie.GetAdminToken(c)
}

func GetAdminEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
