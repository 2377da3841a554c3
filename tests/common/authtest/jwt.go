//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"pro-video-services/internal/domain/user"
	"pro-video-services/internal/pkg/config"
	"pro-video-services/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// PasswordHash is the bcrypt hash of Password.
const (
	Password     = "password123"
	PasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, email string, role user.Role) string {
	t.Helper()
	addr, err := user.NewEmail(email)
	require.NoError(t, err)
	token, _, err := h.Service(t).GenerateToken(addr, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, email string, role user.Role) string {
	t.Helper()
	addr, err := user.NewEmail(email)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, _, err := service.GenerateToken(addr, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
