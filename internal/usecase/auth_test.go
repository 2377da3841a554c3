//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"pro-video-services/internal/domain/auth"
	"pro-video-services/internal/domain/user"
	"pro-video-services/internal/pkg/errs"
	"pro-video-services/internal/pkg/jwt"
	"pro-video-services/internal/pkg/password"
	"pro-video-services/internal/usecase"
	"pro-video-services/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminPassword = "s3cret-pass"

func newAdmin(t *testing.T, withHash bool) *user.Admin {
	t.Helper()
	email, err := user.NewEmail("admin@example.com")
	require.NoError(t, err)
	if !withHash {
		return user.NewAdmin(email, "")
	}
	hash, err := password.HashPasswordWithCost(adminPassword, 4)
	require.NoError(t, err)
	return user.NewAdmin(email, hash)
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", time.Hour)

	testCases := []struct {
		name       string
		withHash   bool
		email      string
		password   string
		expectKind error
	}{
		{
			name:     "success: correct credentials",
			withHash: true,
			email:    "admin@example.com",
			password: adminPassword,
		},
		{
			name:     "success: email is case-insensitive",
			withHash: true,
			email:    "Admin@Example.com",
			password: adminPassword,
		},
		{
			name:       "error: wrong password",
			withHash:   true,
			email:      "admin@example.com",
			password:   "nope",
			expectKind: errs.ErrUnauthorized,
		},
		{
			name:       "error: unknown email",
			withHash:   true,
			email:      "someone@example.com",
			password:   adminPassword,
			expectKind: errs.ErrUnauthorized,
		},
		{
			name:       "error: no admin password configured",
			withHash:   false,
			email:      "admin@example.com",
			password:   adminPassword,
			expectKind: errs.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := usecase.NewAuthUseCase(newAdmin(t, tc.withHash), jwtService, testutil.DiscardLogger())
			creds, err := auth.NewCredentials(tc.email, tc.password, "admin@example.com")
			require.NoError(t, err)

			got, err := uc.Login(ctx, creds)

			if tc.expectKind != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.Token)
			assert.True(t, got.ExpiresAt.After(time.Now()))

			email, role, err := usecase.NewTokenValidator(jwtService).ValidateToken(got.Token)
			require.NoError(t, err)
			assert.Equal(t, "admin@example.com", email.String())
			assert.Equal(t, user.RoleAdmin, role)
		})
	}
}

func TestAuthUseCase_AdminEnabled(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)

	assert.True(t, usecase.NewAuthUseCase(newAdmin(t, true), jwtService, testutil.DiscardLogger()).AdminEnabled())
	assert.False(t, usecase.NewAuthUseCase(newAdmin(t, false), jwtService, testutil.DiscardLogger()).AdminEnabled())
}

func TestTokenValidator_RejectsForeignSignature(t *testing.T) {
	issuer := jwt.NewService("other-secret", time.Hour)
	email, err := user.NewEmail("admin@example.com")
	require.NoError(t, err)
	token, _, err := issuer.GenerateToken(email, user.RoleAdmin)
	require.NoError(t, err)

	_, _, err = usecase.NewTokenValidator(jwt.NewService("test-secret", time.Hour)).ValidateToken(token)
	assert.Error(t, err)
}
