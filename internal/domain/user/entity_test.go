//go:build unit

package user_test

import (
	"testing"

	"pro-video-services/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid", input: "valid@example.com", want: "valid@example.com"},
		{name: "normalised", input: "  Admin@Example.COM ", want: "admin@example.com"},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "invalid-email", errIs: user.ErrInvalidEmail},
		{name: "missing at", input: "invalidemail.com", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := user.NewEmail(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, role)

	_, err = user.NewRole("viewer")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestAdmin(t *testing.T) {
	email, err := user.NewEmail("admin@example.com")
	require.NoError(t, err)

	locked := user.NewAdmin(email, "")
	assert.True(t, locked.Locked())

	admin := user.NewAdmin(email, "$2a$10$hash")
	assert.False(t, admin.Locked())
	assert.Equal(t, user.RoleAdmin, admin.Role())
	assert.True(t, admin.Email().Equal(email))
}
