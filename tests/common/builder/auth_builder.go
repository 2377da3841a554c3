//go:build unit || e2e

package builder

import (
	"pro-video-services/internal/domain/auth"
	reqdto "pro-video-services/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "admin@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

// MustBuildCredentials panics on invalid fields; use only with valid builder state.
func (a *AuthBuilder) MustBuildCredentials(defaultEmail string) auth.Credentials {
	c, err := auth.NewCredentials(a.Email, a.Password, defaultEmail)
	if err != nil {
		panic(err)
	}
	return c
}
