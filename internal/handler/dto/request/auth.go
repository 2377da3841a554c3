package request

import (
	"pro-video-services/internal/domain/auth"
)

// LoginRequest accepts an optional email; the configured admin email is used when omitted.
type LoginRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain(defaultEmail string) (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password, defaultEmail)
}
