package auth

import (
	"errors"

	"pro-video-services/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

// NewCredentials falls back to defaultEmail when the login form omits it.
func NewCredentials(emailStr, passwordStr, defaultEmail string) (Credentials, error) {
	if emailStr == "" {
		emailStr = defaultEmail
	}
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }
