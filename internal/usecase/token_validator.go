package usecase

import (
	"pro-video-services/internal/domain/user"
	"pro-video-services/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Email, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Email, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Email{}, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Email{}, "", err
	}

	email, err := user.NewEmail(claims.Email)
	if err != nil {
		return user.Email{}, "", err
	}

	return email, role, nil
}
