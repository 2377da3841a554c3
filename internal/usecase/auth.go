package usecase

import (
	"context"
	"log/slog"
	"time"

	"pro-video-services/internal/domain/auth"
	"pro-video-services/internal/domain/user"
	"pro-video-services/internal/pkg/errs"
	"pro-video-services/internal/pkg/jwt"
	"pro-video-services/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.MarkNew(errs.ErrUnauthorized, "invalid email or password")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type TokenResult struct {
	Token     string
	ExpiresAt time.Time
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials auth.Credentials) (*TokenResult, error)
	AdminEnabled() bool
}

type authUseCaseImpl struct {
	admin      *user.Admin
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthUseCase(admin *user.Admin, jwtService *jwt.Service, logger *slog.Logger) AuthUseCase {
	return &authUseCaseImpl{
		admin:      admin,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, credentials auth.Credentials) (*TokenResult, error) {
	if a.admin.Locked() || !credentials.Email().Equal(a.admin.Email()) {
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(a.admin.PasswordHash(), credentials.Password().Value()); err != nil {
		a.logger.Warn("admin login rejected", slog.String("email", credentials.Email().String()))
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateToken(a.admin.Email(), a.admin.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenResult{Token: token, ExpiresAt: expiresAt}, nil
}

func (a *authUseCaseImpl) AdminEnabled() bool {
	return !a.admin.Locked()
}
