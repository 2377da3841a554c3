package api

import (
	"net/http"
	"time"

	reqdto "pro-video-services/internal/handler/dto/request"
	resdto "pro-video-services/internal/handler/dto/response"
	"pro-video-services/internal/handler/httperr"
	"pro-video-services/internal/pkg/config"
	"pro-video-services/internal/pkg/cookie"
	"pro-video-services/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cfg         config.Config
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cfg:         cfg,
	}
}

// @Summary Admin login
// @Description Exchange the admin password for a bearer token. The token is also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}

	credentials, err := req.ToDomain(h.cfg.Admin.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", "")
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		httperr.Abort(c, err, "Login failed")
		return
	}

	cookie.SetAdminToken(c, h.cfg.Cookie, result.Token, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Success:   true,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// @Summary Admin logout
// @Description Clears the admin cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// bearer tokens are stateless; only the cookie can be revoked here
	cookie.ClearAdminToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}
