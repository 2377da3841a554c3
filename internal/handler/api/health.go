package api

import (
	"net/http"
	"time"

	resdto "pro-video-services/internal/handler/dto/response"
	"pro-video-services/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

const serviceName = "Pro Video Services API"

type HealthHandler struct {
	clock clock.Clock
}

func NewHealthHandler(clock clock.Clock) *HealthHandler {
	return &HealthHandler{clock: clock}
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:    "OK",
		Service:   serviceName,
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339Nano),
	})
}
