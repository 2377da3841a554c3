package api

import (
	"net/http"

	"pro-video-services/internal/domain/pricing"
	reqdto "pro-video-services/internal/handler/dto/request"
	resdto "pro-video-services/internal/handler/dto/response"
	"pro-video-services/internal/handler/httperr"
	"pro-video-services/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase   usecase.VideoUseCase
	pricingUseCase usecase.PricingUseCase
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, pricingUseCase usecase.PricingUseCase) *VideoHandler {
	return &VideoHandler{videoUseCase: videoUseCase, pricingUseCase: pricingUseCase}
}

// @Summary Video providers
// @Description Cost per video and maximum duration of each generation provider
// @Tags videos
// @Produce json
// @Success 200 {object} resdto.ProvidersResponse
// @Router /videos/providers [get]
func (h *VideoHandler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.ProvidersResponse{
		Success:   true,
		Providers: h.videoUseCase.ListProviderCosts(c.Request.Context()),
	})
}

// @Summary Video quote
// @Tags videos
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /videos/quote [post]
func (h *VideoHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	// an empty body is a valid request for the default quote
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
			return
		}
	}

	c.JSON(http.StatusOK, resdto.QuoteResponse{
		Success:  true,
		Quote:    h.pricingUseCase.Quote(req.ToDomain()),
		NextStep: pricing.NextStep,
	})
}

// @Summary Pricing tiers
// @Tags pricing
// @Produce json
// @Success 200 {object} resdto.TiersResponse
// @Router /pricing [get]
func (h *VideoHandler) Tiers(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.TiersResponse{Success: true, Tiers: h.pricingUseCase.Tiers()})
}

// @Summary Campaign pricing
// @Tags pricing
// @Produce json
// @Success 200 {object} resdto.CampaignsResponse
// @Router /campaigns/pricing [get]
func (h *VideoHandler) Campaigns(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.CampaignsResponse{Success: true, Campaigns: h.pricingUseCase.Campaigns()})
}
