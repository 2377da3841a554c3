package api

import (
	"net/http"

	reqdto "pro-video-services/internal/handler/dto/request"
	resdto "pro-video-services/internal/handler/dto/response"
	"pro-video-services/internal/handler/httperr"
	"pro-video-services/internal/usecase"

	"github.com/gin-gonic/gin"
)

const stripeSignatureHeader = "Stripe-Signature"

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{paymentUseCase: paymentUseCase}
}

// @Summary Create payment
// @Description Create a card payment intent for a client project
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentRequest true "Payment"
// @Success 200 {object} resdto.PaymentCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /payments/create-intent [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}
	params, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", "")
		return
	}

	intent, err := h.paymentUseCase.CreatePayment(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err, "Payment creation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentCreatedResponse{
		Success:      true,
		PaymentID:    intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
	})
}

// @Summary Payment status
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /payments/status/{id} [get]
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	intent, err := h.paymentUseCase.GetPaymentStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Failed to get payment status")
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentStatusResponse{
		Success:  true,
		Status:   intent.Status,
		Amount:   intent.Amount(),
		Currency: intent.Currency,
	})
}

// @Summary Payment webhook
// @Description Receives signed payment events from the gateway
// @Tags payments
// @Accept json
// @Produce plain
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {string} string "OK"
// @Failure 400 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", "")
		return
	}

	if _, err := h.paymentUseCase.HandleWebhook(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader)); err != nil {
		httperr.Abort(c, err, "Webhook rejected")
		return
	}
	c.String(http.StatusOK, "OK")
}
