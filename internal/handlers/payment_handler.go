package handlers

import (
	"net/http"

	"golang-food-storefront/internal/middleware"
	"golang-food-storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// RegisterRoutes registers the payment-session passthrough routes
func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	payment := router.Group("/payment", sessionMiddleware.UserRequired())
	{
		payment.POST("/checkout-session", h.CreateCheckoutSession)
		payment.GET("/verify", h.VerifyCheckoutSession)
	}
}

// @Summary Create checkout session
// @Description Relay the platform's payment redirect URL to the browser
// @Tags payment
// @Produce json
// @Success 200 {object} models.CheckoutSession
// @Failure 401 {object} ErrorResponse
// @Router /payment/checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	session, err := h.paymentService.CreateCheckoutSession(c.Request.Context(), tokenSource(c))
	if err != nil {
		respondError(c, "Failed to create checkout session", err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// @Summary Verify checkout session
// @Tags payment
// @Produce json
// @Success 200 {object} services.PaymentVerification
// @Failure 401 {object} ErrorResponse
// @Router /payment/verify [get]
func (h *PaymentHandler) VerifyCheckoutSession(c *gin.Context) {
	verification, err := h.paymentService.VerifyCheckoutSession(c.Request.Context(), tokenSource(c))
	if err != nil {
		respondError(c, "Failed to verify checkout session", err)
		return
	}

	c.JSON(http.StatusOK, verification)
}
