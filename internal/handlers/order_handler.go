package handlers

import (
	"net/http"

	"golang-food-storefront/internal/middleware"
	"golang-food-storefront/internal/models"
	"golang-food-storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RegisterRoutes registers the order summary view and the admin order surface
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	router.GET("/orders/summary", sessionMiddleware.UserRequired(), h.GetSummary)

	admin := router.Group("/admin/orders", sessionMiddleware.AdminRequired())
	{
		admin.GET("", h.ListOrders)
		admin.PUT("/:id/status", h.UpdateStatus)
	}
}

// @Summary Order summary
// @Description Server cart truth with authoritative fees; totals are not derived locally
// @Tags orders
// @Produce json
// @Success 200 {object} services.OrderSummary
// @Failure 401 {object} ErrorResponse
// @Router /orders/summary [get]
func (h *OrderHandler) GetSummary(c *gin.Context) {
	summary, err := h.orderService.Summary(c.Request.Context(), tokenSource(c))
	if err != nil {
		respondError(c, "Failed to load order summary", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary List orders
// @Description Admin only
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 403 {object} ErrorResponse
// @Router /admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context(), tokenSource(c))
	if err != nil {
		respondError(c, "Failed to fetch orders", err)
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary Update order status
// @Description Admin only
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body services.UpdateStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 403 {object} ErrorResponse
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req services.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), tokenSource(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, "Failed to update order status", err)
		return
	}

	c.JSON(http.StatusOK, order)
}
