package handlers

import (
	"net/http"

	"golang-food-storefront/internal/cart"
	"golang-food-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	// All cart routes require authentication
	cartGroup := router.Group("/cart", sessionMiddleware.UserRequired())
	{
		// Get the local cart with derived totals
		cartGroup.GET("", h.GetCart)
		// Add item to cart
		cartGroup.POST("/items", h.AddItem)
		// Update item quantity (0 removes)
		cartGroup.PUT("/items/:id", h.UpdateItem)
		// Remove item from cart
		cartGroup.DELETE("/items/:id", h.RemoveItem)
		// Clear cart
		cartGroup.DELETE("", h.ClearCart)
		// Checkout cart
		cartGroup.POST("/checkout", h.Checkout)
	}
}

type CartViewResponse struct {
	Items       []cart.Item `json:"items"`
	Count       int         `json:"count"`
	Subtotal    float64     `json:"subtotal"`
	DeliveryFee float64     `json:"deliveryFee"`
	ServiceFee  float64     `json:"serviceFee"`
	Total       float64     `json:"total"`
}

// @Summary Get cart
// @Description Current cart with derived count, subtotal and server fees
// @Tags cart
// @Produce json
// @Success 200 {object} CartViewResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, cartView(sess.Cart))
}

type AddItemRequest struct {
	ID    string  `json:"id" binding:"required"`
	Name  string  `json:"name"`
	Price float64 `json:"price" binding:"gte=0"`
}

// @Summary Add item to cart
// @Description Add one unit of a menu item; the platform confirms before local state changes
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Menu item"
// @Success 200 {object} CartViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	sess := middleware.GetSession(c)
	err := sess.Cart.Add(c.Request.Context(), cart.Item{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondError(c, "Failed to add item to cart", err)
		return
	}

	c.JSON(http.StatusOK, cartView(sess.Cart))
}

type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// @Summary Update cart item quantity
// @Description Set an item's quantity; zero or less removes it
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param item body UpdateItemRequest true "New quantity"
// @Success 200 {object} CartViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	sess := middleware.GetSession(c)
	if err := sess.Cart.Update(c.Request.Context(), c.Param("id"), *req.Quantity); err != nil {
		respondError(c, "Failed to update cart item", err)
		return
	}

	c.JSON(http.StatusOK, cartView(sess.Cart))
}

// @Summary Remove item from cart
// @Tags cart
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} CartViewResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sess := middleware.GetSession(c)
	if err := sess.Cart.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Failed to remove item from cart", err)
		return
	}

	c.JSON(http.StatusOK, cartView(sess.Cart))
}

// @Summary Clear cart
// @Tags cart
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	sess := middleware.GetSession(c)
	if err := sess.Cart.Clear(c.Request.Context()); err != nil {
		respondError(c, "Failed to clear cart", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Checkout cart
// @Description Place an order from the current cart; local cart clears on success
// @Tags cart
// @Produce json
// @Success 200 {object} models.Order
// @Failure 401 {object} ErrorResponse
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	sess := middleware.GetSession(c)
	order, err := sess.Cart.Checkout(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to checkout", err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func cartView(cs *cart.Session) CartViewResponse {
	state := cs.State()
	fees := cs.Fees()
	subtotal := cart.Subtotal(state)
	return CartViewResponse{
		Items:       state.Items,
		Count:       cart.Count(state),
		Subtotal:    subtotal,
		DeliveryFee: fees.Delivery,
		ServiceFee:  fees.Service,
		Total:       subtotal + fees.Delivery + fees.Service,
	}
}
