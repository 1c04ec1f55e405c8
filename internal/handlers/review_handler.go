package handlers

import (
	"net/http"

	"golang-food-storefront/internal/middleware"
	"golang-food-storefront/internal/models"
	"golang-food-storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// RegisterRoutes registers review browsing and authoring routes
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	router.GET("/restaurants/:id/reviews", h.ListReviews)
	router.POST("/restaurants/:id/reviews", sessionMiddleware.UserRequired(), h.AddReview)
	router.DELETE("/reviews/:id", sessionMiddleware.UserRequired(), h.DeleteReview)
}

// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {array} models.Review
// @Failure 502 {object} ErrorResponse
// @Router /restaurants/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Request.Context(), tokenSource(c), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to fetch reviews", err)
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// @Summary Add review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param review body services.AddReviewRequest true "Review"
// @Success 201 {object} models.Review
// @Failure 401 {object} ErrorResponse
// @Router /restaurants/{id}/reviews [post]
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req services.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	review, err := h.reviewService.Add(c.Request.Context(), tokenSource(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, "Failed to add review", err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// @Summary Delete review
// @Tags reviews
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	if err := h.reviewService.Delete(c.Request.Context(), tokenSource(c), c.Param("id")); err != nil {
		respondError(c, "Failed to delete review", err)
		return
	}

	c.Status(http.StatusNoContent)
}
