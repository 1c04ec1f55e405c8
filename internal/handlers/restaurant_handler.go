package handlers

import (
	"net/http"

	"golang-food-storefront/internal/middleware"
	"golang-food-storefront/internal/models"
	"golang-food-storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	restaurantService *services.RestaurantService
}

func NewRestaurantHandler(restaurantService *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
	}
}

// RegisterRoutes registers public browsing routes and the admin CRUD surface
func (h *RestaurantHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	router.GET("/restaurants", h.ListRestaurants)
	router.GET("/restaurants/:id", h.GetRestaurant)

	admin := router.Group("/admin/restaurants", sessionMiddleware.AdminRequired())
	{
		admin.POST("", h.CreateRestaurant)
		admin.PUT("/:id", h.UpdateRestaurant)
		admin.DELETE("/:id", h.DeleteRestaurant)
	}
}

// @Summary List restaurants
// @Description All restaurants; an empty platform catalog yields an empty list, not an error
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.Restaurant
// @Failure 502 {object} ErrorResponse
// @Router /restaurants [get]
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.restaurantService.List(c.Request.Context(), tokenSource(c))
	if err != nil {
		respondError(c, "Failed to fetch restaurants", err)
		return
	}

	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	c.JSON(http.StatusOK, restaurants)
}

// @Summary Get restaurant
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} ErrorResponse
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.restaurantService.Get(c.Request.Context(), tokenSource(c), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to fetch restaurant", err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// @Summary Create restaurant
// @Description Admin only; multipart form (incl. image) is forwarded to the platform unchanged
// @Tags restaurants
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.Restaurant
// @Failure 403 {object} ErrorResponse
// @Router /admin/restaurants [post]
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	restaurant, err := h.restaurantService.Create(c.Request.Context(), tokenSource(c),
		c.GetHeader("Content-Type"), c.Request.Body)
	if err != nil {
		respondError(c, "Failed to create restaurant", err)
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// @Summary Update restaurant
// @Tags restaurants
// @Accept mpfd
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 403 {object} ErrorResponse
// @Router /admin/restaurants/{id} [put]
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	restaurant, err := h.restaurantService.Update(c.Request.Context(), tokenSource(c),
		c.Param("id"), c.GetHeader("Content-Type"), c.Request.Body)
	if err != nil {
		respondError(c, "Failed to update restaurant", err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// @Summary Delete restaurant
// @Tags restaurants
// @Param id path string true "Restaurant ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Router /admin/restaurants/{id} [delete]
func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	if err := h.restaurantService.Delete(c.Request.Context(), tokenSource(c), c.Param("id")); err != nil {
		respondError(c, "Failed to delete restaurant", err)
		return
	}

	c.Status(http.StatusNoContent)
}
