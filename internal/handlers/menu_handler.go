package handlers

import (
	"net/http"

	"golang-food-storefront/internal/middleware"
	"golang-food-storefront/internal/models"
	"golang-food-storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService *services.MenuService
}

func NewMenuHandler(menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// RegisterRoutes registers menu browsing and the admin menu CRUD surface
func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	router.GET("/restaurants/:id/menus", h.ListMenus)

	admin := router.Group("/admin/menus", sessionMiddleware.AdminRequired())
	{
		admin.POST("", h.CreateMenu)
		admin.PUT("/:id", h.UpdateMenu)
		admin.DELETE("/:id", h.DeleteMenu)
	}
}

// @Summary List restaurant menu
// @Tags menus
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {array} models.MenuItem
// @Failure 502 {object} ErrorResponse
// @Router /restaurants/{id}/menus [get]
func (h *MenuHandler) ListMenus(c *gin.Context) {
	menus, err := h.menuService.ListByRestaurant(c.Request.Context(), tokenSource(c), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to fetch menus", err)
		return
	}

	if menus == nil {
		menus = []models.MenuItem{}
	}
	c.JSON(http.StatusOK, menus)
}

// @Summary Create menu item
// @Description Admin only; multipart form (incl. image) is forwarded to the platform unchanged
// @Tags menus
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.MenuItem
// @Failure 403 {object} ErrorResponse
// @Router /admin/menus [post]
func (h *MenuHandler) CreateMenu(c *gin.Context) {
	menu, err := h.menuService.Create(c.Request.Context(), tokenSource(c),
		c.GetHeader("Content-Type"), c.Request.Body)
	if err != nil {
		respondError(c, "Failed to create menu item", err)
		return
	}

	c.JSON(http.StatusCreated, menu)
}

// @Summary Update menu item
// @Tags menus
// @Accept mpfd
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.MenuItem
// @Failure 403 {object} ErrorResponse
// @Router /admin/menus/{id} [put]
func (h *MenuHandler) UpdateMenu(c *gin.Context) {
	menu, err := h.menuService.Update(c.Request.Context(), tokenSource(c),
		c.Param("id"), c.GetHeader("Content-Type"), c.Request.Body)
	if err != nil {
		respondError(c, "Failed to update menu item", err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// @Summary Delete menu item
// @Tags menus
// @Param id path string true "Menu item ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Router /admin/menus/{id} [delete]
func (h *MenuHandler) DeleteMenu(c *gin.Context) {
	if err := h.menuService.Delete(c.Request.Context(), tokenSource(c), c.Param("id")); err != nil {
		respondError(c, "Failed to delete menu item", err)
		return
	}

	c.Status(http.StatusNoContent)
}
