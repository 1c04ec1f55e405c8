package handlers

import (
	"net/http"

	"golang-food-storefront/internal/middleware"
	"golang-food-storefront/internal/models"
	"golang-food-storefront/internal/services"
	"golang-food-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  *services.AuthService
	manager      *session.Manager
	cookieName   string
	cookieMaxAge int
}

func NewAuthHandler(authService *services.AuthService, manager *session.Manager, cookieName string, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		manager:      manager,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
	}
}

// RegisterRoutes registers the routes for login, registration and logout
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", sessionMiddleware.UserRequired(), h.Logout)
	}
}

// @Summary Login
// @Description Forward credentials to the platform and open a storefront session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.LoginRequest true "Login request"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	upstream, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Login failed", err)
		return
	}

	h.openSession(c, upstream)
}

// @Summary Register
// @Description Create an account on the platform and open a storefront session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.RegisterRequest true "Registration request"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	upstream, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Registration failed", err)
		return
	}

	h.openSession(c, upstream)
}

// @Summary Logout
// @Description Close the session and clear the cart
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "No active session",
		})
		return
	}

	if err := h.manager.Logout(c.Request.Context(), sess.ID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Logout failed",
			Message: err.Error(),
		})
		return
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

type SessionResponse struct {
	User      models.AuthUser `json:"user"`
	View      string          `json:"view"`
	CartCount int             `json:"cartCount"`
}

func (h *AuthHandler) openSession(c *gin.Context, upstream models.Session) {
	sess, err := h.manager.Login(c.Request.Context(), upstream)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to open session",
			Message: err.Error(),
		})
		return
	}

	c.SetCookie(h.cookieName, sess.ID, h.cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, SessionResponse{
		User:      sess.User,
		View:      sess.View().String(),
		CartCount: sess.Cart.Count(),
	})
}
