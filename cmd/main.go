package main

import (
	"log"
	"time"

	"golang-food-storefront/configs"
	"golang-food-storefront/internal/cart"
	"golang-food-storefront/internal/handlers"
	"golang-food-storefront/internal/middleware"
	"golang-food-storefront/internal/services"
	"golang-food-storefront/internal/session"
	"golang-food-storefront/pkg/auth"
	"golang-food-storefront/pkg/gateway"
	"golang-food-storefront/pkg/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Initialize session persistence
	sessionStore := store.NewSessionStore(config.Redis.URL, config.Redis.Password, config.Redis.DB,
		time.Duration(config.Session.TTLHours)*time.Hour)
	if sessionStore == nil {
		log.Fatal("Failed to connect to Redis")
	}
	defer sessionStore.Close()

	// Initialize the upstream API client (the only network egress point)
	client := gateway.NewClient(config.Upstream.BaseURL,
		time.Duration(config.Upstream.TimeoutSeconds)*time.Second)

	// Initialize token inspector and session manager
	inspector := auth.NewInspector()
	manager := session.NewManager(sessionStore, inspector, func(ts gateway.TokenSource) *cart.Session {
		return cart.NewSession(services.NewRemoteCart(client, ts))
	})

	// Initialize services
	authService := services.NewAuthService(client)
	restaurantService := services.NewRestaurantService(client)
	menuService := services.NewMenuService(client)
	orderService := services.NewOrderService(client)
	reviewService := services.NewReviewService(client)
	paymentService := services.NewPaymentService(client)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(manager, config.Session.CookieName)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, manager, config.Session.CookieName,
		config.Session.TTLHours*3600)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)
	menuHandler := handlers.NewMenuHandler(menuService)
	cartHandler := handlers.NewCartHandler()
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(sessionMiddleware.Resolve())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "golang-food-storefront",
		})
	})

	// Storefront routes
	root := router.Group("/")

	// Register routes
	authHandler.RegisterRoutes(root, sessionMiddleware)
	restaurantHandler.RegisterRoutes(root, sessionMiddleware)
	menuHandler.RegisterRoutes(root, sessionMiddleware)
	cartHandler.RegisterRoutes(root, sessionMiddleware)
	orderHandler.RegisterRoutes(root, sessionMiddleware)
	reviewHandler.RegisterRoutes(root, sessionMiddleware)
	paymentHandler.RegisterRoutes(root, sessionMiddleware)

	log.Printf("Storefront starting on port %s (upstream %s)", config.Server.Port, config.Upstream.BaseURL)
	log.Fatal(router.Run(":" + config.Server.Port))
}
