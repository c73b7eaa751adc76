package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	anyRole := middleware.RoleRequired(models.RoleAdmin, models.RoleManager, models.RoleMember)
	adminOnly := middleware.RoleRequired(models.RoleAdmin)
	adminOrManager := middleware.RoleRequired(models.RoleAdmin, models.RoleManager)

	// ── Public routes ──────────────────────────────────────────────
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit())
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	// ── Restaurants ────────────────────────────────────────────────
	restaurants := r.Group("/restaurants")
	restaurants.Use(middleware.AuthRequired())
	{
		restaurants.POST("/", adminOnly, handlers.CreateRestaurant)
		restaurants.GET("/", anyRole, handlers.ListRestaurants)
	}

	// ── Menu items ─────────────────────────────────────────────────
	menuItems := r.Group("/menu-items")
	menuItems.Use(middleware.AuthRequired())
	{
		menuItems.POST("/", adminOnly, handlers.CreateMenuItem)
		menuItems.GET("/:id", anyRole, handlers.ListMenuItems)
		menuItems.PATCH("/:id/availability", adminOnly, handlers.ToggleMenuItemAvailability)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := r.Group("/orders")
	orders.Use(middleware.AuthRequired())
	{
		orders.POST("/", anyRole, handlers.CreateOrder)
		orders.GET("/", anyRole, handlers.ListOrders)
		orders.POST("/:id/items", anyRole, handlers.AddOrderItem)
		orders.POST("/:id/checkout", adminOrManager, handlers.CheckoutOrder)
		orders.PATCH("/:id/cancel", adminOrManager, handlers.CancelOrder)
	}

	// ── Payment methods ────────────────────────────────────────────
	payments := r.Group("/payments")
	payments.Use(middleware.AuthRequired())
	{
		payments.POST("/", adminOnly, handlers.AddPaymentMethod)
		payments.GET("/", anyRole, handlers.ListPaymentMethods)
		payments.PUT("/:id", adminOnly, handlers.UpdatePaymentMethod)
	}
}
