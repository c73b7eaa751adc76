package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateMenuItemRequest struct {
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
}

type MenuItemResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
}

// CreateMenuItem adds an item to a restaurant's menu — admin only, no
// country check (admin bypasses scoping anyway)
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        decimal.NewFromFloat(req.Price).Round(2),
		IsAvailable:  true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created successfully"})
}

// ListMenuItems returns a page of a restaurant's menu, unavailable items
// included. Non-admin callers are restricted to their own country.
func ListMenuItems(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	if !user.IsAdmin() && restaurant.CountryID != user.CountryID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	var total int64
	if err := config.DB.Model(&models.MenuItem{}).
		Where("restaurant_id = ?", restaurant.ID).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list menu items"})
		return
	}

	var menuItems []models.MenuItem
	if err := config.DB.Where("restaurant_id = ?", restaurant.ID).
		Order("id").Offset(skip).Limit(limit).Find(&menuItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list menu items"})
		return
	}

	items := make([]MenuItemResponse, 0, len(menuItems))
	for _, m := range menuItems {
		items = append(items, MenuItemResponse{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Price:       m.Price.InexactFloat64(),
			IsAvailable: m.IsAvailable,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items":               items,
		"pagination_metadata": pageMeta(total, skip, limit, len(items)),
	})
}

// ToggleMenuItemAvailability flips the availability flag — admin only.
// Deliberately not idempotent: each call inverts the current value.
func ToggleMenuItemAvailability(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	if err := config.DB.Model(&item).Update("is_available", !item.IsAvailable).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}
