package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRestaurantRequest struct {
	Name    string             `json:"name" binding:"required"`
	Country models.CountryName `json:"country" binding:"required"`
}

type RestaurantResponse struct {
	ID      uint               `json:"id"`
	Name    string             `json:"name"`
	Country models.CountryName `json:"country"`
}

// CreateRestaurant inserts a new restaurant — admin only
func CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	var country models.Country
	if err := config.DB.Where("name = ?", req.Country).First(&country).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid country"})
		return
	}

	restaurant := models.Restaurant{Name: req.Name, CountryID: country.ID}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created"})
}

// ListRestaurants returns a page of restaurants in insertion order.
// Non-admin callers only see restaurants in their own country.
func ListRestaurants(c *gin.Context) {
	user := middleware.CurrentUser(c)

	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	scope := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&models.Restaurant{})
		if !user.IsAdmin() {
			q = q.Where("country_id = ?", user.CountryID)
		}
		return q
	}

	var total int64
	if err := scope(config.DB).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}

	var restaurants []models.Restaurant
	if err := scope(config.DB).Preload("Country").Order("id").
		Offset(skip).Limit(limit).Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}

	items := make([]RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		items = append(items, RestaurantResponse{ID: r.ID, Name: r.Name, Country: r.Country.Name})
	}

	c.JSON(http.StatusOK, gin.H{
		"items":               items,
		"pagination_metadata": pageMeta(total, skip, limit, len(items)),
	})
}
