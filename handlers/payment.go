package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddPaymentMethodRequest struct {
	Type      models.PaymentType `json:"type" binding:"required,oneof=CARD UPI"`
	Provider  string             `json:"provider" binding:"required"`
	LastFour  string             `json:"last_four" binding:"required,len=4"`
	IsDefault bool               `json:"is_default"`
}

type UpdatePaymentMethodRequest struct {
	Provider  *string `json:"provider"`
	IsDefault *bool   `json:"is_default"`
}

type PaymentMethodResponse struct {
	ID        uint               `json:"id"`
	Type      models.PaymentType `json:"type"`
	Provider  string             `json:"provider"`
	LastFour  string             `json:"last_four"`
	IsDefault bool               `json:"is_default"`
}

// AddPaymentMethod stores a payment method for the caller. When is_default
// is set, clearing the caller's previous defaults and inserting happen in
// one transaction so the single-default invariant holds at every commit.
func AddPaymentMethod(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req AddPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	payment := models.PaymentMethod{
		UserID:    user.ID,
		Type:      req.Type,
		Provider:  req.Provider,
		LastFour:  req.LastFour,
		IsDefault: req.IsDefault,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.PaymentMethod{}).
				Where("user_id = ?", user.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add payment method"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Payment method added", "id": payment.ID})
}

// ListPaymentMethods returns a page of payment methods system-wide for any
// authenticated role
func ListPaymentMethods(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	var total int64
	if err := config.DB.Model(&models.PaymentMethod{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payment methods"})
		return
	}

	var methods []models.PaymentMethod
	if err := config.DB.Order("id").Offset(skip).Limit(limit).Find(&methods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payment methods"})
		return
	}

	items := make([]PaymentMethodResponse, 0, len(methods))
	for _, p := range methods {
		items = append(items, PaymentMethodResponse{
			ID:        p.ID,
			Type:      p.Type,
			Provider:  p.Provider,
			LastFour:  p.LastFour,
			IsDefault: p.IsDefault,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items":               items,
		"pagination_metadata": pageMeta(total, skip, limit, len(items)),
	})
}

// UpdatePaymentMethod partially updates a payment method — admin only.
// Setting is_default here does NOT clear other defaults; only the add path
// enforces the single-default invariant.
func UpdatePaymentMethod(c *gin.Context) {
	var req UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	var payment models.PaymentMethod
	if err := config.DB.First(&payment, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Provider != nil {
		updates["provider"] = *req.Provider
	}
	if req.IsDefault != nil {
		updates["is_default"] = *req.IsDefault
	}
	if len(updates) > 0 {
		if err := config.DB.Model(&payment).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment method"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment method updated"})
}
