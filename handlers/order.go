package handlers

import (
	"errors"
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

type AddItemRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	PaymentID uint `json:"payment_id" binding:"required"`
}

type OrderItemDetail struct {
	MenuItemName string  `json:"menu_item_name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

type OrderResponse struct {
	ID             uuid.UUID          `json:"id"`
	UserID         uuid.UUID          `json:"user_id"`
	RestaurantID   uint               `json:"restaurant_id"`
	RestaurantName string             `json:"restaurant_name"`
	Status         models.OrderStatus `json:"status"`
	TotalAmount    float64            `json:"total_amount"`
	Items          []OrderItemDetail  `json:"items"`
}

// Sentinel failures surfaced out of order transactions
var (
	errOrderNotFound       = errors.New("order not found")
	errNotOrderOwner       = errors.New("not your order")
	errOrderFinalized      = errors.New("order already finalized")
	errAlreadyProcessed    = errors.New("already processed")
	errMenuItemUnavailable = errors.New("menu item unavailable")
	errPaymentNotFound     = errors.New("payment method not found")
	errOrderNotPlaced      = errors.New("only placed orders can be cancelled")
)

// CreateOrder opens a new CREATED order owned by the caller
func CreateOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	if !user.IsAdmin() && restaurant.CountryID != user.CountryID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	order := models.Order{
		UserID:       user.ID,
		RestaurantID: restaurant.ID,
		Status:       models.StatusCreated,
		TotalAmount:  decimal.Zero,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order_id": order.ID, "status": order.Status})
}

// AddOrderItem appends a line item to a CREATED order, capturing the menu
// item's current price. The insert and the running-total increment are one
// transaction, and the total is bumped with an atomic update expression so
// concurrent adds cannot lose an increment.
func AddOrderItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return errOrderNotFound
		}
		if !user.IsAdmin() && order.UserID != user.ID {
			return errNotOrderOwner
		}
		if order.Status != models.StatusCreated {
			return errOrderFinalized
		}

		var menuItem models.MenuItem
		if err := tx.First(&menuItem, req.MenuItemID).Error; err != nil {
			return errMenuItemUnavailable
		}
		if !menuItem.IsAvailable {
			return errMenuItemUnavailable
		}

		item := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Quantity:   req.Quantity,
			Price:      menuItem.Price,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		lineTotal := menuItem.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_amount", gorm.Expr("total_amount + ?", lineTotal)).Error
	})

	switch {
	case txErr == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Item added successfully"})
	case errors.Is(txErr, errOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(txErr, errNotOrderOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
	case errors.Is(txErr, errOrderFinalized):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order already finalized"})
	case errors.Is(txErr, errMenuItemUnavailable):
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
	}
}

// CheckoutOrder transitions CREATED -> PLACED. The caller must own the
// order unless they are an admin. The payment method is only checked for
// existence, not ownership.
func CheckoutOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return errOrderNotFound
		}
		if !user.IsAdmin() && order.UserID != user.ID {
			return errNotOrderOwner
		}
		if err := statemachine.CanTransition(order.Status, models.StatusPlaced); err != nil {
			return errAlreadyProcessed
		}

		var payment models.PaymentMethod
		if err := tx.First(&payment, req.PaymentID).Error; err != nil {
			return errPaymentNotFound
		}

		// Guarded update: only flips orders still in CREATED, so a racing
		// second checkout loses.
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, models.StatusCreated).
			Update("status", models.StatusPlaced)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyProcessed
		}
		return tx.First(&order, "id = ?", order.ID).Error
	})

	switch {
	case txErr == nil:
		c.JSON(http.StatusOK, gin.H{
			"order_id":     order.ID,
			"status":       order.Status,
			"total_amount": order.TotalAmount.InexactFloat64(),
		})
	case errors.Is(txErr, errOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(txErr, errNotOrderOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
	case errors.Is(txErr, errAlreadyProcessed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already processed"})
	case errors.Is(txErr, errPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to checkout order"})
	}
}

// CancelOrder transitions PLACED -> CANCELLED. Unlike checkout there is no
// ownership check: any admin or manager may cancel any placed order.
func CancelOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return errOrderNotFound
		}
		if err := statemachine.CanTransition(order.Status, models.StatusCancelled); err != nil {
			return errOrderNotPlaced
		}

		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, models.StatusPlaced).
			Update("status", models.StatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errOrderNotPlaced
		}
		return nil
	})

	switch {
	case txErr == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	case errors.Is(txErr, errOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(txErr, errOrderNotPlaced):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only placed orders can be cancelled"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
	}
}

// ListOrders returns a page of orders with nested line-item detail.
// Non-admin callers only see orders whose restaurant is in their country;
// an optional restaurant_id query param narrows further.
func ListOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)

	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	scope := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&models.Order{}).
			Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id")
		if !user.IsAdmin() {
			q = q.Where("restaurants.country_id = ?", user.CountryID)
		}
		if rid := c.Query("restaurant_id"); rid != "" {
			q = q.Where("orders.restaurant_id = ?", rid)
		}
		return q
	}

	var total int64
	if err := scope(config.DB).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	var orders []models.Order
	if err := scope(config.DB).Select("orders.*").
		Preload("Restaurant").Preload("Items.MenuItem").
		Order("orders.created_at").Offset(skip).Limit(limit).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	items := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		details := make([]OrderItemDetail, 0, len(o.Items))
		for _, it := range o.Items {
			details = append(details, OrderItemDetail{
				MenuItemName: it.MenuItem.Name,
				Quantity:     it.Quantity,
				Price:        it.Price.InexactFloat64(),
			})
		}
		items = append(items, OrderResponse{
			ID:             o.ID,
			UserID:         o.UserID,
			RestaurantID:   o.RestaurantID,
			RestaurantName: o.Restaurant.Name,
			Status:         o.Status,
			TotalAmount:    o.TotalAmount.InexactFloat64(),
			Items:          details,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items":               items,
		"pagination_metadata": pageMeta(total, skip, limit, len(items)),
	})
}
