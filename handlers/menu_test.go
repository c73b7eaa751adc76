package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuItemRestaurantMissing(t *testing.T) {
	r := setupServer(t)
	admin := registerUser(t, r, "admin", models.RoleAdmin, models.CountryIndia)

	w := performRequest(r, http.MethodPost, "/menu-items/", gin.H{
		"restaurant_id": 999, "name": "Dosa", "price": 4.50,
	}, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMenuItemRejectsNonPositivePrice(t *testing.T) {
	r := setupServer(t)
	admin := registerUser(t, r, "admin", models.RoleAdmin, models.CountryIndia)
	restID := createRestaurant(t, r, admin, "Cafe", models.CountryIndia)

	w := performRequest(r, http.MethodPost, "/menu-items/", gin.H{
		"restaurant_id": restID, "name": "Dosa", "price": -1,
	}, admin)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListMenuItemsCountryScoped(t *testing.T) {
	r := setupServer(t)
	admin := registerUser(t, r, "admin", models.RoleAdmin, models.CountryIndia)
	member := registerUser(t, r, "member", models.RoleMember, models.CountryAmerica)

	restID := createRestaurant(t, r, admin, "Delhi Diner", models.CountryIndia)
	createMenuItem(t, r, admin, restID, "Dosa", 4.50)

	// Foreign-country caller is rejected with Forbidden, not NotFound
	w := performRequest(r, http.MethodGet, fmt.Sprintf("/menu-items/%d", restID), nil, member)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(r, http.MethodGet, fmt.Sprintf("/menu-items/%d", restID), nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/menu-items/999", nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMenuItemsIncludesUnavailable(t *testing.T) {
	r := setupServer(t)
	admin := registerUser(t, r, "admin", models.RoleAdmin, models.CountryIndia)

	restID := createRestaurant(t, r, admin, "Cafe", models.CountryIndia)
	itemID := createMenuItem(t, r, admin, restID, "Dosa", 4.50)
	createMenuItem(t, r, admin, restID, "Idli", 3.00)

	w := performRequest(r, http.MethodPatch, fmt.Sprintf("/menu-items/%d/availability", itemID), nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, fmt.Sprintf("/menu-items/%d", restID), nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeBody(t, w)["items"].([]interface{})
	require.Len(t, items, 2)

	available := map[string]bool{}
	for _, it := range items {
		m := it.(map[string]interface{})
		available[m["name"].(string)] = m["is_available"].(bool)
	}
	assert.False(t, available["Dosa"])
	assert.True(t, available["Idli"])
}

func TestToggleAvailabilityInverts(t *testing.T) {
	r := setupServer(t)
	admin := registerUser(t, r, "admin", models.RoleAdmin, models.CountryIndia)

	restID := createRestaurant(t, r, admin, "Cafe", models.CountryIndia)
	itemID := createMenuItem(t, r, admin, restID, "Dosa", 4.50)

	// Each call inverts; two calls restore the original state
	path := fmt.Sprintf("/menu-items/%d/availability", itemID)
	require.Equal(t, http.StatusOK, performRequest(r, http.MethodPatch, path, nil, admin).Code)

	var item models.MenuItem
	require.NoError(t, config.DB.First(&item, itemID).Error)
	assert.False(t, item.IsAvailable)

	require.Equal(t, http.StatusOK, performRequest(r, http.MethodPatch, path, nil, admin).Code)
	require.NoError(t, config.DB.First(&item, itemID).Error)
	assert.True(t, item.IsAvailable)

	w := performRequest(r, http.MethodPatch, "/menu-items/999/availability", nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
