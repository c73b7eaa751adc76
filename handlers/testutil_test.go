package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupServer builds a fresh in-memory database and router per test.
// A single connection keeps the shared :memory: database alive for the
// test's duration.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.SeedRolesAndCountries(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func performRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser creates an account through the API and returns its token
func registerUser(t *testing.T, r *gin.Engine, name string, role models.RoleName, country models.CountryName) string {
	t.Helper()
	w := performRequest(r, http.MethodPost, "/auth/register", gin.H{
		"name":     name,
		"email":    fmt.Sprintf("%s@example.com", name),
		"password": "secret123",
		"role":     role,
		"country":  country,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["access_token"].(string)
}

// createRestaurant inserts a restaurant as admin and returns its id
func createRestaurant(t *testing.T, r *gin.Engine, adminToken, name string, country models.CountryName) uint {
	t.Helper()
	w := performRequest(r, http.MethodPost, "/restaurants/", gin.H{
		"name":    name,
		"country": country,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var restaurant models.Restaurant
	require.NoError(t, config.DB.Where("name = ?", name).Last(&restaurant).Error)
	return restaurant.ID
}

// createMenuItem inserts a menu item as admin and returns its id
func createMenuItem(t *testing.T, r *gin.Engine, adminToken string, restaurantID uint, name string, price float64) uint {
	t.Helper()
	w := performRequest(r, http.MethodPost, "/menu-items/", gin.H{
		"restaurant_id": restaurantID,
		"name":          name,
		"price":         price,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.MenuItem
	require.NoError(t, config.DB.Where("name = ?", name).Last(&item).Error)
	return item.ID
}

// createOrder opens an order through the API and returns its id
func createOrder(t *testing.T, r *gin.Engine, token string, restaurantID uint) string {
	t.Helper()
	w := performRequest(r, http.MethodPost, "/orders/", gin.H{
		"restaurant_id": restaurantID,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["order_id"].(string)
}

// createPaymentMethod stores a payment method as admin and returns its id
func createPaymentMethod(t *testing.T, r *gin.Engine, adminToken string, isDefault bool) uint {
	t.Helper()
	w := performRequest(r, http.MethodPost, "/payments/", gin.H{
		"type":       "CARD",
		"provider":   "Visa",
		"last_four":  "4242",
		"is_default": isDefault,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["id"].(float64))
}
