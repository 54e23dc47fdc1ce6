package Controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/controllers"
	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/services"
)

func setupCheckoutRouter(db *gorm.DB, customerID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(customerID, models.RoleCustomer))

	index := services.NewMenuAvailability(db)
	carts := services.NewCartService(db)
	session := services.NewMemorySession()
	cache := services.NewMemoryOrderCache()
	submitter := services.NewOrderSubmitter(db, cache)
	checkout := services.NewCheckoutService(db, carts, index, session, submitter)

	cartCtrl := controllers.NewCartController(db, carts, index, session)
	checkoutCtrl := controllers.NewCheckoutController(checkout, session)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.POST("/session/caterer", checkoutCtrl.SelectCaterer)
	router.POST("/session/delivery-date", checkoutCtrl.SetDeliveryDate)
	router.POST("/checkout", checkoutCtrl.PlaceOrder)
	return router
}

func TestPlaceOrderCOD(t *testing.T) {
	db := setupTestDB()
	caterer := seedCaterer(db, "")
	item := seedMenuItem(db, caterer.ID, "Veg Thali", 120, "2026-09-01")
	router := setupCheckoutRouter(db, 1)

	doJSON(t, router, "POST", "/cart/items", gin.H{"item_id": item.ID})

	w := doJSON(t, router, "POST", "/checkout", gin.H{
		"delivery_date":    "2026-09-01",
		"payment":          gin.H{"method": "cod"},
		"delivery_address": "14 MG Road",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.True(t, strings.HasPrefix(data["order_id"].(string), "ORD-"))
	assert.Equal(t, models.StatusPending, data["status"])
	assert.Equal(t, models.PaymentCOD, data["payment_method"])
	assert.Equal(t, models.TxnNone, data["transaction_id"])
	assert.Equal(t, 120.0, data["total_amount"])

	// The basket is consumed by a successful submission.
	w = doJSON(t, router, "GET", "/cart", nil)
	cart := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 0.0, cart["total"])
}

func TestPlaceOrderUPIWithoutPaymentAddress(t *testing.T) {
	db := setupTestDB()
	caterer := seedCaterer(db, "") // no payment address on file
	item := seedMenuItem(db, caterer.ID, "Veg Thali", 120, "2026-09-01")
	router := setupCheckoutRouter(db, 1)

	doJSON(t, router, "POST", "/cart/items", gin.H{"item_id": item.ID})

	w := doJSON(t, router, "POST", "/checkout", gin.H{
		"delivery_date": "2026-09-01",
		"payment":       gin.H{"method": "upi", "transaction_id": "UPI123"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Nothing was written and the basket survives.
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)

	w = doJSON(t, router, "GET", "/cart", nil)
	cart := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 120.0, cart["total"])
}

func TestPlaceOrderUPIWithoutReference(t *testing.T) {
	db := setupTestDB()
	caterer := seedCaterer(db, "annapurna@upi")
	item := seedMenuItem(db, caterer.ID, "Veg Thali", 120, "2026-09-01")
	router := setupCheckoutRouter(db, 1)

	doJSON(t, router, "POST", "/cart/items", gin.H{"item_id": item.ID})

	w := doJSON(t, router, "POST", "/checkout", gin.H{
		"delivery_date": "2026-09-01",
		"payment":       gin.H{"method": "upi", "transaction_id": "   "},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPlaceOrderAbortsOnDroppedItems(t *testing.T) {
	db := setupTestDB()
	caterer := seedCaterer(db, "")
	item := seedMenuItem(db, caterer.ID, "Veg Thali", 120, "2026-09-01")
	router := setupCheckoutRouter(db, 1)

	doJSON(t, router, "POST", "/cart/items", gin.H{"item_id": item.ID})

	// The item is not on the menu for this day.
	w := doJSON(t, router, "POST", "/checkout", gin.H{
		"delivery_date": "2026-09-02",
		"payment":       gin.H{"method": "cod"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupTestDB()
	seedCaterer(db, "")
	router := setupCheckoutRouter(db, 1)

	w := doJSON(t, router, "POST", "/checkout", gin.H{
		"payment": gin.H{"method": "cod"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderUsesSessionDeliveryDate(t *testing.T) {
	db := setupTestDB()
	caterer := seedCaterer(db, "")
	item := seedMenuItem(db, caterer.ID, "Veg Thali", 120, "2026-09-05")
	router := setupCheckoutRouter(db, 1)

	doJSON(t, router, "POST", "/cart/items", gin.H{"item_id": item.ID})

	w := doJSON(t, router, "POST", "/session/delivery-date", gin.H{"date": "2026-09-05"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/checkout", gin.H{
		"payment": gin.H{"method": "cod"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "2026-09-05", data["delivery_date"])
}
