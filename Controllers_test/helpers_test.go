package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

var testDBCounter int64

func setupTestDB() *gorm.DB {
	utils.InitLogger()
	name := fmt.Sprintf("file:ctrl_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
		&models.Table{},
	)
	if err != nil {
		panic(err)
	}
	return db
}

// asUser injects the auth claims the middleware would set.
func asUser(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return resp
}

func seedMenuItem(db *gorm.DB, catererID uint, name string, price float64, dates ...string) models.MenuItem {
	item := models.MenuItem{
		CatererID: catererID,
		Name:      name,
		Price:     price,
		Category:  "Meals",
		Dates:     models.DateList(dates),
		OnHand:    true,
	}
	db.Create(&item)
	return item
}

func seedCaterer(db *gorm.DB, paymentAddress string) models.User {
	user := models.User{
		Name:           "Annapurna Caterers",
		Email:          fmt.Sprintf("caterer%d@example.com", atomic.AddInt64(&testDBCounter, 1)),
		Password:       "x",
		Role:           models.RoleCaterer,
		PaymentAddress: paymentAddress,
	}
	db.Create(&user)
	return user
}
