package services

import (
	"fmt"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

var testDBCounter int64

// setupTestDB opens a private in-memory SQLite database and migrates
// the pipeline models.
func setupTestDB() *gorm.DB {
	utils.InitLogger()
	name := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
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

// stubIndex is a canned AvailabilityIndex keyed by date.
type stubIndex struct {
	byDate map[string]map[uint]bool
	err    error
	// gate, when set, blocks AvailableItems until released.
	gate chan struct{}
}

func (s *stubIndex) AvailableItems(_ uint, date string) (map[uint]bool, error) {
	if s.gate != nil {
		<-s.gate
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.byDate[date], nil
}

func seedMenuItem(db *gorm.DB, catererID uint, name string, price float64, dates ...string) models.MenuItem {
	item := models.MenuItem{
		CatererID: catererID,
		Name:      name,
		Price:     price,
		Category:  "Meals",
		Cuisine:   "South Indian",
		FoodType:  "veg",
		Dates:     models.DateList(dates),
		OnHand:    true,
	}
	if err := db.Create(&item).Error; err != nil {
		panic(err)
	}
	return item
}

func seedCaterer(db *gorm.DB, name, paymentAddress string) models.User {
	user := models.User{
		Name:           name,
		Email:          name + "@example.com",
		Password:       "x",
		Role:           models.RoleCaterer,
		PaymentAddress: paymentAddress,
	}
	if err := db.Create(&user).Error; err != nil {
		panic(err)
	}
	return user
}

func seedCustomer(db *gorm.DB, name string) models.User {
	user := models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "x",
		Role:     models.RoleCustomer,
	}
	if err := db.Create(&user).Error; err != nil {
		panic(err)
	}
	return user
}
