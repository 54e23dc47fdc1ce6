package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateList is a set of calendar dates (YYYY-MM-DD) stored as a JSON array.
type DateList []string

func (d DateList) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *DateList) Scan(value interface{}) error {
	if value == nil {
		*d = DateList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("cannot scan %T into DateList", value)
	}
}

func (d DateList) Contains(date string) bool {
	for _, v := range d {
		if v == date {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CatererID uint    `gorm:"index;not null" json:"caterer_id"`
	Name      string  `gorm:"type:varchar(255); not null" json:"name"`
	Price     float64 `gorm:"type:decimal(10,2); not null" json:"price"`
	Category  string  `gorm:"type:varchar(100)" json:"category"`
	Cuisine   string  `gorm:"type:varchar(100)" json:"cuisine"`
	FoodType  string  `gorm:"type:varchar(50)" json:"food_type"`
	// Dates the item can be ordered for. Purchasable on D iff D is in
	// Dates AND OnHand is true.
	Dates       DateList  `gorm:"type:text" json:"dates"`
	OnHand      bool      `gorm:"not null;default:true" json:"on_hand"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
