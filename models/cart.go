package models

import "time"

// CartLine is one (item, quantity) entry of a customer's in-progress
// basket. Category/Cuisine/FoodType are display snapshots taken when
// the line is created.
type CartLine struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"index;not null" json:"customer_id"`
	ItemID     uint      `gorm:"not null" json:"item_id"`
	Name       string    `gorm:"type:varchar(255); not null" json:"name"`
	UnitPrice  float64   `gorm:"type:decimal(10,2); not null" json:"unit_price"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	CatererID  uint      `gorm:"index;not null" json:"caterer_id"`
	Category   string    `gorm:"type:varchar(100)" json:"category"`
	Cuisine    string    `gorm:"type:varchar(100)" json:"cuisine"`
	FoodType   string    `gorm:"type:varchar(50)" json:"food_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
