package models

import "time"

// OrderItem is an immutable snapshot of a cart line taken at
// submission time. It never changes after the order is created.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	OrderRef  uint      `gorm:"index;not null" json:"-"`
	ItemID    uint      `gorm:"not null" json:"item_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	UnitPrice float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Category  string    `gorm:"type:varchar(100)" json:"category"`
	Cuisine   string    `gorm:"type:varchar(100)" json:"cuisine"`
	FoodType  string    `gorm:"type:varchar(50)" json:"food_type"`
	CreatedAt time.Time `json:"-"`
}

func SnapshotLines(lines []CartLine) []OrderItem {
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItem{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Category:  l.Category,
			Cuisine:   l.Cuisine,
			FoodType:  l.FoodType,
		})
	}
	return items
}
