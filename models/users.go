package models

import "time"

const (
	RoleCustomer = "customer"
	RoleCaterer  = "caterer"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255); not null" json:"name"`
	Email    string `gorm:"type:varchar(255); unique;not null" json:"email"`
	Password string `gorm:"type:varchar(255); not null" json:"-"`
	Role     string `gorm:"type:varchar(20); not null" json:"role"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	// Delivery address used as the default for home-delivery orders.
	Address string `gorm:"type:text" json:"address,omitempty"`
	// PaymentAddress is the caterer's UPI id. Empty means direct
	// transfer is not available for this caterer.
	PaymentAddress string    `gorm:"type:varchar(255)" json:"payment_address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
