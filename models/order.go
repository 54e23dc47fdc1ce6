package models

import "time"

// Order statuses. Advancement is caterer-initiated only; delivered and
// cancelled are terminal.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// Payment methods.
const (
	PaymentUPI = "upi"
	PaymentCOD = "cod"

	// TxnNone is the transaction id sentinel for cash orders.
	TxnNone = "N/A"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"-"`
	// OrderID is the client-generated unique identifier; the store
	// rejects a duplicate rather than creating a second order.
	OrderID       string      `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_id"`
	CustomerID    uint        `gorm:"index;not null" json:"customer_id"`
	CatererID     uint        `gorm:"index;not null" json:"caterer_id"`
	Items         []OrderItem `gorm:"foreignKey:OrderRef;references:ID" json:"items"`
	TotalAmount   float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaymentMethod string      `gorm:"type:varchar(10);not null" json:"payment_method"`
	TransactionID string      `gorm:"type:varchar(255);not null" json:"transaction_id"`
	// ProofRef is an optional proof-of-payment image reference.
	ProofRef        string `gorm:"type:varchar(255)" json:"proof_ref,omitempty"`
	DeliveryAddress string `gorm:"type:text" json:"delivery_address,omitempty"`
	// TableNumber is set for on-premise orders instead of an address.
	TableNumber  *int      `json:"table_number,omitempty"`
	ItemCount    int       `gorm:"not null" json:"item_count"`
	OrderDate    time.Time `gorm:"not null" json:"order_date"`
	DeliveryDate string    `gorm:"type:varchar(10)" json:"delivery_date,omitempty"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OnPremise reports whether the order is tied to a table rather than a
// delivery address.
func (o *Order) OnPremise() bool {
	return o.TableNumber != nil
}

func (o *Order) Terminal() bool {
	return o.Status == StatusDelivered || o.Status == StatusCancelled
}
