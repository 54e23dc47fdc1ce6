package models

import "time"

type Table struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CatererID uint   `gorm:"index;not null" json:"caterer_id"`
	Number    int    `gorm:"not null" json:"number"`
	Label     string `gorm:"type:varchar(50);not null" json:"label"`
	// QRCode is the scannable payload for this table, a base64 PNG.
	QRCode    string    `gorm:"type:text" json:"qr_code"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
