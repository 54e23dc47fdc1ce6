package services

import (
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
)

// AvailabilityIndex answers which items of a caterer are purchasable
// on a calendar date. Callers must re-query instead of caching: the
// on-hand flag can flip between screens.
type AvailabilityIndex interface {
	AvailableItems(catererID uint, date string) (map[uint]bool, error)
}

// MenuAvailability is the AvailabilityIndex backed by the menu_items
// table.
type MenuAvailability struct {
	DB *gorm.DB
}

func NewMenuAvailability(db *gorm.DB) *MenuAvailability {
	return &MenuAvailability{DB: db}
}

func (m *MenuAvailability) AvailableItems(catererID uint, date string) (map[uint]bool, error) {
	var items []models.MenuItem
	if err := m.DB.Where("caterer_id = ? AND on_hand = ?", catererID, true).Find(&items).Error; err != nil {
		return nil, err
	}

	available := make(map[uint]bool, len(items))
	for _, item := range items {
		if item.Dates.Contains(date) {
			available[item.ID] = true
		}
	}
	return available, nil
}
