package services

import (
	"sync"

	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
)

// CartService owns the in-progress basket. All mutation goes through
// typed operations here; there are no ambient globals, and each
// basket has exactly one writer (its customer's session).
type CartService struct {
	DB *gorm.DB

	mu   sync.Mutex
	seqs map[uint]uint64 // customer id -> latest issued validation seq
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db, seqs: make(map[uint]uint64)}
}

func (s *CartService) Lines(customerID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := s.DB.Where("customer_id = ?", customerID).Order("created_at asc").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// AddItem adds one unit of a menu item, incrementing the existing line
// if present. A basket belongs to a single caterer; mixing rejects
// with ErrCartCatererMismatch instead of cross-contaminating.
func (s *CartService) AddItem(customerID uint, item models.MenuItem) (*models.CartLine, error) {
	lines, err := s.Lines(customerID)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 && lines[0].CatererID != item.CatererID {
		return nil, ErrCartCatererMismatch
	}

	var line models.CartLine
	err = s.DB.Where("customer_id = ? AND item_id = ?", customerID, item.ID).First(&line).Error
	if err == nil {
		line.Quantity++
		if err := s.DB.Save(&line).Error; err != nil {
			return nil, err
		}
		return &line, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	line = models.CartLine{
		CustomerID: customerID,
		ItemID:     item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   1,
		CatererID:  item.CatererID,
		Category:   item.Category,
		Cuisine:    item.Cuisine,
		FoodType:   item.FoodType,
	}
	if err := s.DB.Create(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// Decrement lowers a line's quantity by one, deleting the line when it
// would drop below 1.
func (s *CartService) Decrement(customerID, itemID uint) error {
	var line models.CartLine
	if err := s.DB.Where("customer_id = ? AND item_id = ?", customerID, itemID).First(&line).Error; err != nil {
		return err
	}
	if line.Quantity <= 1 {
		return s.DB.Delete(&line).Error
	}
	line.Quantity--
	return s.DB.Save(&line).Error
}

func (s *CartService) Remove(customerID, itemID uint) error {
	return s.DB.Where("customer_id = ? AND item_id = ?", customerID, itemID).
		Delete(&models.CartLine{}).Error
}

func (s *CartService) Clear(customerID uint) error {
	return s.DB.Where("customer_id = ?", customerID).Delete(&models.CartLine{}).Error
}

// Replace swaps the whole basket for the given lines (reorder flow).
func (s *CartService) Replace(customerID uint, lines []models.CartLine) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customerID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].CustomerID = customerID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ValidationResult is the kept/dropped partition for one date. Kept
// and Dropped are disjoint and together cover the input lines. Stale
// marks a result superseded by a later-issued validation; it was not
// applied.
type ValidationResult struct {
	Date    string            `json:"date"`
	Kept    []models.CartLine `json:"kept"`
	Dropped []models.CartLine `json:"dropped"`
	Stale   bool              `json:"stale,omitempty"`
}

// Validate partitions the basket against the availability index for a
// date and removes the dropped lines. Ordering guarantee: if a newer
// validation was issued while this one was in flight, this result is
// discarded (last write wins by issue order, not by response arrival).
func (s *CartService) Validate(customerID, catererID uint, date string, index AvailabilityIndex) (*ValidationResult, error) {
	seq := s.issueValidation(customerID)

	available, err := index.AvailableItems(catererID, date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seqs[customerID] != seq {
		// A later date change superseded this query.
		return &ValidationResult{Date: date, Stale: true}, nil
	}

	lines, err := s.Lines(customerID)
	if err != nil {
		return nil, err
	}

	result := &ValidationResult{Date: date}
	for _, line := range lines {
		if available[line.ItemID] {
			result.Kept = append(result.Kept, line)
		} else {
			result.Dropped = append(result.Dropped, line)
		}
	}

	for _, line := range result.Dropped {
		if err := s.DB.Delete(&models.CartLine{}, line.ID).Error; err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *CartService) issueValidation(customerID uint) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seqs[customerID]++
	return s.seqs[customerID]
}
