package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
)

// ReorderResult reports what a reorder restored into the basket.
type ReorderResult struct {
	Date         string            `json:"date"`
	Restored     []models.CartLine `json:"restored"`
	DroppedCount int               `json:"dropped_count"`
}

// ReorderService reconstructs a basket from a historical order.
type ReorderService struct {
	DB    *gorm.DB
	Cache OrderCache
	Carts *CartService
	Index AvailabilityIndex
}

func NewReorderService(db *gorm.DB, cache OrderCache, carts *CartService, index AvailabilityIndex) *ReorderService {
	return &ReorderService{DB: db, Cache: cache, Carts: carts, Index: index}
}

// Reorder finds the historical order (store first, fallback cache
// second, store winning on conflict), validates its items against
// today, and replaces the basket with the survivors. Zero survivors
// clears any partial basket state and reports ErrNothingReorderable
// instead of leaving an empty basket behind silently.
func (s *ReorderService) Reorder(ctx context.Context, customerID uint, orderID string) (*ReorderResult, error) {
	order, err := s.findOrder(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}

	today := Today()
	available, err := s.Index.AvailableItems(order.CatererID, today)
	if err != nil {
		return nil, err
	}

	var restored []models.CartLine
	dropped := 0
	for _, item := range order.Items {
		if !available[item.ItemID] {
			dropped++
			continue
		}
		restored = append(restored, models.CartLine{
			CustomerID: customerID,
			ItemID:     item.ItemID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			CatererID:  order.CatererID,
			Category:   item.Category,
			Cuisine:    item.Cuisine,
			FoodType:   item.FoodType,
		})
	}

	if len(restored) == 0 {
		if err := s.Carts.Clear(customerID); err != nil {
			return nil, err
		}
		return nil, ErrNothingReorderable
	}

	if err := s.Carts.Replace(customerID, restored); err != nil {
		return nil, err
	}
	return &ReorderResult{Date: today, Restored: restored, DroppedCount: dropped}, nil
}

func (s *ReorderService) findOrder(ctx context.Context, customerID uint, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items").
		Where("order_id = ? AND customer_id = ?", orderID, customerID).
		First(&order).Error
	if err == nil {
		return &order, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if s.Cache != nil {
		cached, cerr := s.Cache.Get(ctx, orderID)
		if cerr == nil && cached != nil && cached.CustomerID == customerID {
			return cached, nil
		}
	}
	return nil, ErrOrderNotFound
}
