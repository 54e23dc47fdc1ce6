package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

// NewOrderID builds the client-generated order identifier: a
// timestamp-derived token plus a random suffix, unique per attempt.
func NewOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", Now().UnixMilli(), uuid.NewString()[:8])
}

// OrderSubmitter performs the single, non-retrying order write. The
// relational store is authoritative; the cache mirror is best effort.
type OrderSubmitter struct {
	DB    *gorm.DB
	Cache OrderCache
}

func NewOrderSubmitter(db *gorm.DB, cache OrderCache) *OrderSubmitter {
	return &OrderSubmitter{DB: db, Cache: cache}
}

// Submit writes the order durably, then mirrors it into the fallback
// cache. A failed remote write fails the whole operation (the caller
// keeps the basket for an explicit retry); a failed mirror is logged
// and ignored. There is no automatic retry here.
func (s *OrderSubmitter) Submit(ctx context.Context, order models.Order) (*models.Order, error) {
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = Now()
	}

	if err := s.DB.Create(&order).Error; err != nil {
		return nil, &SubmissionError{Cause: err}
	}

	refreshOrderMirror(ctx, s.Cache, order)
	return &order, nil
}

// refreshOrderMirror best-effort writes an order into the fallback
// cache. Never fails the caller.
func refreshOrderMirror(ctx context.Context, cache OrderCache, order models.Order) {
	if cache == nil {
		return
	}
	mirrorCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := cache.Put(mirrorCtx, order); err != nil {
		utils.ErrorLogger.Printf("order %s: fallback cache mirror failed: %v", order.OrderID, err)
	}
}
