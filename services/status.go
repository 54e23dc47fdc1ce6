package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
)

// The allowed-transition tables are data so tests can enumerate them.
// Delivery orders walk the full chain; on-premise (table) orders skip
// out_for_delivery since there is no delivery leg. cancelled is
// reachable from every non-terminal state.
var deliveryTransitions = map[string][]string{
	models.StatusPending:        {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:      {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing:      {models.StatusOutForDelivery, models.StatusCancelled},
	models.StatusOutForDelivery: {models.StatusDelivered, models.StatusCancelled},
	models.StatusDelivered:      {},
	models.StatusCancelled:      {},
}

var onPremiseTransitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing: {models.StatusDelivered, models.StatusCancelled},
	models.StatusDelivered: {},
	models.StatusCancelled: {},
}

// AllowedTransitions returns a copy of the transition table for the
// given order kind.
func AllowedTransitions(onPremise bool) map[string][]string {
	src := deliveryTransitions
	if onPremise {
		src = onPremiseTransitions
	}
	table := make(map[string][]string, len(src))
	for from, next := range src {
		table[from] = append([]string(nil), next...)
	}
	return table
}

func transitionAllowed(order *models.Order, next string) bool {
	table := deliveryTransitions
	if order.OnPremise() {
		table = onPremiseTransitions
	}
	for _, allowed := range table[order.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusService advances orders through the lifecycle. Seller side
// only; customers never call Advance.
type StatusService struct {
	DB    *gorm.DB
	Cache OrderCache
}

func NewStatusService(db *gorm.DB, cache OrderCache) *StatusService {
	return &StatusService{DB: db, Cache: cache}
}

// Advance moves an order to next, rejecting anything outside the
// allow-list with a TransitionError. Only status changes after
// submission; the line snapshot and total stay as written.
func (s *StatusService) Advance(ctx context.Context, orderID, next string) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items").Where("order_id = ?", orderID).First(&order).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(&order, next) {
		return nil, &TransitionError{From: order.Status, To: next}
	}

	if err := s.DB.Model(&order).Update("status", next).Error; err != nil {
		return nil, err
	}
	order.Status = next

	refreshOrderMirror(ctx, s.Cache, order)
	return &order, nil
}
