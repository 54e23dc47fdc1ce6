package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SANJEEV-1208/caters-backend/models"
)

func createOrder(t *testing.T, svc *StatusService, status string, tableNumber *int) models.Order {
	t.Helper()
	order := models.Order{
		OrderID:       NewOrderID(),
		CustomerID:    1,
		CatererID:     7,
		TotalAmount:   120,
		PaymentMethod: models.PaymentCOD,
		TransactionID: models.TxnNone,
		TableNumber:   tableNumber,
		ItemCount:     1,
		OrderDate:     Now(),
		Status:        status,
	}
	assert.NoError(t, svc.DB.Create(&order).Error)
	return order
}

// The delivery lifecycle, enumerated straight from the transition
// table: advance succeeds iff (current, next) is in the allow-list.
func TestAdvanceFollowsDeliveryTable(t *testing.T) {
	db := setupTestDB()
	svc := NewStatusService(db, nil)

	statuses := []string{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
		models.StatusCancelled,
	}
	table := AllowedTransitions(false)

	for _, from := range statuses {
		allowed := map[string]bool{}
		for _, next := range table[from] {
			allowed[next] = true
		}
		for _, to := range statuses {
			order := createOrder(t, svc, from, nil)
			updated, err := svc.Advance(context.Background(), order.OrderID, to)
			if allowed[to] {
				assert.NoError(t, err, "%s -> %s should be allowed", from, to)
				assert.Equal(t, to, updated.Status)
			} else {
				var trErr *TransitionError
				assert.ErrorAs(t, err, &trErr, "%s -> %s should be rejected", from, to)
				assert.Equal(t, from, trErr.From)
				assert.Equal(t, to, trErr.To)
			}
		}
	}
}

func TestAdvanceRejectsSkippingStates(t *testing.T) {
	db := setupTestDB()
	svc := NewStatusService(db, nil)
	order := createOrder(t, svc, models.StatusPending, nil)

	_, err := svc.Advance(context.Background(), order.OrderID, models.StatusOutForDelivery)
	var trErr *TransitionError
	assert.ErrorAs(t, err, &trErr)
	assert.Equal(t, models.StatusPending, trErr.From)
	assert.Equal(t, models.StatusOutForDelivery, trErr.To)
}

// On-premise orders have no delivery leg: preparing goes straight to
// delivered and out_for_delivery is never legal.
func TestAdvanceOnPremiseSkipsDeliveryLeg(t *testing.T) {
	db := setupTestDB()
	svc := NewStatusService(db, nil)
	tableNo := 4

	order := createOrder(t, svc, models.StatusPreparing, &tableNo)
	_, err := svc.Advance(context.Background(), order.OrderID, models.StatusOutForDelivery)
	var trErr *TransitionError
	assert.ErrorAs(t, err, &trErr)

	updated, err := svc.Advance(context.Background(), order.OrderID, models.StatusDelivered)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, updated.Status)
}

func TestAdvanceCancelFromAnyNonTerminal(t *testing.T) {
	db := setupTestDB()
	svc := NewStatusService(db, nil)

	for _, from := range []string{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusOutForDelivery,
	} {
		order := createOrder(t, svc, from, nil)
		updated, err := svc.Advance(context.Background(), order.OrderID, models.StatusCancelled)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, updated.Status)
	}

	// Terminal states stay terminal.
	for _, from := range []string{models.StatusDelivered, models.StatusCancelled} {
		order := createOrder(t, svc, from, nil)
		_, err := svc.Advance(context.Background(), order.OrderID, models.StatusCancelled)
		var trErr *TransitionError
		assert.ErrorAs(t, err, &trErr)
	}
}

func TestAdvanceUnknownOrder(t *testing.T) {
	db := setupTestDB()
	svc := NewStatusService(db, nil)

	_, err := svc.Advance(context.Background(), "ORD-missing", models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAdvanceRefreshesCacheMirror(t *testing.T) {
	db := setupTestDB()
	cache := NewMemoryOrderCache()
	svc := NewStatusService(db, cache)
	order := createOrder(t, svc, models.StatusPending, nil)

	_, err := svc.Advance(context.Background(), order.OrderID, models.StatusConfirmed)
	assert.NoError(t, err)

	mirrored, err := cache.Get(context.Background(), order.OrderID)
	assert.NoError(t, err)
	assert.NotNil(t, mirrored)
	assert.Equal(t, models.StatusConfirmed, mirrored.Status)
}
