package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

// CheckoutRequest is everything the checkout screen hands over.
// ProfileCatererID is the caterer profile currently on screen, the
// lowest-precedence seller source.
type CheckoutRequest struct {
	CustomerID       uint
	ProfileCatererID uint
	DeliveryDate     string
	Payment          PaymentRequest
	DeliveryAddress  string
	TableNumber      *int
}

// CheckoutService assembles a candidate order and submits it exactly
// once. No store write happens before validation passes.
type CheckoutService struct {
	DB        *gorm.DB
	Carts     *CartService
	Index     AvailabilityIndex
	Session   SessionState
	Submitter *OrderSubmitter
}

func NewCheckoutService(db *gorm.DB, carts *CartService, index AvailabilityIndex, session SessionState, submitter *OrderSubmitter) *CheckoutService {
	return &CheckoutService{DB: db, Carts: carts, Index: index, Session: session, Submitter: submitter}
}

// Checkout runs the full placement sequence: resolve the caterer,
// capture payment, pick the effective delivery date, re-validate the
// basket at the moment of submission, then submit. Any dropped line
// aborts with a DropError and returns control to basket editing;
// there is no partial submit. The basket is cleared only after the
// remote write succeeded.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*models.Order, error) {
	lines, err := s.Carts.Lines(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	sessionCaterer, err := s.Session.SelectedCaterer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	resolved, err := ResolveSeller(lines[0].CatererID, sessionCaterer, req.ProfileCatererID)
	if err != nil {
		return nil, err
	}

	var caterer models.User
	if err := s.DB.Where("id = ? AND role = ?", resolved.CatererID, models.RoleCaterer).First(&caterer).Error; err != nil {
		return nil, ErrNoSeller
	}

	payment, err := CapturePayment(req.Payment, caterer.PaymentAddress)
	if err != nil {
		return nil, err
	}

	date := req.DeliveryDate
	if date == "" {
		if date, err = s.Session.DeliveryDate(ctx, req.CustomerID); err != nil {
			return nil, err
		}
	}
	if date == "" {
		date = Today()
	}

	// Defense against staleness between the basket screen and submit.
	result, err := s.Carts.Validate(req.CustomerID, resolved.CatererID, date, s.Index)
	if err != nil {
		return nil, err
	}
	if result.Stale {
		return nil, ErrValidationSuperseded
	}
	if len(result.Dropped) > 0 || len(result.Kept) == 0 {
		return nil, &DropError{Date: date, Dropped: result.Dropped}
	}

	itemCount := 0
	for _, line := range result.Kept {
		itemCount += line.Quantity
	}

	order := models.Order{
		OrderID:         NewOrderID(),
		CustomerID:      req.CustomerID,
		CatererID:       resolved.CatererID,
		Items:           models.SnapshotLines(result.Kept),
		TotalAmount:     models.CartTotal(result.Kept),
		PaymentMethod:   payment.Method,
		TransactionID:   payment.TransactionID,
		ProofRef:        payment.ProofRef,
		DeliveryAddress: req.DeliveryAddress,
		TableNumber:     req.TableNumber,
		ItemCount:       itemCount,
		OrderDate:       Now(),
		DeliveryDate:    date,
		Status:          models.StatusPending,
	}

	submitted, err := s.Submitter.Submit(ctx, order)
	if err != nil {
		// Basket stays intact for an explicit user retry.
		return nil, err
	}

	// The order is placed at this point. A failed basket clear must not
	// surface as a checkout failure, or a retry would duplicate the order.
	if err := s.Carts.Clear(req.CustomerID); err != nil {
		utils.ErrorLogger.Printf("cart clear after submit failed: customer=%d order=%s: %v",
			req.CustomerID, submitted.OrderID, err)
	}
	return submitted, nil
}
