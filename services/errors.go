package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SANJEEV-1208/caters-backend/models"
)

// The pipeline's failures are distinguishable in code; handlers map
// each one to its own message and status instead of a generic 500.
var (
	// ErrNoSeller: no caterer id could be resolved for the basket.
	// Recoverable locally, no network call is attempted.
	ErrNoSeller = errors.New("no caterer selected for this order")

	// ErrEmptyCart: checkout or validation was asked for an empty basket.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCartCatererMismatch: an item from a different caterer was
	// added to a non-empty basket.
	ErrCartCatererMismatch = errors.New("cart already holds items from another caterer")

	// ErrUPINotAvailable: direct transfer chosen but the caterer has
	// no payment address configured.
	ErrUPINotAvailable = errors.New("online payment is not available for this caterer")

	// ErrMissingTransactionRef: direct transfer chosen without a
	// transaction reference.
	ErrMissingTransactionRef = errors.New("transaction reference is required for online payment")

	// ErrUnknownPaymentMethod: method is neither upi nor cod.
	ErrUnknownPaymentMethod = errors.New("unknown payment method")

	// ErrValidationSuperseded: the checkout's own validation was
	// overtaken by a newer one; the caller should try again.
	ErrValidationSuperseded = errors.New("cart changed while checking out, please retry")

	// ErrOrderNotFound: no order with that id in the store or cache.
	ErrOrderNotFound = errors.New("order not found")

	// ErrNothingReorderable: none of a historical order's items are
	// available today. Terminal for the reorder flow instance.
	ErrNothingReorderable = errors.New("none of the items from this order are available today")
)

// DropError aborts a checkout when re-validation removed lines. The
// caller presents the dropped names and the date label, then returns
// to basket editing; nothing was submitted.
type DropError struct {
	Date    string
	Dropped []models.CartLine
}

func (e *DropError) Error() string {
	names := make([]string, 0, len(e.Dropped))
	for _, l := range e.Dropped {
		names = append(names, l.Name)
	}
	return fmt.Sprintf("not available on %s: %s", e.Date, strings.Join(names, ", "))
}

// TransitionError rejects an illegal status advance.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %q to %q", e.From, e.To)
}

// SubmissionError wraps a failed remote order write. The basket is
// left intact so the user can retry explicitly.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string {
	return "order submission failed: " + e.Cause.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}
