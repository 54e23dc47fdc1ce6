package services

import (
	"strings"

	"github.com/SANJEEV-1208/caters-backend/models"
)

// PaymentRequest is what the customer supplied on the payment screen.
type PaymentRequest struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
	ProofRef      string `json:"proof_ref"`
}

// PaymentResult is a captured, checkout-ready payment.
type PaymentResult struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
	ProofRef      string `json:"proof_ref,omitempty"`
}

// CapturePayment branches on method. Cash needs nothing and gets the
// transaction sentinel. Direct transfer needs the caterer to have a
// payment address and the customer to have supplied a reference from
// their own payment action; the proof image stays optional. All
// rejections happen before any store or network call.
func CapturePayment(req PaymentRequest, catererPaymentAddress string) (PaymentResult, error) {
	switch req.Method {
	case models.PaymentCOD:
		return PaymentResult{
			Method:        models.PaymentCOD,
			TransactionID: models.TxnNone,
			ProofRef:      strings.TrimSpace(req.ProofRef),
		}, nil

	case models.PaymentUPI:
		if strings.TrimSpace(catererPaymentAddress) == "" {
			return PaymentResult{}, ErrUPINotAvailable
		}
		ref := strings.TrimSpace(req.TransactionID)
		if ref == "" {
			return PaymentResult{}, ErrMissingTransactionRef
		}
		return PaymentResult{
			Method:        models.PaymentUPI,
			TransactionID: ref,
			ProofRef:      strings.TrimSpace(req.ProofRef),
		}, nil

	default:
		return PaymentResult{}, ErrUnknownPaymentMethod
	}
}
