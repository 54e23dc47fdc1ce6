package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SANJEEV-1208/caters-backend/models"
)

func TestCapturePaymentCashSubstitutesSentinel(t *testing.T) {
	result, err := CapturePayment(PaymentRequest{Method: models.PaymentCOD}, "")
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentCOD, result.Method)
	assert.Equal(t, models.TxnNone, result.TransactionID)
}

func TestCapturePaymentUPIWithoutPaymentAddress(t *testing.T) {
	_, err := CapturePayment(PaymentRequest{
		Method:        models.PaymentUPI,
		TransactionID: "TXN123",
	}, "")
	assert.ErrorIs(t, err, ErrUPINotAvailable)
}

func TestCapturePaymentUPIRequiresReference(t *testing.T) {
	_, err := CapturePayment(PaymentRequest{Method: models.PaymentUPI}, "caterer@upi")
	assert.ErrorIs(t, err, ErrMissingTransactionRef)

	_, err = CapturePayment(PaymentRequest{
		Method:        models.PaymentUPI,
		TransactionID: "   ",
	}, "caterer@upi")
	assert.ErrorIs(t, err, ErrMissingTransactionRef)
}

func TestCapturePaymentUPIKeepsProofRef(t *testing.T) {
	result, err := CapturePayment(PaymentRequest{
		Method:        models.PaymentUPI,
		TransactionID: " TXN123 ",
		ProofRef:      "proofs/img-42.png",
	}, "caterer@upi")
	assert.NoError(t, err)
	assert.Equal(t, "TXN123", result.TransactionID)
	assert.Equal(t, "proofs/img-42.png", result.ProofRef)
}

func TestCapturePaymentUnknownMethod(t *testing.T) {
	_, err := CapturePayment(PaymentRequest{Method: "card"}, "caterer@upi")
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
}
