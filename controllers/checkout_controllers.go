package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SANJEEV-1208/caters-backend/events"
	"github.com/SANJEEV-1208/caters-backend/services"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
	Session  services.SessionState
}

func NewCheckoutController(checkout *services.CheckoutService, session services.SessionState) *CheckoutController {
	return &CheckoutController{Checkout: checkout, Session: session}
}

// SelectCaterer -> session-scoped caterer selection
func (cc *CheckoutController) SelectCaterer(c *gin.Context) {
	customerID := c.GetUint("user_id")

	var req struct {
		CatererID uint `json:"caterer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Session.SetSelectedCaterer(c.Request.Context(), customerID, req.CatererID); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Caterer selected", gin.H{"caterer_id": req.CatererID})
}

// SetDeliveryDate -> session-scoped default delivery date
func (cc *CheckoutController) SetDeliveryDate(c *gin.Context) {
	customerID := c.GetUint("user_id")

	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !services.ValidDate(req.Date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date must be YYYY-MM-DD"))
		return
	}

	if err := cc.Session.SetDeliveryDate(c.Request.Context(), customerID, req.Date); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery date set", gin.H{"date": req.Date})
}

// PlaceOrder -> the whole checkout sequence. Every failure in the
// pipeline taxonomy maps to its own status and message so clients can
// react specifically.
func (cc *CheckoutController) PlaceOrder(c *gin.Context) {
	customerID := c.GetUint("user_id")

	var req struct {
		CatererID       uint                    `json:"caterer_id"` // profile on screen, lowest precedence
		DeliveryDate    string                  `json:"delivery_date"`
		Payment         services.PaymentRequest `json:"payment"`
		DeliveryAddress string                  `json:"delivery_address"`
		TableNumber     *int                    `json:"table_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.DeliveryDate != "" && !services.ValidDate(req.DeliveryDate) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("delivery_date must be YYYY-MM-DD"))
		return
	}

	order, err := cc.Checkout.Checkout(c.Request.Context(), services.CheckoutRequest{
		CustomerID:       customerID,
		ProfileCatererID: req.CatererID,
		DeliveryDate:     req.DeliveryDate,
		Payment:          req.Payment,
		DeliveryAddress:  req.DeliveryAddress,
		TableNumber:      req.TableNumber,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	events.BroadcastOrderCreated(*order)
	utils.InfoLogger.Printf("Order %s placed: customer=%d caterer=%d total=%s",
		order.OrderID, order.CustomerID, order.CatererID, utils.FormatCurrencyINR(order.TotalAmount))
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

func respondCheckoutError(c *gin.Context, err error) {
	var dropErr *services.DropError
	var subErr *services.SubmissionError

	switch {
	case errors.Is(err, services.ErrEmptyCart):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrNoSeller):
		// Locally recoverable: client returns to caterer selection.
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrUPINotAvailable),
		errors.Is(err, services.ErrMissingTransactionRef),
		errors.Is(err, services.ErrUnknownPaymentMethod):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, services.ErrValidationSuperseded):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.As(err, &dropErr):
		// Submission aborted; client re-presents the basket.
		utils.RespondError(c, http.StatusConflict, dropErr)
	case errors.As(err, &subErr):
		// Basket preserved; explicit user retry only.
		utils.RespondError(c, http.StatusBadGateway, subErr)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
