package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/events"
	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/services"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

type OrderController struct {
	DB      *gorm.DB
	Cache   services.OrderCache
	Status  *services.StatusService
	Reorder *services.ReorderService
}

func NewOrderController(db *gorm.DB, cache services.OrderCache, status *services.StatusService, reorder *services.ReorderService) *OrderController {
	return &OrderController{DB: db, Cache: cache, Status: status, Reorder: reorder}
}

// GetMyOrders -> customer order history, store merged with the
// fallback cache. The store wins on conflicts.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	customerID := c.GetUint("user_id")

	var orders []models.Order
	if err := oc.DB.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("order_date desc").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		seen[o.OrderID] = true
	}
	if oc.Cache != nil {
		cached, err := oc.Cache.ByCustomer(c.Request.Context(), customerID)
		if err != nil {
			utils.ErrorLogger.Printf("order cache read failed: %v", err)
		}
		for _, o := range cached {
			if !seen[o.OrderID] {
				orders = append(orders, o)
			}
		}
	}

	utils.RespondJSON(c, http.StatusOK, "My orders", orders)
}

// GetOrderByID -> one order by its client-generated identifier
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	customerID := c.GetUint("user_id")
	orderID := c.Param("order_id")

	var order models.Order
	err := oc.DB.Preload("Items").
		Where("order_id = ? AND customer_id = ?", orderID, customerID).
		First(&order).Error
	if err == gorm.ErrRecordNotFound && oc.Cache != nil {
		cached, cerr := oc.Cache.Get(c.Request.Context(), orderID)
		if cerr == nil && cached != nil && cached.CustomerID == customerID {
			utils.RespondJSON(c, http.StatusOK, "Order detail", cached)
			return
		}
		err = gorm.ErrRecordNotFound
	}
	if err == gorm.ErrRecordNotFound {
		utils.RespondError(c, http.StatusNotFound, services.ErrOrderNotFound)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// ReorderOrder -> rebuild the basket from a past order, validated
// against today
func (oc *OrderController) ReorderOrder(c *gin.Context) {
	customerID := c.GetUint("user_id")
	orderID := c.Param("order_id")

	result, err := oc.Reorder.Reorder(c.Request.Context(), customerID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrNothingReorderable):
			// Basket state was cleared; client navigates away.
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	message := "Order restored to cart"
	if result.DroppedCount > 0 {
		message = "Order partially restored to cart"
	}
	utils.RespondJSON(c, http.StatusOK, message, result)
}

// GetIncomingOrders -> caterer's incoming orders, optionally filtered
// by status
func (oc *OrderController) GetIncomingOrders(c *gin.Context) {
	catererID := c.GetUint("user_id")

	q := oc.DB.Preload("Items").Where("caterer_id = ?", catererID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	if err := q.Order("order_date desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Incoming orders", orders)
}

// AdvanceStatus -> caterer moves an order along the lifecycle. An
// illegal target is a typed rejection, surfaced as-is.
func (oc *OrderController) AdvanceStatus(c *gin.Context) {
	catererID := c.GetUint("user_id")
	orderID := c.Param("order_id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Ownership check before touching the lifecycle.
	var order models.Order
	if err := oc.DB.Where("order_id = ? AND caterer_id = ?", orderID, catererID).First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrOrderNotFound)
		return
	}

	updated, err := oc.Status.Advance(c.Request.Context(), orderID, req.Status)
	if err != nil {
		var trErr *services.TransitionError
		switch {
		case errors.As(err, &trErr):
			utils.RespondError(c, http.StatusUnprocessableEntity, trErr)
		case errors.Is(err, services.ErrOrderNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	events.BroadcastOrderStatus(*updated)
	utils.InfoLogger.Printf("Order %s advanced to %s", updated.OrderID, updated.Status)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", updated)
}
