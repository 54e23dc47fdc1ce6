package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/services"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

type CartController struct {
	DB      *gorm.DB
	Carts   *services.CartService
	Index   services.AvailabilityIndex
	Session services.SessionState
}

func NewCartController(db *gorm.DB, carts *services.CartService, index services.AvailabilityIndex, session services.SessionState) *CartController {
	return &CartController{DB: db, Carts: carts, Index: index, Session: session}
}

// GetCart -> lines plus running total
func (cc *CartController) GetCart(c *gin.Context) {
	customerID := c.GetUint("user_id")

	lines, err := cc.Carts.Lines(customerID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart", gin.H{
		"lines": lines,
		"total": models.CartTotal(lines),
	})
}

// AddItem -> add one unit of a menu item (quantity starts at 1, or
// increments if the line already exists)
func (cc *CartController) AddItem(c *gin.Context) {
	customerID := c.GetUint("user_id")

	var req struct {
		ItemID uint `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.MenuItem
	if err := cc.DB.First(&item, req.ItemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	line, err := cc.Carts.AddItem(customerID, item)
	if err == services.ErrCartCatererMismatch {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item added", line)
}

// DecrementItem -> quantity-1; the line disappears below 1
func (cc *CartController) DecrementItem(c *gin.Context) {
	customerID := c.GetUint("user_id")
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	if err := cc.Carts.Decrement(customerID, uint(itemID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.RespondError(c, http.StatusNotFound, errors.New("item not in cart"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item decremented", nil)
}

// RemoveItem -> explicit removal regardless of quantity
func (cc *CartController) RemoveItem(c *gin.Context) {
	customerID := c.GetUint("user_id")
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	if err := cc.Carts.Remove(customerID, uint(itemID)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed", nil)
}

// ClearCart
func (cc *CartController) ClearCart(c *gin.Context) {
	customerID := c.GetUint("user_id")
	if err := cc.Carts.Clear(customerID); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}

// ValidateCart -> partition the basket against availability for a
// date. Called on basket load and on every date change; dropped names
// are reported with the date label, never discarded silently.
func (cc *CartController) ValidateCart(c *gin.Context) {
	customerID := c.GetUint("user_id")

	date := c.Query("date")
	if date == "" {
		date = services.Today()
	}
	if !services.ValidDate(date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date must be YYYY-MM-DD"))
		return
	}

	lines, err := cc.Carts.Lines(customerID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(lines) == 0 {
		utils.RespondError(c, http.StatusBadRequest, services.ErrEmptyCart)
		return
	}

	sessionCaterer, _ := cc.Session.SelectedCaterer(c.Request.Context(), customerID)
	resolved, err := services.ResolveSeller(lines[0].CatererID, sessionCaterer, 0)
	if err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	result, err := cc.Carts.Validate(customerID, resolved.CatererID, date, cc.Index)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if result.Stale {
		utils.RespondJSON(c, http.StatusOK, "Validation superseded", result)
		return
	}

	message := "Cart validated"
	if len(result.Dropped) > 0 {
		message = "Some items are not available on " + date
	}
	utils.RespondJSON(c, http.StatusOK, message, result)
}
