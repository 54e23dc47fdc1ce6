package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/services"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

type MenuController struct {
	DB    *gorm.DB
	Index services.AvailabilityIndex
}

func NewMenuController(db *gorm.DB, index services.AvailabilityIndex) *MenuController {
	return &MenuController{DB: db, Index: index}
}

// CreateMenuItem -> caterer adds an item with its orderable dates
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	catererID := c.GetUint("user_id")

	var req struct {
		Name        string   `json:"name" binding:"required"`
		Price       float64  `json:"price" binding:"required,gt=0"`
		Category    string   `json:"category"`
		Cuisine     string   `json:"cuisine"`
		FoodType    string   `json:"food_type"`
		Dates       []string `json:"dates"`
		Description string   `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	for _, d := range req.Dates {
		if !services.ValidDate(d) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("dates must be YYYY-MM-DD"))
			return
		}
	}

	item := models.MenuItem{
		CatererID:   catererID,
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Cuisine:     req.Cuisine,
		FoodType:    req.FoodType,
		Dates:       models.DateList(req.Dates),
		OnHand:      true,
		Description: req.Description,
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (caterer=%d)", item.Name, catererID)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem -> edit fields, dates or the on-hand flag
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	catererID := c.GetUint("user_id")
	itemID := c.Param("item_id")

	var item models.MenuItem
	if err := mc.DB.Where("id = ? AND caterer_id = ?", itemID, catererID).First(&item).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name        *string   `json:"name"`
		Price       *float64  `json:"price"`
		Category    *string   `json:"category"`
		Cuisine     *string   `json:"cuisine"`
		FoodType    *string   `json:"food_type"`
		Dates       *[]string `json:"dates"`
		OnHand      *bool     `json:"on_hand"`
		Description *string   `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Cuisine != nil {
		item.Cuisine = *req.Cuisine
	}
	if req.FoodType != nil {
		item.FoodType = *req.FoodType
	}
	if req.Dates != nil {
		for _, d := range *req.Dates {
			if !services.ValidDate(d) {
				utils.RespondError(c, http.StatusBadRequest, errors.New("dates must be YYYY-MM-DD"))
				return
			}
		}
		item.Dates = models.DateList(*req.Dates)
	}
	if req.OnHand != nil {
		item.OnHand = *req.OnHand
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	catererID := c.GetUint("user_id")
	itemID := c.Param("item_id")

	res := mc.DB.Where("id = ? AND caterer_id = ?", itemID, catererID).Delete(&models.MenuItem{})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": itemID})
}

// GetCatererMenu -> full menu of one caterer (public browse)
func (mc *MenuController) GetCatererMenu(c *gin.Context) {
	catererID := c.Param("caterer_id")

	var items []models.MenuItem
	if err := mc.DB.Where("caterer_id = ?", catererID).Order("category asc, name asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Caterer menu", items)
}

// GetMyMenu -> the authenticated caterer's own items
func (mc *MenuController) GetMyMenu(c *gin.Context) {
	catererID := c.GetUint("user_id")

	var items []models.MenuItem
	if err := mc.DB.Where("caterer_id = ?", catererID).Order("created_at desc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "My menu", items)
}

// GetAvailability -> purchasable item ids of a caterer on a date.
// Defaults to today in the ordering time zone.
func (mc *MenuController) GetAvailability(c *gin.Context) {
	catererID := c.Param("caterer_id")
	date := c.Query("date")
	if date == "" {
		date = services.Today()
	}
	if !services.ValidDate(date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date must be YYYY-MM-DD"))
		return
	}

	var caterer models.User
	if err := mc.DB.Where("id = ? AND role = ?", catererID, models.RoleCaterer).First(&caterer).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("caterer not found"))
		return
	}

	available, err := mc.Index.AvailableItems(caterer.ID, date)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	ids := make([]uint, 0, len(available))
	for id := range available {
		ids = append(ids, id)
	}

	utils.RespondJSON(c, http.StatusOK, "Available items", gin.H{
		"date":     date,
		"item_ids": ids,
	})
}
