package controllers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// CreateTable -> provision a table with a scannable QR payload. The
// QR encodes the scan URL that gives customers the table context for
// on-premise checkout.
func (tc *TableController) CreateTable(c *gin.Context) {
	catererID := c.GetUint("user_id")

	var req struct {
		Number int    `json:"number" binding:"required"`
		Label  string `json:"label" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table := models.Table{
		CatererID: catererID,
		Number:    req.Number,
		Label:     req.Label,
		Active:    true,
	}
	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	payload := fmt.Sprintf("%s/tables/%d/scan", baseURL, table.ID)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	table.QRCode = base64.StdEncoding.EncodeToString(png)
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %s provisioned for caterer %d", table.Label, catererID)
	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}

// GetMyTables -> the caterer's tables
func (tc *TableController) GetMyTables(c *gin.Context) {
	catererID := c.GetUint("user_id")

	var tables []models.Table
	if err := tc.DB.Where("caterer_id = ?", catererID).Order("number asc").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// ScanTable -> public endpoint a QR scan lands on; returns the table
// context used for on-premise checkout
func (tc *TableController) ScanTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}
	if !table.Active {
		utils.RespondError(c, http.StatusGone, errors.New("table is not active"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table context", gin.H{
		"caterer_id":   table.CatererID,
		"table_number": table.Number,
		"label":        table.Label,
	})
}

// SetTableActive -> enable/disable a table's QR
func (tc *TableController) SetTableActive(c *gin.Context) {
	catererID := c.GetUint("user_id")
	tableID := c.Param("table_id")

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.Where("id = ? AND caterer_id = ?", tableID, catererID).First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	table.Active = *req.Active
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}
