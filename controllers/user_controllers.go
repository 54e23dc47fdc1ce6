package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Register a new customer or caterer account.
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Name           string `json:"name" binding:"required"`
		Email          string `json:"email" binding:"required,email"`
		Password       string `json:"password" binding:"required"`
		Role           string `json:"role" binding:"required"` // customer, caterer
		Phone          string `json:"phone"`
		Address        string `json:"address"`
		PaymentAddress string `json:"payment_address"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Role != models.RoleCustomer && req.Role != models.RoleCaterer {
		utils.RespondError(c, http.StatusBadRequest, errors.New("role must be customer or caterer"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:           req.Name,
		Email:          req.Email,
		Password:       string(hashed),
		Role:           req.Role,
		Phone:          req.Phone,
		Address:        req.Address,
		PaymentAddress: req.PaymentAddress,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)

	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"user_id": user.ID,
	})
}

// Login -> return JWT
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":   token,
		"user_id": user.ID,
		"role":    user.Role,
	})
}

// GetProfile -> the authenticated user's record
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile", user)
}

// GetCaterer -> public caterer profile (name, payment availability)
func (uc *UserController) GetCaterer(c *gin.Context) {
	id := c.Param("caterer_id")

	var caterer models.User
	if err := uc.DB.Where("id = ? AND role = ?", id, models.RoleCaterer).First(&caterer).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("caterer not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Caterer profile", gin.H{
		"id":            caterer.ID,
		"name":          caterer.Name,
		"phone":         caterer.Phone,
		"upi_available": caterer.PaymentAddress != "",
	})
}
