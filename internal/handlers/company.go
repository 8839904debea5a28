package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shiftcrew/shift-management-api/internal/database"
	apierrors "github.com/shiftcrew/shift-management-api/internal/errors"
	"github.com/shiftcrew/shift-management-api/internal/models"
	"gorm.io/gorm"
)

type CompanyHandler struct{}

func NewCompanyHandler() *CompanyHandler {
	return &CompanyHandler{}
}

// Register creates a new company
func (h *CompanyHandler) Register(c *gin.Context) {
	type RegisterCompanyRequest struct {
		CompanyName string `json:"companyName" binding:"required"`
		Address     string `json:"address" binding:"required"`
		Postcode    string `json:"postcode" binding:"required"`
		PhoneNumber string `json:"phonenumber" binding:"required"`
		Email       string `json:"email" binding:"required"`
	}

	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Required fields are missing")
		return
	}

	company := models.Company{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		Postcode:    req.Postcode,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}

	if err := database.GetDB().Create(&company).Error; err != nil {
		log.Error().Err(err).Msg("Failed to create company")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Company registered"})
}

// List returns all companies
func (h *CompanyHandler) List(c *gin.Context) {
	var companies []models.Company
	if err := database.GetDB().Find(&companies).Error; err != nil {
		log.Error().Err(err).Msg("Failed to list companies")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, companies)
}

// Get returns one company
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid company ID")
		return
	}

	var company models.Company
	if err := database.GetDB().First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Company not found")
			return
		}
		log.Error().Err(err).Msg("Failed to find company")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, company)
}

// Update overwrites a company's fields
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid company ID")
		return
	}

	type UpdateCompanyRequest struct {
		CompanyName string `json:"companyName" binding:"required"`
		Address     string `json:"address"`
		Postcode    string `json:"postcode"`
		PhoneNumber string `json:"phonenumber"`
		Email       string `json:"email"`
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var company models.Company
	if err := database.GetDB().First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Company not found")
			return
		}
		log.Error().Err(err).Msg("Failed to find company")
		apierrors.InternalError(c, "")
		return
	}

	company.CompanyName = req.CompanyName
	company.Address = req.Address
	company.Postcode = req.Postcode
	company.PhoneNumber = req.PhoneNumber
	company.Email = req.Email

	if err := database.GetDB().Save(&company).Error; err != nil {
		log.Error().Err(err).Msg("Failed to update company")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, company)
}

// Delete removes a company
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid company ID")
		return
	}

	result := database.GetDB().Delete(&models.Company{}, id)
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("Failed to delete company")
		apierrors.InternalError(c, "")
		return
	}
	if result.RowsAffected == 0 {
		apierrors.NotFound(c, "Company not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}
