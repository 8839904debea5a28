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

type QualificationHandler struct{}

func NewQualificationHandler() *QualificationHandler {
	return &QualificationHandler{}
}

// Register creates a new qualification
func (h *QualificationHandler) Register(c *gin.Context) {
	type RegisterQualificationRequest struct {
		QualificationName string `json:"qualificationName" binding:"required"`
	}

	var req RegisterQualificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Required fields are missing")
		return
	}

	qualification := models.Qualification{QualificationName: req.QualificationName}
	if err := database.GetDB().Create(&qualification).Error; err != nil {
		log.Error().Err(err).Msg("Failed to create qualification")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Qualification registered"})
}

// List returns all qualifications
func (h *QualificationHandler) List(c *gin.Context) {
	var qualifications []models.Qualification
	if err := database.GetDB().Find(&qualifications).Error; err != nil {
		log.Error().Err(err).Msg("Failed to list qualifications")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, qualifications)
}

// Get returns one qualification
func (h *QualificationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid qualification ID")
		return
	}

	var qualification models.Qualification
	if err := database.GetDB().First(&qualification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Qualification not found")
			return
		}
		log.Error().Err(err).Msg("Failed to find qualification")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, qualification)
}

// Update renames a qualification
func (h *QualificationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid qualification ID")
		return
	}

	type UpdateQualificationRequest struct {
		QualificationName string `json:"qualificationName" binding:"required"`
	}

	var req UpdateQualificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var qualification models.Qualification
	if err := database.GetDB().First(&qualification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Qualification not found")
			return
		}
		log.Error().Err(err).Msg("Failed to find qualification")
		apierrors.InternalError(c, "")
		return
	}

	qualification.QualificationName = req.QualificationName
	if err := database.GetDB().Save(&qualification).Error; err != nil {
		log.Error().Err(err).Msg("Failed to update qualification")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, qualification)
}

// Delete removes a qualification
func (h *QualificationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid qualification ID")
		return
	}

	result := database.GetDB().Delete(&models.Qualification{}, id)
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("Failed to delete qualification")
		apierrors.InternalError(c, "")
		return
	}
	if result.RowsAffected == 0 {
		apierrors.NotFound(c, "Qualification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Qualification deleted"})
}
