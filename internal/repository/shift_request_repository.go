package repository

import (
	"github.com/shiftcrew/shift-management-api/internal/models"
	"gorm.io/gorm"
)

// GormShiftRequestRepository is a GORM implementation of ShiftRequestRepository
type GormShiftRequestRepository struct {
	db *gorm.DB
}

// NewShiftRequestRepository creates a new ShiftRequestRepository
func NewShiftRequestRepository(db *gorm.DB) ShiftRequestRepository {
	return &GormShiftRequestRepository{db: db}
}

// Create creates a new shift request
func (r *GormShiftRequestRepository) Create(request *models.ShiftRequest) error {
	return r.db.Create(request).Error
}

// FindByID finds a shift request by ID
func (r *GormShiftRequestRepository) FindByID(id uint64) (*models.ShiftRequest, error) {
	var request models.ShiftRequest
	if err := r.db.First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ListByStaffProfile returns the requests owned by a staff profile
func (r *GormShiftRequestRepository) ListByStaffProfile(staffProfileID uint64) ([]models.ShiftRequest, error) {
	var requests []models.ShiftRequest
	if err := r.db.
		Where("staff_profile_id = ?", staffProfileID).
		Order("date ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Delete removes a shift request
func (r *GormShiftRequestRepository) Delete(id uint64) error {
	return r.db.Delete(&models.ShiftRequest{}, id).Error
}
