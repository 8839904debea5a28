package repository

import (
	"errors"
	"fmt"

	"github.com/shiftcrew/shift-management-api/internal/models"
	"gorm.io/gorm"
)

// GormStaffRepository is a GORM implementation of StaffRepository
type GormStaffRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateProfile is returned when creating the profile fails inside the registration transaction.
	ErrCreateProfile = errors.New("staff repository: create profile failed")
	// ErrCreateAccount is returned when creating the account fails inside the registration transaction.
	ErrCreateAccount = errors.New("staff repository: create account failed")
)

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &GormStaffRepository{db: db}
}

// Register creates the profile, account, emergency contacts, NG list and held
// qualifications in a single transaction.
func (r *GormStaffRepository) Register(profile *models.StaffProfile, account *models.StaffAccount, contacts []models.EmergencyContact, ngStaffIDs []uint64, qualificationIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProfile, err)
		}

		account.StaffID = profile.StaffID
		if err := tx.Create(account).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateAccount, err)
		}

		for i := range contacts {
			contacts[i].StaffProfileID = profile.ID
		}
		if len(contacts) > 0 {
			if err := tx.Create(&contacts).Error; err != nil {
				return err
			}
		}

		for _, ngID := range ngStaffIDs {
			ng := models.NGStaff{StaffProfileID: profile.ID, NGStaffID: ngID}
			if err := tx.Create(&ng).Error; err != nil {
				return err
			}
		}

		for _, qualificationID := range qualificationIDs {
			sq := models.StaffQualification{StaffProfileID: profile.ID, QualificationID: qualificationID}
			if err := tx.Create(&sq).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID finds a staff profile by primary key with optional preloading
func (r *GormStaffRepository) FindByID(id uint64, preload ...string) (*models.StaffProfile, error) {
	var profile models.StaffProfile
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByStaffID finds a staff profile by its staff identifier
func (r *GormStaffRepository) FindByStaffID(staffID string, preload ...string) (*models.StaffProfile, error) {
	var profile models.StaffProfile
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.Where("staff_id = ?", staffID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindAccountByStaffID finds the credential record for a staff identifier
func (r *GormStaffRepository) FindAccountByStaffID(staffID string) (*models.StaffAccount, error) {
	var account models.StaffAccount
	if err := r.db.Where("staff_id = ?", staffID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// List returns all staff profiles with contacts and qualifications
func (r *GormStaffRepository) List() ([]models.StaffProfile, error) {
	var profiles []models.StaffProfile
	if err := r.db.
		Preload("EmergencyContacts").
		Preload("Qualifications.Qualification").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Update updates a staff profile
func (r *GormStaffRepository) Update(profile *models.StaffProfile) error {
	return r.db.Save(profile).Error
}

// Delete removes a profile and every dependent row atomically. The account is
// keyed by staff ID, everything else by profile ID.
func (r *GormStaffRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var profile models.StaffProfile
		if err := tx.First(&profile, id).Error; err != nil {
			return err
		}

		if err := tx.Where("staff_id = ?", profile.StaffID).Delete(&models.StaffAccount{}).Error; err != nil {
			return err
		}
		if err := tx.Where("staff_profile_id = ?", id).Delete(&models.EmergencyContact{}).Error; err != nil {
			return err
		}
		if err := tx.Where("staff_profile_id = ?", id).Delete(&models.NGStaff{}).Error; err != nil {
			return err
		}
		if err := tx.Where("staff_profile_id = ?", id).Delete(&models.StaffQualification{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.StaffProfile{}, id).Error
	})
}
