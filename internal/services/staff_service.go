package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shiftcrew/shift-management-api/internal/models"
	"github.com/shiftcrew/shift-management-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrStaffIDRequired      = errors.New("staff ID is required")
	ErrPasswordRequired     = errors.New("password is required")
	ErrNameRequired         = errors.New("full name is required")
	ErrStaffIDTaken         = errors.New("staff ID already registered")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// StaffService handles staff registration and profile management.
type StaffService struct {
	staffRepo repository.StaffRepository
}

// NewStaffService creates a new StaffService.
func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// EmergencyContactInput is one emergency contact submitted at registration.
type EmergencyContactInput struct {
	Name         string
	Relationship string
	PhoneNumber  string
}

// RegisterStaffInput carries everything needed to register a staff member.
type RegisterStaffInput struct {
	StaffID             string
	Password            string
	FullName            string
	FullNameRoman       string
	Address             string
	Postcode            string
	PhoneNumber         string
	Email               string
	Birthday            time.Time
	HireDate            time.Time
	Role                string
	EmergencyContacts   []EmergencyContactInput
	NGStaff             []uint64
	StaffQualifications []uint64
}

// Register creates the profile, account and dependent rows.
func (s *StaffService) Register(input RegisterStaffInput) (*models.StaffProfile, error) {
	if strings.TrimSpace(input.StaffID) == "" {
		return nil, ErrStaffIDRequired
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}
	if strings.TrimSpace(input.FullName) == "" {
		return nil, ErrNameRequired
	}

	if _, err := s.staffRepo.FindByStaffID(input.StaffID); err == nil {
		return nil, ErrStaffIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check staff ID: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	profile := &models.StaffProfile{
		StaffID:     input.StaffID,
		Name:        input.FullName,
		RomanName:   input.FullNameRoman,
		Address:     input.Address,
		Postcode:    input.Postcode,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Birthday:    input.Birthday,
		HireDate:    input.HireDate,
		Role:        input.Role,
	}
	account := &models.StaffAccount{
		StaffID:  input.StaffID,
		Password: string(hashedPassword),
	}

	contacts := make([]models.EmergencyContact, len(input.EmergencyContacts))
	for i, contact := range input.EmergencyContacts {
		contacts[i] = models.EmergencyContact{
			NameOfEmergency: contact.Name,
			Relationship:    contact.Relationship,
			PhoneNumber:     contact.PhoneNumber,
		}
	}

	if err := s.staffRepo.Register(profile, account, contacts, input.NGStaff, input.StaffQualifications); err != nil {
		return nil, fmt.Errorf("failed to register staff: %w", err)
	}

	return profile, nil
}

// List returns all staff profiles with contacts and qualifications.
func (s *StaffService) List() ([]models.StaffProfile, error) {
	profiles, err := s.staffRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return profiles, nil
}

// Get returns one staff profile with contacts and qualifications.
func (s *StaffService) Get(id uint64) (*models.StaffProfile, error) {
	profile, err := s.staffRepo.FindByID(id, "EmergencyContacts", "Qualifications.Qualification")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}
	return profile, nil
}

// GetProfileByStaffID returns the profile owned by a staff identifier,
// including contacts and qualifications.
func (s *StaffService) GetProfileByStaffID(staffID string) (*models.StaffProfile, error) {
	profile, err := s.staffRepo.FindByStaffID(staffID, "EmergencyContacts", "Qualifications.Qualification")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}
	return profile, nil
}

// UpdateStaffInput carries the mutable profile fields.
type UpdateStaffInput struct {
	StaffID     string
	Name        string
	RomanName   string
	Address     string
	Postcode    string
	PhoneNumber string
	Email       string
	Birthday    time.Time
	HireDate    time.Time
}

// Update overwrites the profile fields of an existing staff member.
func (s *StaffService) Update(id uint64, input UpdateStaffInput) (*models.StaffProfile, error) {
	profile, err := s.staffRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}

	profile.StaffID = input.StaffID
	profile.Name = input.Name
	profile.RomanName = input.RomanName
	profile.Address = input.Address
	profile.Postcode = input.Postcode
	profile.PhoneNumber = input.PhoneNumber
	profile.Email = input.Email
	profile.Birthday = input.Birthday
	profile.HireDate = input.HireDate

	if err := s.staffRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}
	return profile, nil
}

// Delete removes a staff member and every dependent record.
func (s *StaffService) Delete(id uint64) error {
	if err := s.staffRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	return nil
}
