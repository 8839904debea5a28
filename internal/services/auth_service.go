package services

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/shiftcrew/shift-management-api/internal/models"
	"github.com/shiftcrew/shift-management-api/internal/repository"
	"github.com/shiftcrew/shift-management-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid staff ID or password")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrFailedToSignToken  = errors.New("failed to sign token")
)

// AuthService handles credential verification and token issuance.
type AuthService struct {
	staffRepo     repository.StaffRepository
	jwtSecret     string
	adminID       string
	adminPassword string
}

// NewAuthService creates a new AuthService.
func NewAuthService(staffRepo repository.StaffRepository, jwtSecret, adminID, adminPassword string) *AuthService {
	return &AuthService{
		staffRepo:     staffRepo,
		jwtSecret:     jwtSecret,
		adminID:       adminID,
		adminPassword: adminPassword,
	}
}

// Login verifies staff credentials and issues a bearer token. Unknown staff
// IDs and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(staffID, password string) (string, error) {
	account, err := s.staffRepo.FindAccountByStaffID(staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateStaffToken(s.jwtSecret, account.StaffID)
	if err != nil {
		return "", ErrFailedToSignToken
	}
	return token, nil
}

// AdminLogin compares against the fixed out-of-band admin credentials and
// issues a role-bearing token.
func (s *AuthService) AdminLogin(id, password string) (string, error) {
	if s.adminPassword == "" {
		return "", ErrInvalidCredentials
	}
	idOK := subtle.ConstantTimeCompare([]byte(id), []byte(s.adminID)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !idOK || !passOK {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminToken(s.jwtSecret)
	if err != nil {
		return "", ErrFailedToSignToken
	}
	return token, nil
}

// GetStaff retrieves the profile behind an authenticated staff ID.
func (s *AuthService) GetStaff(staffID string) (*models.StaffProfile, error) {
	profile, err := s.staffRepo.FindByStaffID(staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff profile: %w", err)
	}
	return profile, nil
}

// AdminID exposes the configured admin identifier for the admin identity endpoint.
func (s *AuthService) AdminID() string {
	return s.adminID
}
