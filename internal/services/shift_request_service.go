package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shiftcrew/shift-management-api/internal/models"
	"github.com/shiftcrew/shift-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrShiftRequestNotFound = errors.New("shift request not found")
	ErrNotRequestOwner      = errors.New("shift request belongs to another staff member")
	ErrDateMismatch         = errors.New("selected date does not match the project's work date")
	ErrRequestFieldsMissing = errors.New("date and request type are required")
)

// ShiftRequestService validates and records staff-submitted shift and leave
// requests.
type ShiftRequestService struct {
	requestRepo repository.ShiftRequestRepository
	projectRepo repository.ProjectRepository
	staffRepo   repository.StaffRepository
}

// NewShiftRequestService creates a new ShiftRequestService.
func NewShiftRequestService(requestRepo repository.ShiftRequestRepository, projectRepo repository.ProjectRepository, staffRepo repository.StaffRepository) *ShiftRequestService {
	return &ShiftRequestService{
		requestRepo: requestRepo,
		projectRepo: projectRepo,
		staffRepo:   staffRepo,
	}
}

// SubmitInput carries a staff member's shift or leave request.
type SubmitInput struct {
	Date                 time.Time
	RequestType          models.ShiftRequestType
	Memo                 string
	ProjectDescriptionID *uint64
}

// Submit validates and stores one request. A SHIFT request tied to a project
// slot must name a date equal to the slot's work date at day granularity.
func (s *ShiftRequestService) Submit(staffID string, input SubmitInput) (*models.ShiftRequest, error) {
	profile, err := s.staffRepo.FindByStaffID(staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff profile: %w", err)
	}

	if input.Date.IsZero() || input.RequestType == "" {
		return nil, ErrRequestFieldsMissing
	}

	if input.RequestType == models.ShiftRequestShift && input.ProjectDescriptionID != nil {
		desc, err := s.projectRepo.FindDescription(*input.ProjectDescriptionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProjectDetailNotFound
			}
			return nil, fmt.Errorf("failed to find project slot: %w", err)
		}

		if !sameDay(desc.WorkDate, input.Date) {
			return nil, ErrDateMismatch
		}
	}

	request := &models.ShiftRequest{
		StaffProfileID:       profile.ID,
		Date:                 input.Date,
		RequestType:          input.RequestType,
		Memo:                 input.Memo,
		ProjectDescriptionID: input.ProjectDescriptionID,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create shift request: %w", err)
	}
	return request, nil
}

func sameDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Delete removes a request, but only for its owner.
func (s *ShiftRequestService) Delete(id uint64, staffID string) error {
	profile, err := s.staffRepo.FindByStaffID(staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to find staff profile: %w", err)
	}

	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShiftRequestNotFound
		}
		return fmt.Errorf("failed to find shift request: %w", err)
	}

	if request.StaffProfileID != profile.ID {
		return ErrNotRequestOwner
	}

	if err := s.requestRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift request: %w", err)
	}
	return nil
}
