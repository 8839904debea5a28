package services

import (
	"errors"
	"fmt"

	"github.com/shiftcrew/shift-management-api/internal/models"
	"github.com/shiftcrew/shift-management-api/internal/repository"
	"gorm.io/gorm"
)

var ErrEmptyRosterUpdate = errors.New("roster update contains no slots")

// RosterService assigns staff to project slots and reconciles bulk roster
// updates, cascading attendance creation and deletion.
type RosterService struct {
	rosterRepo repository.RosterRepository
	staffRepo  repository.StaffRepository
}

// NewRosterService creates a new RosterService.
func NewRosterService(rosterRepo repository.RosterRepository, staffRepo repository.StaffRepository) *RosterService {
	return &RosterService{
		rosterRepo: rosterRepo,
		staffRepo:  staffRepo,
	}
}

// Assign adds one staff profile to a slot, creating the companion attendance
// record in its initial state.
func (s *RosterService) Assign(staffProfileID, projectDescriptionID uint64) (*models.ProjectMember, error) {
	member, err := s.rosterRepo.Assign(staffProfileID, projectDescriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign project member: %w", err)
	}
	return member, nil
}

// Reconcile applies the full desired roster for every slot in the request.
// Each slot's desired staff list replaces its existing roster; the diff is
// computed both ways and only the differences are written. Partial failure
// rolls back the whole request.
func (s *RosterService) Reconcile(desired map[uint64][]uint64) error {
	if len(desired) == 0 {
		return ErrEmptyRosterUpdate
	}
	if err := s.rosterRepo.Reconcile(desired); err != nil {
		return fmt.Errorf("failed to reconcile roster: %w", err)
	}
	return nil
}

// AssignedShifts returns the caller's roster entries with slot, project and
// attendance detail.
func (s *RosterService) AssignedShifts(staffID string) ([]models.ProjectMember, error) {
	profile, err := s.staffRepo.FindByStaffID(staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff profile: %w", err)
	}

	members, err := s.rosterRepo.ListByStaffProfile(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned shifts: %w", err)
	}
	return members, nil
}
