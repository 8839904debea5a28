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
	ErrProjectNotFound          = errors.New("project not found")
	ErrProjectDetailNotFound    = errors.New("project detail not found")
	ErrInvalidProjectType       = errors.New("invalid project type")
	ErrExistingProjectIDMissing = errors.New("existing project ID is required")
	ErrRequirementMismatch      = errors.New("qualification IDs and headcounts must have the same length")
)

// Project types accepted by registration.
const (
	ProjectTypeNew      = "new"
	ProjectTypeExisting = "existing"
)

// ProjectService handles project and slot business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// RegisterProjectInput carries a slot plus either a new project's fields or
// the ID of the project the slot extends.
type RegisterProjectInput struct {
	ProjectType            string
	ProjectName            string
	CompanyID              uint64
	ExistingProjectID      uint64
	WorkDate               time.Time
	StartTime              time.Time
	EndTime                time.Time
	Address                string
	Postcode               string
	PhoneNumber            string
	ManagerName            string
	RequiredMembers        int
	UnitPrice              int
	UnitPriceType          string
	Memo                   string
	SelectedQualifications []uint64
	QualifiedMembersNeeded []int
}

// Register creates a new project with its first slot, or appends a slot to an
// existing project.
func (s *ProjectService) Register(input RegisterProjectInput) error {
	if len(input.SelectedQualifications) != len(input.QualifiedMembersNeeded) {
		return ErrRequirementMismatch
	}

	desc := &models.ProjectDescription{
		WorkDate:        input.WorkDate,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Address:         input.Address,
		Postcode:        input.Postcode,
		PhoneNumber:     input.PhoneNumber,
		ManagerName:     input.ManagerName,
		RequiredMembers: input.RequiredMembers,
		UnitPrice:       input.UnitPrice,
		WorkTimeType:    input.UnitPriceType,
		Memo:            input.Memo,
	}

	requirements := make([]models.ProjectQualification, len(input.SelectedQualifications))
	for i, qualificationID := range input.SelectedQualifications {
		requirements[i] = models.ProjectQualification{
			QualificationID:       qualificationID,
			NumberOfMembersNeeded: input.QualifiedMembersNeeded[i],
		}
	}

	switch input.ProjectType {
	case ProjectTypeNew:
		project := &models.Project{
			ProjectName: input.ProjectName,
			CompanyID:   input.CompanyID,
		}
		if err := s.projectRepo.CreateWithDescription(project, desc, requirements); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		return nil
	case ProjectTypeExisting:
		if input.ExistingProjectID == 0 {
			return ErrExistingProjectIDMissing
		}
		if err := s.projectRepo.AddDescription(input.ExistingProjectID, desc, requirements); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return fmt.Errorf("failed to add project detail: %w", err)
		}
		return nil
	default:
		return ErrInvalidProjectType
	}
}

// ListAll returns every project with company and slots.
func (s *ProjectService) ListAll() ([]models.Project, error) {
	projects, err := s.projectRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListByMonth returns projects with at least one slot in the given month.
func (s *ProjectService) ListByMonth(year int, month time.Month) ([]models.Project, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	projects, err := s.projectRepo.ListByWindow(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetDetail returns one project restricted to one slot.
func (s *ProjectService) GetDetail(projectID, descriptionID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindDetail(projectID, descriptionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectDetailNotFound
		}
		return nil, fmt.Errorf("failed to find project detail: %w", err)
	}
	return project, nil
}

// UpdateDetailInput carries the project and slot fields of a detail update.
type UpdateDetailInput struct {
	ProjectName            string
	CompanyID              uint64
	WorkDate               time.Time
	StartTime              time.Time
	EndTime                time.Time
	Address                string
	Postcode               string
	PhoneNumber            string
	ManagerName            string
	RequiredMembers        int
	UnitPrice              int
	UnitPriceType          string
	Memo                   string
	SelectedQualifications []uint64
	QualifiedMembersNeeded []int
}

// UpdateDetail updates the project, the slot and its requirement set.
func (s *ProjectService) UpdateDetail(projectID, descriptionID uint64, input UpdateDetailInput) error {
	if len(input.SelectedQualifications) != len(input.QualifiedMembersNeeded) {
		return ErrRequirementMismatch
	}

	requirements := make([]repository.RequirementInput, len(input.SelectedQualifications))
	for i, qualificationID := range input.SelectedQualifications {
		requirements[i] = repository.RequirementInput{
			QualificationID:       qualificationID,
			NumberOfMembersNeeded: input.QualifiedMembersNeeded[i],
		}
	}

	desc := &models.ProjectDescription{
		WorkDate:        input.WorkDate,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Address:         input.Address,
		Postcode:        input.Postcode,
		PhoneNumber:     input.PhoneNumber,
		ManagerName:     input.ManagerName,
		RequiredMembers: input.RequiredMembers,
		UnitPrice:       input.UnitPrice,
		WorkTimeType:    input.UnitPriceType,
		Memo:            input.Memo,
	}

	err := s.projectRepo.UpdateDetail(projectID,
		repository.ProjectFields{ProjectName: input.ProjectName, CompanyID: input.CompanyID},
		descriptionID, desc, requirements)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectDetailNotFound
		}
		return fmt.Errorf("failed to update project detail: %w", err)
	}
	return nil
}

// DeleteDetail removes a slot, and the project itself when it was the last one.
func (s *ProjectService) DeleteDetail(projectID, descriptionID uint64) error {
	if err := s.projectRepo.DeleteDescription(projectID, descriptionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project detail: %w", err)
	}
	return nil
}

// DescriptionsOnDate returns the slots working on the given UTC day.
func (s *ProjectService) DescriptionsOnDate(date time.Time) ([]models.ProjectDescription, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	descs, err := s.projectRepo.ListDescriptionsByDate(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list project slots: %w", err)
	}
	return descs, nil
}
