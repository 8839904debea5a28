package repository

import (
	"time"

	"github.com/shiftcrew/shift-management-api/internal/models"
)

// StaffRepository defines the interface for staff data access
type StaffRepository interface {
	// Register creates the profile, account and dependent rows atomically
	Register(profile *models.StaffProfile, account *models.StaffAccount, contacts []models.EmergencyContact, ngStaffIDs []uint64, qualificationIDs []uint64) error

	// FindByID finds a staff profile by primary key with optional preloading
	FindByID(id uint64, preload ...string) (*models.StaffProfile, error)

	// FindByStaffID finds a staff profile by its staff identifier
	FindByStaffID(staffID string, preload ...string) (*models.StaffProfile, error)

	// FindAccountByStaffID finds the credential record for a staff identifier
	FindAccountByStaffID(staffID string) (*models.StaffAccount, error)

	// List returns all staff profiles with contacts and qualifications
	List() ([]models.StaffProfile, error)

	// Update updates a staff profile
	Update(profile *models.StaffProfile) error

	// Delete removes a profile and every dependent row atomically
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project and slot data access
type ProjectRepository interface {
	// CreateWithDescription creates a project with its first slot and requirements
	CreateWithDescription(project *models.Project, desc *models.ProjectDescription, requirements []models.ProjectQualification) error

	// AddDescription appends a slot to an existing project
	AddDescription(projectID uint64, desc *models.ProjectDescription, requirements []models.ProjectQualification) error

	// ListAll returns every project with company and slots
	ListAll() ([]models.Project, error)

	// ListByWindow returns projects having a slot whose work date falls in [start, end)
	ListByWindow(start, end time.Time) ([]models.Project, error)

	// FindDetail returns a project restricted to one slot, with requirements
	FindDetail(projectID, descriptionID uint64) (*models.Project, error)

	// FindDescription finds a single slot by ID
	FindDescription(id uint64) (*models.ProjectDescription, error)

	// ListDescriptionsByDate returns slots working on the given UTC day
	ListDescriptionsByDate(start, end time.Time) ([]models.ProjectDescription, error)

	// UpdateDetail updates project fields, slot fields, and reconciles requirements
	UpdateDetail(projectID uint64, project ProjectFields, descriptionID uint64, desc *models.ProjectDescription, requirements []RequirementInput) error

	// DeleteDescription removes a slot and its dependents; the whole project
	// goes when this was its last slot
	DeleteDescription(projectID, descriptionID uint64) error
}

// ProjectFields carries the project-level columns touched by a detail update
type ProjectFields struct {
	ProjectName string
	CompanyID   uint64
}

// RequirementInput is one desired qualification requirement for a slot
type RequirementInput struct {
	QualificationID       uint64
	NumberOfMembersNeeded int
}

// RosterRepository defines the interface for project membership data access
type RosterRepository interface {
	// ListMembers returns the current roster for a slot
	ListMembers(projectDescriptionID uint64) ([]models.ProjectMember, error)

	// Assign adds one staff profile to a slot together with its attendance row
	Assign(staffProfileID, projectDescriptionID uint64) (*models.ProjectMember, error)

	// Reconcile applies the full desired roster per slot as a set diff,
	// all slots in one transaction
	Reconcile(desired map[uint64][]uint64) error

	// ListByStaffProfile returns a staff member's roster entries with slot,
	// project and attendance detail
	ListByStaffProfile(staffProfileID uint64) ([]models.ProjectMember, error)
}

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	// FindOpen finds the record for the pair that has not clocked out yet
	FindOpen(staffProfileID, projectMemberID uint64) (*models.Attendance, error)

	// FindByID finds an attendance record by primary key
	FindByID(id uint64) (*models.Attendance, error)

	// Transition performs a conditional update keyed on the expected prior
	// status and reports whether a row actually moved
	Transition(id uint64, from, to models.AttendanceStatus, updates map[string]interface{}) (bool, error)

	// ListByClockInWindow returns records whose clock-in time falls in [start, end)
	ListByClockInWindow(start, end time.Time) ([]models.Attendance, error)

	// List returns attendance records with staff and slot detail, paginated
	List(offset, limit int) ([]models.Attendance, int64, error)
}

// ShiftRequestRepository defines the interface for shift request data access
type ShiftRequestRepository interface {
	// Create creates a new shift request
	Create(request *models.ShiftRequest) error

	// FindByID finds a shift request by ID
	FindByID(id uint64) (*models.ShiftRequest, error)

	// ListByStaffProfile returns the requests owned by a staff profile
	ListByStaffProfile(staffProfileID uint64) ([]models.ShiftRequest, error)

	// Delete removes a shift request
	Delete(id uint64) error
}
