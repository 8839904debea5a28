package repository

import (
	"github.com/shiftcrew/shift-management-api/internal/models"
	"gorm.io/gorm"
)

// GormRosterRepository is a GORM implementation of RosterRepository
type GormRosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository creates a new RosterRepository
func NewRosterRepository(db *gorm.DB) RosterRepository {
	return &GormRosterRepository{db: db}
}

// ListMembers returns the current roster for a slot
func (r *GormRosterRepository) ListMembers(projectDescriptionID uint64) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	if err := r.db.
		Where("project_description_id = ?", projectDescriptionID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Assign adds one staff profile to a slot together with its attendance row
func (r *GormRosterRepository) Assign(staffProfileID, projectDescriptionID uint64) (*models.ProjectMember, error) {
	member := models.ProjectMember{
		StaffProfileID:       staffProfileID,
		ProjectDescriptionID: projectDescriptionID,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return createMemberWithAttendance(tx, &member)
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Reconcile applies the full desired roster per slot. For every slot the
// existing members are diffed against the desired staff IDs both ways:
// members no longer wanted lose their attendance row first, then the member
// row; new staff get a member row plus a fresh NOT_STARTED attendance.
// The whole request commits or rolls back as one unit.
func (r *GormRosterRepository) Reconcile(desired map[uint64][]uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for descriptionID, staffIDs := range desired {
			existing, err := listMembersTx(tx, descriptionID)
			if err != nil {
				return err
			}

			memberIDByStaff := make(map[uint64]uint64, len(existing))
			for _, m := range existing {
				memberIDByStaff[m.StaffProfileID] = m.ID
			}

			desiredSet := make(map[uint64]bool, len(staffIDs))
			for _, id := range staffIDs {
				desiredSet[id] = true
			}

			var toDelete []uint64
			for staffID, memberID := range memberIDByStaff {
				if !desiredSet[staffID] {
					toDelete = append(toDelete, memberID)
				}
			}

			if len(toDelete) > 0 {
				// Attendance first: it references the member row.
				if err := tx.Where("project_member_id IN ?", toDelete).
					Delete(&models.Attendance{}).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", toDelete).
					Delete(&models.ProjectMember{}).Error; err != nil {
					return err
				}
			}

			for _, staffID := range staffIDs {
				if _, already := memberIDByStaff[staffID]; already {
					continue
				}
				member := models.ProjectMember{
					StaffProfileID:       staffID,
					ProjectDescriptionID: descriptionID,
				}
				if err := createMemberWithAttendance(tx, &member); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func listMembersTx(tx *gorm.DB, projectDescriptionID uint64) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	if err := tx.Select("id", "staff_profile_id").
		Where("project_description_id = ?", projectDescriptionID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func createMemberWithAttendance(tx *gorm.DB, member *models.ProjectMember) error {
	if err := tx.Create(member).Error; err != nil {
		return err
	}
	attendance := models.Attendance{
		StaffProfileID:  member.StaffProfileID,
		ProjectMemberID: member.ID,
		Status:          models.AttendanceNotStarted,
	}
	return tx.Create(&attendance).Error
}

// ListByStaffProfile returns a staff member's roster entries with slot,
// project and attendance detail
func (r *GormRosterRepository) ListByStaffProfile(staffProfileID uint64) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	if err := r.db.
		Preload("ProjectDescription.Project").
		Preload("Attendance").
		Where("staff_profile_id = ?", staffProfileID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
