package repository

import (
	"time"

	"github.com/shiftcrew/shift-management-api/internal/models"
	"gorm.io/gorm"
)

// GormAttendanceRepository is a GORM implementation of AttendanceRepository
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// FindOpen finds the record for the pair that has not clocked out yet
func (r *GormAttendanceRepository) FindOpen(staffProfileID, projectMemberID uint64) (*models.Attendance, error) {
	var attendance models.Attendance
	if err := r.db.
		Where("staff_profile_id = ? AND project_member_id = ? AND status <> ?",
			staffProfileID, projectMemberID, models.AttendanceClockedOut).
		First(&attendance).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

// FindByID finds an attendance record by primary key
func (r *GormAttendanceRepository) FindByID(id uint64) (*models.Attendance, error) {
	var attendance models.Attendance
	if err := r.db.First(&attendance, id).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

// Transition performs a conditional update keyed on the expected prior status.
// Two racing transitions on the same record can both find it open, but only
// the one whose WHERE clause still matches moves the row.
func (r *GormAttendanceRepository) Transition(id uint64, from, to models.AttendanceStatus, updates map[string]interface{}) (bool, error) {
	values := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		values[k] = v
	}
	values["status"] = to

	result := r.db.Model(&models.Attendance{}).
		Where("id = ? AND status = ?", id, from).
		Updates(values)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ListByClockInWindow returns records whose clock-in time falls in [start, end)
func (r *GormAttendanceRepository) ListByClockInWindow(start, end time.Time) ([]models.Attendance, error) {
	var attendances []models.Attendance
	if err := r.db.
		Preload("StaffProfile").
		Preload("ProjectMember.ProjectDescription.Project").
		Where("clock_in_time >= ? AND clock_in_time < ?", start, end).
		Order("clock_in_time ASC").
		Find(&attendances).Error; err != nil {
		return nil, err
	}
	return attendances, nil
}

// List returns attendance records with staff and slot detail, paginated
func (r *GormAttendanceRepository) List(offset, limit int) ([]models.Attendance, int64, error) {
	var total int64
	if err := r.db.Model(&models.Attendance{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attendances []models.Attendance
	query := r.db.
		Preload("StaffProfile").
		Preload("ProjectMember.ProjectDescription.Project").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Find(&attendances).Error; err != nil {
		return nil, 0, err
	}
	return attendances, total, nil
}
