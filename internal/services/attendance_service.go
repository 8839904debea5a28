package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shiftcrew/shift-management-api/internal/models"
	"github.com/shiftcrew/shift-management-api/internal/repository"
	"github.com/shiftcrew/shift-management-api/internal/utils"
	"gorm.io/gorm"
)

// ErrAttendanceNotFound covers both a missing open record and a record that
// has already moved past the expected state; callers cannot tell them apart.
var ErrAttendanceNotFound = errors.New("attendance record not found")

// AttendanceService owns the clock-in/out state machine and the aggregate
// range queries.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo}
}

// CheckIn transitions the pair's open record from NOT_STARTED to CLOCKED_IN,
// recording the server-side UTC timestamp and the reported place. The update
// is conditional on the prior state, so a second check-in on the same record
// fails even when it races the first.
func (s *AttendanceService) CheckIn(staffProfileID, projectMemberID uint64, place string) (*models.Attendance, error) {
	return s.transition(staffProfileID, projectMemberID,
		models.AttendanceNotStarted, models.AttendanceClockedIn,
		func(now time.Time) map[string]interface{} {
			return map[string]interface{}{
				"clock_in_time":  now,
				"check_in_place": place,
			}
		})
}

// CheckOut transitions the pair's open record from CLOCKED_IN to CLOCKED_OUT.
// A record still in NOT_STARTED cannot clock out.
func (s *AttendanceService) CheckOut(staffProfileID, projectMemberID uint64, place string) (*models.Attendance, error) {
	return s.transition(staffProfileID, projectMemberID,
		models.AttendanceClockedIn, models.AttendanceClockedOut,
		func(now time.Time) map[string]interface{} {
			return map[string]interface{}{
				"clock_out_time":  now,
				"check_out_place": place,
			}
		})
}

func (s *AttendanceService) transition(staffProfileID, projectMemberID uint64, from, to models.AttendanceStatus, updatesAt func(time.Time) map[string]interface{}) (*models.Attendance, error) {
	record, err := s.attendanceRepo.FindOpen(staffProfileID, projectMemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}

	moved, err := s.attendanceRepo.Transition(record.ID, from, to, updatesAt(time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}
	if !moved {
		// The row was not in the expected state: either the guard condition
		// failed outright or a concurrent transition got there first.
		return nil, ErrAttendanceNotFound
	}

	updated, err := s.attendanceRepo.FindByID(record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload attendance record: %w", err)
	}
	return updated, nil
}

// Day returns records clocked in during the UTC day containing date.
func (s *AttendanceService) Day(date time.Time) ([]models.Attendance, error) {
	start, end := utils.DayWindow(date)
	return s.listWindow(start, end)
}

// Week returns records clocked in during the Monday-based UTC week containing date.
func (s *AttendanceService) Week(date time.Time) ([]models.Attendance, error) {
	start, end := utils.WeekWindow(date)
	return s.listWindow(start, end)
}

// Month returns records clocked in during the given calendar month.
func (s *AttendanceService) Month(year int, month time.Month) ([]models.Attendance, error) {
	start, end := utils.MonthWindow(year, month)
	return s.listWindow(start, end)
}

func (s *AttendanceService) listWindow(start, end time.Time) ([]models.Attendance, error) {
	records, err := s.attendanceRepo.ListByClockInWindow(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}

// List returns attendance records with staff and slot detail, paginated.
func (s *AttendanceService) List(offset, limit int) ([]models.Attendance, int64, error) {
	records, total, err := s.attendanceRepo.List(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, total, nil
}
