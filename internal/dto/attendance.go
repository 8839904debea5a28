package dto

import (
	"time"

	"github.com/shiftcrew/shift-management-api/internal/models"
)

// AttendanceDTO represents one attendance record on the wire. The clockIn and
// clockOut booleans are derived from the stored status so older clients keep
// working.
type AttendanceDTO struct {
	ID              uint64                  `json:"id"`
	StaffProfileID  uint64                  `json:"staffProfileId"`
	ProjectMemberID uint64                  `json:"projectMemberId"`
	Status          models.AttendanceStatus `json:"status"`
	ClockIn         bool                    `json:"clockIn"`
	ClockOut        bool                    `json:"clockOut"`
	ClockInTime     *time.Time              `json:"clockInTime"`
	ClockOutTime    *time.Time              `json:"clockOutTime"`
	CheckInPlace    string                  `json:"checkInPlace"`
	CheckOutPlace   string                  `json:"checkOutPlace"`
	SubmitPaper     string                  `json:"submitPaper"`
	StaffName       string                  `json:"staffName,omitempty"`
	ProjectName     string                  `json:"projectName,omitempty"`
	WorkDate        *time.Time              `json:"workDate,omitempty"`
}

// ToAttendanceDTO converts a record, flattening staff and slot detail when the
// relations are loaded.
func ToAttendanceDTO(a models.Attendance) AttendanceDTO {
	d := AttendanceDTO{
		ID:              a.ID,
		StaffProfileID:  a.StaffProfileID,
		ProjectMemberID: a.ProjectMemberID,
		Status:          a.Status,
		ClockIn:         a.ClockedIn(),
		ClockOut:        a.ClockedOut(),
		ClockInTime:     a.ClockInTime,
		ClockOutTime:    a.ClockOutTime,
		CheckInPlace:    a.CheckInPlace,
		CheckOutPlace:   a.CheckOutPlace,
		SubmitPaper:     a.SubmitPaper,
	}

	if a.StaffProfile.ID != 0 {
		d.StaffName = a.StaffProfile.Name
	}
	if a.ProjectMember != nil && a.ProjectMember.ProjectDescription.ID != 0 {
		desc := a.ProjectMember.ProjectDescription
		workDate := desc.WorkDate
		d.WorkDate = &workDate
		d.ProjectName = desc.Project.ProjectName
	}

	return d
}

// ToAttendanceDTOs converts a slice of records.
func ToAttendanceDTOs(records []models.Attendance) []AttendanceDTO {
	dtos := make([]AttendanceDTO, len(records))
	for i, record := range records {
		dtos[i] = ToAttendanceDTO(record)
	}
	return dtos
}

// AssignedShiftDTO is one roster entry of the authenticated staff member.
type AssignedShiftDTO struct {
	ProjectMemberID      uint64                  `json:"projectMemberId"`
	ProjectDescriptionID uint64                  `json:"projectDescriptionId"`
	ProjectName          string                  `json:"projectName"`
	WorkDate             time.Time               `json:"workDate"`
	StartTime            time.Time               `json:"startTime"`
	EndTime              time.Time               `json:"endTime"`
	Address              string                  `json:"address"`
	Status               models.AttendanceStatus `json:"status"`
}

// ToAssignedShiftDTO converts a roster entry with preloaded slot and attendance.
func ToAssignedShiftDTO(member models.ProjectMember) AssignedShiftDTO {
	d := AssignedShiftDTO{
		ProjectMemberID:      member.ID,
		ProjectDescriptionID: member.ProjectDescriptionID,
		ProjectName:          member.ProjectDescription.Project.ProjectName,
		WorkDate:             member.ProjectDescription.WorkDate,
		StartTime:            member.ProjectDescription.StartTime,
		EndTime:              member.ProjectDescription.EndTime,
		Address:              member.ProjectDescription.Address,
		Status:               models.AttendanceNotStarted,
	}
	if member.Attendance != nil {
		d.Status = member.Attendance.Status
	}
	return d
}
