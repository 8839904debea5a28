package models

import "time"

type AttendanceStatus string

const (
	AttendanceNotStarted AttendanceStatus = "NOT_STARTED"
	AttendanceClockedIn  AttendanceStatus = "CLOCKED_IN"
	AttendanceClockedOut AttendanceStatus = "CLOCKED_OUT"
)

// Attendance is the clock-in/out lifecycle record for one roster entry.
// Status only ever moves forward: NOT_STARTED -> CLOCKED_IN -> CLOCKED_OUT.
type Attendance struct {
	ID              uint64           `gorm:"primarykey" json:"id"`
	StaffProfileID  uint64           `gorm:"not null;index" json:"staffProfileId"`
	ProjectMemberID uint64           `gorm:"not null;uniqueIndex" json:"projectMemberId"`
	Status          AttendanceStatus `gorm:"type:varchar(20);not null;default:'NOT_STARTED'" json:"status"`
	ClockInTime     *time.Time       `gorm:"index" json:"clockInTime"`
	ClockOutTime    *time.Time       `json:"clockOutTime"`
	CheckInPlace    string           `gorm:"type:varchar(255)" json:"checkInPlace"`
	CheckOutPlace   string           `gorm:"type:varchar(255)" json:"checkOutPlace"`
	SubmitPaper     string           `gorm:"type:varchar(255)" json:"submitPaper"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	// Relations
	StaffProfile  StaffProfile   `gorm:"foreignKey:StaffProfileID" json:"staffProfile,omitempty"`
	ProjectMember *ProjectMember `gorm:"foreignKey:ProjectMemberID" json:"projectMember,omitempty"`
}

// ClockedIn reports whether the record has left NOT_STARTED.
func (a *Attendance) ClockedIn() bool {
	return a.Status == AttendanceClockedIn || a.Status == AttendanceClockedOut
}

// ClockedOut reports whether the record reached its terminal state.
func (a *Attendance) ClockedOut() bool {
	return a.Status == AttendanceClockedOut
}
