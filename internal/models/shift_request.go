package models

import "time"

type ShiftRequestType string

const (
	ShiftRequestShift ShiftRequestType = "SHIFT"
	ShiftRequestLeave ShiftRequestType = "LEAVE"
)

// ShiftRequest is a staff-submitted intent for a date: a shift claim
// (optionally tied to a project slot on the same date) or a leave request.
type ShiftRequest struct {
	ID                   uint64           `gorm:"primarykey" json:"id"`
	StaffProfileID       uint64           `gorm:"not null;index" json:"staffProfileId"`
	Date                 time.Time        `gorm:"not null" json:"date"`
	RequestType          ShiftRequestType `gorm:"type:varchar(20);not null" json:"requestType"`
	Memo                 string           `gorm:"type:text" json:"memo"`
	ProjectDescriptionID *uint64          `json:"projectDescriptionId"`
	CreatedAt            time.Time        `json:"created_at"`

	// Relations
	StaffProfile       StaffProfile        `gorm:"foreignKey:StaffProfileID" json:"staffProfile,omitempty"`
	ProjectDescription *ProjectDescription `gorm:"foreignKey:ProjectDescriptionID" json:"projectDescription,omitempty"`
}
