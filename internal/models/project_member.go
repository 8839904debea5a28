package models

import "time"

// ProjectMember is a roster entry: one staff profile assigned to one project
// slot. Exactly one Attendance row accompanies each member, created at
// assignment time.
type ProjectMember struct {
	ID                   uint64    `gorm:"primarykey" json:"id"`
	StaffProfileID       uint64    `gorm:"not null;index" json:"staffProfileId"`
	ProjectDescriptionID uint64    `gorm:"not null;index" json:"projectDescriptionId"`
	CreatedAt            time.Time `json:"created_at"`

	// Relations
	StaffProfile       StaffProfile       `gorm:"foreignKey:StaffProfileID" json:"staffProfile,omitempty"`
	ProjectDescription ProjectDescription `gorm:"foreignKey:ProjectDescriptionID" json:"projectDescription,omitempty"`
	Attendance         *Attendance        `gorm:"foreignKey:ProjectMemberID" json:"attendance,omitempty"`
}
