package models

import (
	"time"
)

// StaffProfile is the root aggregate for a person: identity, contact and
// employment data. Credentials live on the 1:1 StaffAccount keyed by StaffID.
type StaffProfile struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	StaffID     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"staffId"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	RomanName   string    `gorm:"type:varchar(255)" json:"romanname"`
	Address     string    `gorm:"type:varchar(255)" json:"address"`
	Postcode    string    `gorm:"type:varchar(20)" json:"postcode"`
	PhoneNumber string    `gorm:"type:varchar(30)" json:"phonenumber"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Birthday    time.Time `json:"birthday"`
	HireDate    time.Time `json:"hiredate"`
	Role        string    `gorm:"type:varchar(50)" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Account           *StaffAccount        `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
	EmergencyContacts []EmergencyContact   `gorm:"foreignKey:StaffProfileID" json:"emergencyContacts,omitempty"`
	Qualifications    []StaffQualification `gorm:"foreignKey:StaffProfileID" json:"qualifications,omitempty"`
	NGStaff           []NGStaff            `gorm:"foreignKey:StaffProfileID" json:"ngStaff,omitempty"`
	ProjectMembers    []ProjectMember      `gorm:"foreignKey:StaffProfileID" json:"-"`
	Attendances       []Attendance         `gorm:"foreignKey:StaffProfileID" json:"-"`
	ShiftRequests     []ShiftRequest       `gorm:"foreignKey:StaffProfileID" json:"-"`
}
