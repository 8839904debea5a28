package models

import "time"

// StaffAccount holds the login credential for a staff member. It is kept
// separate from StaffProfile so the credential can be rotated or removed
// without touching personal data.
type StaffAccount struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	StaffID   string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"staffId"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
