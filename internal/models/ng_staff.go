package models

// NGStaff marks a staff member the owning profile must not be rostered with.
type NGStaff struct {
	ID             uint64 `gorm:"primarykey" json:"id"`
	StaffProfileID uint64 `gorm:"not null;index" json:"staffProfileId"`
	NGStaffID      uint64 `gorm:"not null" json:"ngStaffId"`
}
