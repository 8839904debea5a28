package models

// Qualification is a named credential type, referenced both by staff who hold
// it and by project slots that require it.
type Qualification struct {
	ID                uint64 `gorm:"primarykey" json:"id"`
	QualificationName string `gorm:"type:varchar(255);not null" json:"qualificationName"`
}

type StaffQualification struct {
	ID              uint64 `gorm:"primarykey" json:"id"`
	StaffProfileID  uint64 `gorm:"not null;index" json:"staffProfileId"`
	QualificationID uint64 `gorm:"not null" json:"qualificationId"`

	Qualification Qualification `gorm:"foreignKey:QualificationID" json:"qualification,omitempty"`
}
