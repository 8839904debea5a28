package models

type EmergencyContact struct {
	ID              uint64 `gorm:"primarykey" json:"id"`
	StaffProfileID  uint64 `gorm:"not null;index" json:"staffProfileId"`
	NameOfEmergency string `gorm:"type:varchar(255);not null" json:"nameOfEmergency"`
	Relationship    string `gorm:"type:varchar(100)" json:"relationship"`
	PhoneNumber     string `gorm:"type:varchar(30)" json:"phoneNumber"`
}
