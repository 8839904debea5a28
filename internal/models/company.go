package models

import "time"

type Company struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	CompanyName string    `gorm:"type:varchar(255);not null" json:"companyName"`
	Postcode    string    `gorm:"type:varchar(20)" json:"postcode"`
	Address     string    `gorm:"type:varchar(255)" json:"address"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(30)" json:"phonenumber"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Projects []Project `gorm:"foreignKey:CompanyID" json:"projects,omitempty"`
}
