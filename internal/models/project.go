package models

import "time"

// Project is a named unit of work for a company. The concrete dated shift
// instances live on ProjectDescription; a recurring project carries one
// description per working day.
type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ProjectName string    `gorm:"type:varchar(255);not null" json:"projectName"`
	CompanyID   uint64    `gorm:"not null;index" json:"companyId"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Company      Company              `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Descriptions []ProjectDescription `gorm:"foreignKey:ProjectID" json:"projectDescription,omitempty"`
}

// ProjectDescription is one working day of a project: date, time window,
// location, contact and pricing.
type ProjectDescription struct {
	ID              uint64    `gorm:"primarykey" json:"id"`
	ProjectID       uint64    `gorm:"not null;index" json:"projectId"`
	WorkDate        time.Time `gorm:"not null;index" json:"workDate"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Address         string    `gorm:"type:varchar(255)" json:"address"`
	Postcode        string    `gorm:"type:varchar(20)" json:"postcode"`
	PhoneNumber     string    `gorm:"type:varchar(30)" json:"phonenumber"`
	ManagerName     string    `gorm:"type:varchar(255)" json:"managerName"`
	RequiredMembers int       `gorm:"not null" json:"requiredMembers"`
	UnitPrice       int       `gorm:"not null" json:"unitPrice"`
	WorkTimeType    string    `gorm:"type:varchar(50)" json:"workTimeType"`
	Memo            string    `gorm:"type:text" json:"memo"`

	// Relations
	Project        Project                `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Qualifications []ProjectQualification `gorm:"foreignKey:ProjectDescriptionID" json:"projectQualification,omitempty"`
	Members        []ProjectMember        `gorm:"foreignKey:ProjectDescriptionID" json:"projectMembers,omitempty"`
}

// ProjectQualification records how many members holding a given qualification
// a project slot needs.
type ProjectQualification struct {
	ID                    uint64 `gorm:"primarykey" json:"id"`
	ProjectDescriptionID  uint64 `gorm:"not null;index" json:"projectDescriptionId"`
	QualificationID       uint64 `gorm:"not null" json:"qualificationId"`
	NumberOfMembersNeeded int    `gorm:"not null" json:"numberOfMembersNeeded"`

	Qualification Qualification `gorm:"foreignKey:QualificationID" json:"qualification,omitempty"`
}
