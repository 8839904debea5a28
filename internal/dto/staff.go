package dto

import (
	"time"

	"github.com/shiftcrew/shift-management-api/internal/models"
)

// StaffSummaryDTO identifies the authenticated staff member.
type StaffSummaryDTO struct {
	StaffID string `json:"staffId"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

// EmergencyContactDTO represents an emergency contact in API responses
type EmergencyContactDTO struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phoneNumber"`
}

// QualificationNameDTO carries just the credential name
type QualificationNameDTO struct {
	QualificationName string `json:"qualificationName"`
}

// MemberDTO is the flattened staff listing shape
type MemberDTO struct {
	ID                uint64                 `json:"id"`
	StaffID           string                 `json:"staffId"`
	Name              string                 `json:"name"`
	RomanName         string                 `json:"romanname"`
	Address           string                 `json:"address"`
	Postcode          string                 `json:"postcode"`
	PhoneNumber       string                 `json:"phonenumber"`
	Email             string                 `json:"email"`
	Birthday          time.Time              `json:"birthday"`
	HireDate          time.Time              `json:"hiredate"`
	Role              string                 `json:"role"`
	EmergencyContacts []EmergencyContactDTO  `json:"emergencyContacts"`
	Qualifications    []QualificationNameDTO `json:"qualifications"`
}

// ToStaffSummaryDTO converts a profile to its identity summary
func ToStaffSummaryDTO(profile models.StaffProfile) StaffSummaryDTO {
	return StaffSummaryDTO{
		StaffID: profile.StaffID,
		Name:    profile.Name,
		Role:    profile.Role,
	}
}

// ToMemberDTO converts a profile with preloaded relations to the listing shape
func ToMemberDTO(profile models.StaffProfile) MemberDTO {
	contacts := make([]EmergencyContactDTO, len(profile.EmergencyContacts))
	for i, contact := range profile.EmergencyContacts {
		contacts[i] = EmergencyContactDTO{
			Name:         contact.NameOfEmergency,
			Relationship: contact.Relationship,
			PhoneNumber:  contact.PhoneNumber,
		}
	}

	qualifications := make([]QualificationNameDTO, len(profile.Qualifications))
	for i, sq := range profile.Qualifications {
		qualifications[i] = QualificationNameDTO{
			QualificationName: sq.Qualification.QualificationName,
		}
	}

	return MemberDTO{
		ID:                profile.ID,
		StaffID:           profile.StaffID,
		Name:              profile.Name,
		RomanName:         profile.RomanName,
		Address:           profile.Address,
		Postcode:          profile.Postcode,
		PhoneNumber:       profile.PhoneNumber,
		Email:             profile.Email,
		Birthday:          profile.Birthday,
		HireDate:          profile.HireDate,
		Role:              profile.Role,
		EmergencyContacts: contacts,
		Qualifications:    qualifications,
	}
}
