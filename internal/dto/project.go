package dto

import (
	"github.com/shiftcrew/shift-management-api/internal/models"
)

// ProjectSlotDTO is the minimal slot listing used by the shift submission flow.
type ProjectSlotDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ToProjectSlotDTOs converts slots with their project preloaded.
func ToProjectSlotDTOs(descs []models.ProjectDescription) []ProjectSlotDTO {
	dtos := make([]ProjectSlotDTO, len(descs))
	for i, desc := range descs {
		dtos[i] = ProjectSlotDTO{
			ID:   desc.ID,
			Name: desc.Project.ProjectName,
		}
	}
	return dtos
}
