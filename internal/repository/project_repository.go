package repository

import (
	"time"

	"github.com/shiftcrew/shift-management-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateWithDescription creates a project with its first slot and requirements
func (r *GormProjectRepository) CreateWithDescription(project *models.Project, desc *models.ProjectDescription, requirements []models.ProjectQualification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return createDescription(tx, project.ID, desc, requirements)
	})
}

// AddDescription appends a slot to an existing project
func (r *GormProjectRepository) AddDescription(projectID uint64, desc *models.ProjectDescription, requirements []models.ProjectQualification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, projectID).Error; err != nil {
			return err
		}
		return createDescription(tx, projectID, desc, requirements)
	})
}

func createDescription(tx *gorm.DB, projectID uint64, desc *models.ProjectDescription, requirements []models.ProjectQualification) error {
	desc.ProjectID = projectID
	if err := tx.Create(desc).Error; err != nil {
		return err
	}
	for i := range requirements {
		requirements[i].ProjectDescriptionID = desc.ID
	}
	if len(requirements) > 0 {
		if err := tx.Create(&requirements).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListAll returns every project with company and slots
func (r *GormProjectRepository) ListAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.
		Preload("Company").
		Preload("Descriptions").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListByWindow returns projects having a slot whose work date falls in [start, end)
func (r *GormProjectRepository) ListByWindow(start, end time.Time) ([]models.Project, error) {
	var projects []models.Project
	descSubQuery := r.db.Model(&models.ProjectDescription{}).
		Select("1").
		Where("project_descriptions.project_id = projects.id").
		Where("project_descriptions.work_date >= ? AND project_descriptions.work_date < ?", start, end)

	if err := r.db.
		Where("EXISTS (?)", descSubQuery).
		Preload("Company").
		Preload("Descriptions").
		Preload("Descriptions.Qualifications.Qualification").
		Preload("Descriptions.Members.StaffProfile.Qualifications.Qualification").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindDetail returns a project restricted to one slot, with requirements.
// Returns gorm.ErrRecordNotFound when the slot does not belong to the project.
func (r *GormProjectRepository) FindDetail(projectID, descriptionID uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.
		Preload("Company").
		Preload("Descriptions", "id = ?", descriptionID).
		Preload("Descriptions.Qualifications.Qualification").
		First(&project, projectID).Error; err != nil {
		return nil, err
	}
	if len(project.Descriptions) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &project, nil
}

// FindDescription finds a single slot by ID
func (r *GormProjectRepository) FindDescription(id uint64) (*models.ProjectDescription, error) {
	var desc models.ProjectDescription
	if err := r.db.First(&desc, id).Error; err != nil {
		return nil, err
	}
	return &desc, nil
}

// ListDescriptionsByDate returns slots working on the given UTC day
func (r *GormProjectRepository) ListDescriptionsByDate(start, end time.Time) ([]models.ProjectDescription, error) {
	var descs []models.ProjectDescription
	if err := r.db.
		Preload("Project").
		Where("work_date >= ? AND work_date < ?", start, end).
		Find(&descs).Error; err != nil {
		return nil, err
	}
	return descs, nil
}

// UpdateDetail updates project fields, slot fields, and reconciles the
// qualification requirements against the desired set in one transaction.
func (r *GormProjectRepository) UpdateDetail(projectID uint64, project ProjectFields, descriptionID uint64, desc *models.ProjectDescription, requirements []RequirementInput) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).
			Where("id = ?", projectID).
			Updates(map[string]interface{}{
				"project_name": project.ProjectName,
				"company_id":   project.CompanyID,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.ProjectDescription{}).
			Where("id = ?", descriptionID).
			Updates(map[string]interface{}{
				"work_date":        desc.WorkDate,
				"start_time":       desc.StartTime,
				"end_time":         desc.EndTime,
				"address":          desc.Address,
				"postcode":         desc.Postcode,
				"phone_number":     desc.PhoneNumber,
				"manager_name":     desc.ManagerName,
				"required_members": desc.RequiredMembers,
				"unit_price":       desc.UnitPrice,
				"work_time_type":   desc.WorkTimeType,
				"memo":             desc.Memo,
			}).Error; err != nil {
			return err
		}

		return reconcileRequirements(tx, descriptionID, requirements)
	})
}

// reconcileRequirements diffs the stored ProjectQualification rows against the
// desired set: rows absent from the input are deleted, new qualifications are
// inserted, surviving rows get their headcount overwritten.
func reconcileRequirements(tx *gorm.DB, descriptionID uint64, desired []RequirementInput) error {
	var current []models.ProjectQualification
	if err := tx.Where("project_description_id = ?", descriptionID).Find(&current).Error; err != nil {
		return err
	}

	desiredByQual := make(map[uint64]int, len(desired))
	for _, req := range desired {
		desiredByQual[req.QualificationID] = req.NumberOfMembersNeeded
	}

	var toDelete []uint64
	currentQuals := make(map[uint64]bool, len(current))
	for _, row := range current {
		currentQuals[row.QualificationID] = true
		if _, keep := desiredByQual[row.QualificationID]; !keep {
			toDelete = append(toDelete, row.ID)
		}
	}

	if len(toDelete) > 0 {
		if err := tx.Where("id IN ?", toDelete).Delete(&models.ProjectQualification{}).Error; err != nil {
			return err
		}
	}

	for _, req := range desired {
		if currentQuals[req.QualificationID] {
			if err := tx.Model(&models.ProjectQualification{}).
				Where("project_description_id = ? AND qualification_id = ?", descriptionID, req.QualificationID).
				Update("number_of_members_needed", req.NumberOfMembersNeeded).Error; err != nil {
				return err
			}
			continue
		}
		row := models.ProjectQualification{
			ProjectDescriptionID:  descriptionID,
			QualificationID:       req.QualificationID,
			NumberOfMembersNeeded: req.NumberOfMembersNeeded,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}

	return nil
}

// DeleteDescription removes a slot and its dependents in FK order:
// requirements, attendances, members, then the slot. When the slot was the
// project's last one the project row is removed as well.
func (r *GormProjectRepository) DeleteDescription(projectID, descriptionID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Preload("Descriptions").First(&project, projectID).Error; err != nil {
			return err
		}

		if err := tx.Where("project_description_id = ?", descriptionID).
			Delete(&models.ProjectQualification{}).Error; err != nil {
			return err
		}

		memberSubQuery := tx.Model(&models.ProjectMember{}).
			Select("id").
			Where("project_description_id = ?", descriptionID)
		if err := tx.Where("project_member_id IN (?)", memberSubQuery).
			Delete(&models.Attendance{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_description_id = ?", descriptionID).
			Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.ProjectDescription{}, descriptionID).Error; err != nil {
			return err
		}

		if len(project.Descriptions) == 1 && project.Descriptions[0].ID == descriptionID {
			return tx.Delete(&models.Project{}, projectID).Error
		}
		return nil
	})
}
