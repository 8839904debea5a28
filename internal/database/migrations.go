package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shiftcrew/shift-management-api/internal/models"
)

func Migrate() error {
	log.Info().Msg("Running database migrations")
	err := DB.AutoMigrate(
		&models.StaffProfile{},
		&models.StaffAccount{},
		&models.EmergencyContact{},
		&models.NGStaff{},
		&models.Qualification{},
		&models.StaffQualification{},
		&models.Company{},
		&models.Project{},
		&models.ProjectDescription{},
		&models.ProjectQualification{},
		&models.ProjectMember{},
		&models.Attendance{},
		&models.ShiftRequest{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info().Msg("Database migrations completed")
	return nil
}
