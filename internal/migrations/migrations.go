package migrations

import (
	"fmt"

	"github.com/linskybing/hris-cloud/internal/domain/applicant"
	"github.com/linskybing/hris-cloud/internal/domain/audit"
	"github.com/linskybing/hris-cloud/internal/domain/employee"
	"github.com/linskybing/hris-cloud/internal/domain/organization"
	"github.com/linskybing/hris-cloud/internal/domain/policy"
	"github.com/linskybing/hris-cloud/internal/domain/project"
	"gorm.io/gorm"
)

// Models lists every persisted type in dependency order.
func Models() []interface{} {
	return []interface{}{
		&organization.Organization{},
		&project.Project{},
		&project.APIKey{},
		&applicant.Applicant{},
		&employee.Employee{},
		&policy.Log{},
		&audit.AuditLog{},
	}
}

// Run creates or updates the schema.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Reset drops and recreates every table. Used by the integration suite.
func Reset(db *gorm.DB) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
	}
	return Run(db)
}
