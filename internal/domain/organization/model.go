package organization

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultName is used when an organization is created implicitly for a
// new HR owner.
const DefaultName = "My Organization"

// Organization is the tenant boundary. Every project and applicant
// belongs to exactly one.
type Organization struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:200;not null" json:"name"`
	OwnerID   string         `gorm:"size:64;index;not null" json:"owner_id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type CreateOrganizationDTO struct {
	Name string `json:"name" binding:"required,max=200"`
}
