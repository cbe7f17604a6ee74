package project

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a job posting owned by an organization.
type Project struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OrgID        uuid.UUID      `gorm:"type:uuid;index;not null;<-:create" json:"org_id"`
	OwnerID      string         `gorm:"size:64;index;not null" json:"owner_id"`
	Name         string         `gorm:"size:200;not null" json:"name"`
	TemplateID   string         `gorm:"size:64" json:"template_id"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	Description  string         `gorm:"type:text" json:"description"`
	Requirements string         `gorm:"type:text" json:"requirements"`
	Benefits     string         `gorm:"type:text" json:"benefits"`
	OrgName      string         `gorm:"-" json:"org_name,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// APIKey authorises server-to-server submissions for one project. Only the
// bcrypt hash of the secret is stored.
type APIKey struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;index;not null" json:"project_id"`
	OwnerID   string    `gorm:"size:64;not null" json:"owner_id"`
	Prefix    string    `gorm:"size:32;uniqueIndex;not null" json:"prefix"`
	KeyHash   string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (k *APIKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}
