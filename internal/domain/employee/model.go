package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusActive = "active"

	// DefaultLeaveDays is the annual leave granted when none is given.
	DefaultLeaveDays = 12
)

type Employee struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OrgID          uuid.UUID      `gorm:"type:uuid;index;not null" json:"org_id"`
	ApplicantID    *uuid.UUID     `gorm:"type:uuid;uniqueIndex" json:"applicant_id,omitempty"`
	Name           string         `gorm:"size:200;not null" json:"name"`
	Email          string         `gorm:"size:320;index;not null" json:"email"`
	Role           string         `gorm:"size:100" json:"role"`
	Department     string         `gorm:"size:100" json:"department"`
	LeaveRemaining int            `gorm:"not null" json:"leave_remaining"`
	Status         string         `gorm:"size:32;not null;default:'active'" json:"status"`
	JoinDate       datatypes.Date `json:"join_date"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
