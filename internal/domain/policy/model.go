package policy

import (
	"time"

	"github.com/google/uuid"
)

// Log records one answered policy question for HR review.
type Log struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     string     `gorm:"size:64;index" json:"user_id"`
	EmployeeID *uuid.UUID `gorm:"type:uuid" json:"employee_id,omitempty"`
	Query      string     `gorm:"type:text" json:"query"`
	Answer     string     `gorm:"type:text" json:"answer"`
	Reasoning  string     `gorm:"type:text" json:"reasoning"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}

func (Log) TableName() string {
	return "policy_logs"
}

type Answer struct {
	Answer    string `json:"answer"`
	Reasoning string `json:"reasoning"`
}

// Document is a stored policy file.
type Document struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}
