package audit

import (
	"time"

	"gorm.io/datatypes"
)

// Resource types recorded in the trail.
const (
	ResourceApplicant    = "applicant"
	ResourceEmployee     = "employee"
	ResourceProject      = "project"
	ResourceAPIKey       = "api_key"
	ResourceOrganization = "organization"
	ResourcePolicy       = "policy_document"
)

// AuditLog is one change made by a staff user. ResourceID is the bare id
// of the resource (a UUID, or the file name for policy documents), so one
// applicant's pipeline history is a lookup on (resource_type, resource_id).
type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       string         `gorm:"size:64;index" json:"user_id"`
	Action       string         `gorm:"size:32;index" json:"action"`
	ResourceType string         `gorm:"size:32;index:idx_audit_resource" json:"resource_type"`
	ResourceID   string         `gorm:"size:255;index:idx_audit_resource" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	Description  string         `json:"description"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}

// Actor is the staff user behind a change and where the request came from.
type Actor struct {
	UserID    string
	IPAddress string
	UserAgent string
}
