package hrisclient

import (
	"encoding/json"
	"time"

	"github.com/linskybing/hris-cloud/pkg/pipeline"
)

type Applicant struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	ProjectName string          `json:"project_name,omitempty"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	CVText      string          `json:"cv_text"`
	AIScore     *int            `json:"ai_score"`
	AIReasoning *string         `json:"ai_reasoning"`
	Status      pipeline.Status `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (a Applicant) PipelineStatus() pipeline.Status { return a.Status }
func (a Applicant) Score() *int                      { return a.AIScore }

type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Project struct {
	ID           string    `json:"id"`
	OrgID        string    `json:"org_id"`
	OrgName      string    `json:"org_name,omitempty"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	TemplateID   string    `json:"template_id"`
	IsActive     bool      `json:"is_active"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Benefits     string    `json:"benefits"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateProjectRequest struct {
	OrgID      string `json:"org_id,omitempty"`
	Name       string `json:"name"`
	TemplateID string `json:"template_id"`
}

// UpdateProjectRequest sends only the fields that are set.
type UpdateProjectRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
	Benefits     *string `json:"benefits,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// APIKey holds the plaintext key. The server returns it only once.
type APIKey struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	KeyValue  string `json:"key_value"`
}

type Employee struct {
	ID             string    `json:"id"`
	OrgID          string    `json:"org_id"`
	ApplicantID    *string   `json:"applicant_id,omitempty"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Department     string    `json:"department"`
	LeaveRemaining int       `json:"leave_remaining"`
	Status         string    `json:"status"`
	JoinDate       string    `json:"join_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateEmployeeRequest struct {
	OrgID          string `json:"org_id,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role,omitempty"`
	Department     string `json:"department,omitempty"`
	LeaveRemaining *int   `json:"leave_remaining,omitempty"`
	JoinDate       string `json:"join_date,omitempty"`
}

type UpdateEmployeeRequest struct {
	Name           *string `json:"name,omitempty"`
	Role           *string `json:"role,omitempty"`
	Department     *string `json:"department,omitempty"`
	LeaveRemaining *int    `json:"leave_remaining,omitempty"`
	Status         *string `json:"status,omitempty"`
}

// HireResult is the reply to a successful verify.
type HireResult struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
}

type PolicyAnswer struct {
	Answer    string `json:"answer"`
	Reasoning string `json:"reasoning"`
}

type PolicyDocument struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PolicyLog struct {
	ID         uint      `json:"id"`
	UserID     string    `json:"user_id"`
	EmployeeID *string   `json:"employee_id,omitempty"`
	Query      string    `json:"query"`
	Answer     string    `json:"answer"`
	Reasoning  string    `json:"reasoning"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuditLog struct {
	ID           uint            `json:"id"`
	UserID       string          `json:"user_id"`
	Action       string          `json:"action"`
	ResourceType string          `json:"resource_type"`
	ResourceID   string          `json:"resource_id"`
	OldData      json.RawMessage `json:"old_data,omitempty"`
	NewData      json.RawMessage `json:"new_data,omitempty"`
	IPAddress    string          `json:"ip_address"`
	UserAgent    string          `json:"user_agent"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AuditQuery filters the caller's audit trail. Zero values are omitted.
type AuditQuery struct {
	ResourceType string
	ResourceID   string
	Action       string
	Start        time.Time
	End          time.Time
	Limit        int
	Offset       int
}

// PipelineInfo is the server's copy of the transition table.
type PipelineInfo struct {
	Statuses               []pipeline.Status     `json:"statuses"`
	Transitions            []pipeline.Transition `json:"transitions"`
	PriorityScoreThreshold int                   `json:"priority_score_threshold"`
	Views                  []string              `json:"views"`
}

// Snapshot is one push from the applicant stream.
type Snapshot struct {
	ProjectID  string      `json:"project_id,omitempty"`
	Applicants []Applicant `json:"applicants"`
	SentAt     time.Time   `json:"sent_at"`
}
