package applicant

import (
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"gorm.io/gorm"
)

// Applicant is one candidate submission tied to a single project.
type Applicant struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"project_id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Email       string          `gorm:"size:320;index;not null" json:"email"`
	CVText      string          `gorm:"type:text" json:"cv_text"`
	CVHash      string          `gorm:"size:64;index" json:"-"`
	CVObject    string          `gorm:"size:300" json:"-"`
	AIScore     *int            `json:"ai_score"`
	AIReasoning *string         `gorm:"type:text" json:"ai_reasoning"`
	Status      pipeline.Status `gorm:"size:32;index;not null;default:'processing'" json:"status"`
	ProjectName string          `gorm:"-" json:"project_name,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (a *Applicant) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a Applicant) PipelineStatus() pipeline.Status { return a.Status }
func (a Applicant) Score() *int                      { return a.AIScore }

// Scored reports whether AI scoring has completed.
func (a Applicant) Scored() bool { return a.AIScore != nil }

// Submission is the validated public application.
type Submission struct {
	Name     string
	Email    string
	FileName string
	Content  []byte
}

type ApplyForm struct {
	Name  string `form:"name" binding:"required,max=200"`
	Email string `form:"email" binding:"required,email"`
}

type UpdateStatusDTO struct {
	Status string `json:"status" binding:"required"`
}
