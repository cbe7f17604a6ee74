package project

import "github.com/google/uuid"

type CreateProjectDTO struct {
	OrgID      *uuid.UUID `json:"org_id,omitempty"`
	Name       string     `json:"name" binding:"required,max=200"`
	TemplateID string     `json:"template_id"`
}

// UpdateProjectDTO carries only the mutable fields; org_id is absent on
// purpose.
type UpdateProjectDTO struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=200"`
	Description  *string `json:"description,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
	Benefits     *string `json:"benefits,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}
