package employee

import "github.com/google/uuid"

type CreateEmployeeDTO struct {
	OrgID          *uuid.UUID `json:"org_id,omitempty"`
	Name           string     `json:"name" binding:"required,max=200"`
	Email          string     `json:"email" binding:"required,email"`
	Role           string     `json:"role"`
	Department     string     `json:"department"`
	LeaveRemaining *int       `json:"leave_remaining,omitempty" binding:"omitempty,min=0"`
	JoinDate       string     `json:"join_date,omitempty"`
}

type UpdateEmployeeDTO struct {
	Name           *string `json:"name,omitempty"`
	Role           *string `json:"role,omitempty"`
	Department     *string `json:"department,omitempty"`
	LeaveRemaining *int    `json:"leave_remaining,omitempty" binding:"omitempty,min=0"`
	Status         *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}
