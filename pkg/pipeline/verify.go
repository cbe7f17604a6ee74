package pipeline

import (
	"errors"
	"strings"
	"time"
)

// JoinDateLayout is the accepted join_date format.
const JoinDateLayout = "2006-01-02"

var (
	ErrDepartmentRequired = errors.New("department is required")
	ErrRoleRequired       = errors.New("role is required")
	ErrJoinDateRequired   = errors.New("join_date is required")
	ErrJoinDateFormat     = errors.New("join_date must be YYYY-MM-DD")
	ErrNegativeLeave      = errors.New("leave_remaining cannot be negative")
)

// VerifyForm is the employee data entered before an applicant is hired.
type VerifyForm struct {
	Department     string `json:"department" binding:"required"`
	Role           string `json:"role" binding:"required"`
	JoinDate       string `json:"join_date" binding:"required"`
	LeaveRemaining int    `json:"leave_remaining"`
}

// Validate checks every field before any request or write is issued.
func (f VerifyForm) Validate() error {
	if strings.TrimSpace(f.Department) == "" {
		return ErrDepartmentRequired
	}
	if strings.TrimSpace(f.Role) == "" {
		return ErrRoleRequired
	}
	if strings.TrimSpace(f.JoinDate) == "" {
		return ErrJoinDateRequired
	}
	if _, err := f.ParsedJoinDate(); err != nil {
		return ErrJoinDateFormat
	}
	if f.LeaveRemaining < 0 {
		return ErrNegativeLeave
	}
	return nil
}

func (f VerifyForm) ParsedJoinDate() (time.Time, error) {
	return time.Parse(JoinDateLayout, strings.TrimSpace(f.JoinDate))
}
