package application

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrProjectNotFound      = errors.New("Project not found")
	ErrPositionClosed       = errors.New("Position closed")
	ErrInvalidAPIKey        = errors.New("Invalid API Key")
	ErrForbidden            = errors.New("Not authorized")

	ErrApplicantNotFound    = errors.New("Applicant not found")
	ErrUnknownView          = errors.New("unknown applicant view")
	ErrUseVerifyEndpoint    = errors.New("use the verify endpoint to hire an applicant")
	ErrStatusConflict       = errors.New("applicant status changed, refresh and try again")
	ErrNotInterviewApproved = errors.New("Only interview-approved applicants can be verified")

	ErrEmployeeNotFound  = errors.New("Employee not found")
	ErrDuplicateEmployee = errors.New("Employee with this email already exists")
	ErrInvalidJoinDate   = errors.New("join_date must be YYYY-MM-DD")

	ErrPolicyNotFound  = errors.New("File not found")
	ErrInvalidFileName = errors.New("Invalid filename")
	ErrOnlyPDF         = errors.New("Only PDF files are allowed")
	ErrQueryRequired   = errors.New("Query is required")
)
