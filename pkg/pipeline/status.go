package pipeline

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of an applicant.
type Status string

const (
	StatusProcessing        Status = "processing"
	StatusInterviewPending  Status = "interview_pending"
	StatusInterviewApproved Status = "interview_approved"
	StatusHired             Status = "hired"
	StatusRejected          Status = "rejected"
)

var (
	ErrUnknownStatus     = errors.New("unknown applicant status")
	ErrTerminalState     = errors.New("applicant is in a terminal state")
	ErrIllegalTransition = errors.New("transition not allowed")
)

// Statuses returns the canonical set in pipeline order.
func Statuses() []Status {
	return []Status{
		StatusProcessing,
		StatusInterviewPending,
		StatusInterviewApproved,
		StatusHired,
		StatusRejected,
	}
}

// ParseStatus accepts only canonical values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusInterviewPending, StatusInterviewApproved, StatusHired, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func (s Status) IsTerminal() bool {
	return s == StatusHired || s == StatusRejected
}

func (s Status) String() string {
	return string(s)
}

// MigrateLegacy maps statuses written by the older three-state board onto
// the canonical pipeline. Canonical and unrecognised values pass through.
func MigrateLegacy(s string) Status {
	switch s {
	case "pending":
		return StatusProcessing
	case "approved":
		return StatusInterviewApproved
	case "interview":
		return StatusInterviewPending
	}
	return Status(s)
}
