package pipeline

import "fmt"

// Action is a staff or public trigger that moves an applicant.
type Action string

const (
	ActionSubmit          Action = "submit"
	ActionMoveToInterview Action = "move_to_interview"
	ActionApprove         Action = "approve"
	ActionReject          Action = "reject"
	ActionVerify          Action = "verify"
)

// Transition is one row of the pipeline table. From is empty for the
// submission row.
type Transition struct {
	From                 Status `json:"from"`
	To                   Status `json:"to"`
	Action               Action `json:"action"`
	Label                string `json:"label"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
}

var table = []Transition{
	{From: "", To: StatusProcessing, Action: ActionSubmit, Label: "Submit application"},
	{From: StatusProcessing, To: StatusInterviewPending, Action: ActionMoveToInterview, Label: "Move to Interview"},
	{From: StatusProcessing, To: StatusRejected, Action: ActionReject, Label: "Reject", RequiresConfirmation: true},
	{From: StatusInterviewPending, To: StatusInterviewApproved, Action: ActionApprove, Label: "Approve", RequiresConfirmation: true},
	{From: StatusInterviewPending, To: StatusRejected, Action: ActionReject, Label: "Reject", RequiresConfirmation: true},
	{From: StatusInterviewApproved, To: StatusHired, Action: ActionVerify, Label: "Verify & Convert"},
	{From: StatusInterviewApproved, To: StatusRejected, Action: ActionReject, Label: "Reject", RequiresConfirmation: true},
}

// Table returns a copy of every transition row.
func Table() []Transition {
	out := make([]Transition, len(table))
	copy(out, table)
	return out
}

// Lookup finds the row for action taken from the given state.
func Lookup(from Status, action Action) (Transition, error) {
	if from.IsTerminal() {
		return Transition{}, fmt.Errorf("%w: %s", ErrTerminalState, from)
	}
	for _, t := range table {
		if t.From == from && t.Action == action {
			return t, nil
		}
	}
	return Transition{}, fmt.Errorf("%w: %s from %q", ErrIllegalTransition, action, from)
}

// Next returns the state reached by applying action to from.
func Next(from Status, action Action) (Status, error) {
	t, err := Lookup(from, action)
	if err != nil {
		return "", err
	}
	return t.To, nil
}

// Resolve finds the row that authorises moving from one state to another.
func Resolve(from, to Status) (Transition, error) {
	if from.IsTerminal() {
		return Transition{}, fmt.Errorf("%w: %s", ErrTerminalState, from)
	}
	if !to.Valid() {
		return Transition{}, fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	for _, t := range table {
		if t.From == from && t.To == to {
			return t, nil
		}
	}
	return Transition{}, fmt.Errorf("%w: %q -> %q", ErrIllegalTransition, from, to)
}

// Allowed lists the controls that may be offered for an applicant in
// state from. Terminal states yield nothing.
func Allowed(from Status) []Transition {
	if from.IsTerminal() {
		return nil
	}
	var out []Transition
	for _, t := range table {
		if t.From == from && from != "" {
			out = append(out, t)
		}
	}
	return out
}
