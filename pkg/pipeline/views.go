package pipeline

// PriorityScoreThreshold is the minimum AI score for the priority inbox.
const PriorityScoreThreshold = 70

// Item is anything the derived views can filter.
type Item interface {
	PipelineStatus() Status
	Score() *int
}

// View names accepted by the listing endpoints.
const (
	ViewPriority     = "priority"
	ViewInbox        = "inbox"
	ViewInterview    = "interview"
	ViewVerification = "verification"
	ViewHired        = "hired"
)

// Filter returns the items matching keep, preserving order.
func Filter[T Item](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func InPriorityInbox(it Item) bool {
	s := it.Score()
	return it.PipelineStatus() == StatusProcessing && s != nil && *s >= PriorityScoreThreshold
}

// InCVInbox deliberately includes interview_pending.
func InCVInbox(it Item) bool {
	st := it.PipelineStatus()
	return st == StatusProcessing || st == StatusInterviewPending
}

func InInterview(it Item) bool {
	return it.PipelineStatus() == StatusInterviewPending
}

func InVerification(it Item) bool {
	return it.PipelineStatus() == StatusInterviewApproved
}

func IsHired(it Item) bool {
	return it.PipelineStatus() == StatusHired
}

func PriorityInbox[T Item](items []T) []T {
	return Filter(items, func(it T) bool { return InPriorityInbox(it) })
}

func CVInbox[T Item](items []T) []T {
	return Filter(items, func(it T) bool { return InCVInbox(it) })
}

func Interview[T Item](items []T) []T {
	return Filter(items, func(it T) bool { return InInterview(it) })
}

func Verification[T Item](items []T) []T {
	return Filter(items, func(it T) bool { return InVerification(it) })
}

func Hired[T Item](items []T) []T {
	return Filter(items, func(it T) bool { return IsHired(it) })
}

// ByName applies the named view. ok is false for an unknown name; an
// empty name returns items unchanged.
func ByName[T Item](name string, items []T) (out []T, ok bool) {
	switch name {
	case "":
		return items, true
	case ViewPriority:
		return PriorityInbox(items), true
	case ViewInbox:
		return CVInbox(items), true
	case ViewInterview:
		return Interview(items), true
	case ViewVerification:
		return Verification(items), true
	case ViewHired:
		return Hired(items), true
	}
	return nil, false
}

// Counts is the dashboard summary of the derived views.
type Counts struct {
	Total        int `json:"total"`
	Priority     int `json:"priority"`
	Inbox        int `json:"inbox"`
	Interview    int `json:"interview"`
	Verification int `json:"verification"`
	Hired        int `json:"hired"`
	Rejected     int `json:"rejected"`
}

func Count[T Item](items []T) Counts {
	c := Counts{Total: len(items)}
	for _, it := range items {
		if InPriorityInbox(it) {
			c.Priority++
		}
		if InCVInbox(it) {
			c.Inbox++
		}
		switch it.PipelineStatus() {
		case StatusInterviewPending:
			c.Interview++
		case StatusInterviewApproved:
			c.Verification++
		case StatusHired:
			c.Hired++
		case StatusRejected:
			c.Rejected++
		}
	}
	return c
}
