package notify

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/linskybing/hris-cloud/pkg/pipeline"
)

// Decision describes a candidate-facing outcome worth an e-mail.
type Decision struct {
	To            string
	CandidateName string
	ProjectName   string
	Status        pipeline.Status
}

type Notifier interface {
	SendDecision(ctx context.Context, d Decision) error
}

// Message is a rendered e-mail. ok is false for statuses that send nothing.
type Message struct {
	Subject string
	HTML    string
}

// Render builds the e-mail for a status the candidate should hear about.
func Render(d Decision) (Message, bool) {
	name := html.EscapeString(d.CandidateName)
	project := html.EscapeString(d.ProjectName)

	switch d.Status {
	case pipeline.StatusInterviewPending:
		return Message{
			Subject: fmt.Sprintf("Good News regarding your application for %s", d.ProjectName),
			HTML: fmt.Sprintf(`<h1>Congratulations, %s!</h1>
<p>We are pleased to inform you that your application for <strong>%s</strong> is moving forward to the interview stage.</p>
<p>Our team will contact you shortly to schedule an interview.</p>
<br>
<p>Best regards,<br>Recruitment Team</p>`, name, project),
		}, true
	case pipeline.StatusRejected:
		return Message{
			Subject: fmt.Sprintf("Update on your application for %s", d.ProjectName),
			HTML: fmt.Sprintf(`<p>Dear %s,</p>
<p>Thank you for your interest in the <strong>%s</strong> position.</p>
<p>After careful consideration, we regret to inform you that we will not be moving forward with your application at this time.</p>
<p>We wish you the best in your job search.</p>
<br>
<p>Best regards,<br>Recruitment Team</p>`, name, project),
		}, true
	default:
		return Message{}, false
	}
}

// LogNotifier prints instead of sending. Used when no provider key is set.
type LogNotifier struct{}

func (LogNotifier) SendDecision(_ context.Context, d Decision) error {
	if _, ok := Render(d); !ok {
		return nil
	}
	log.Printf("[notify] mock email to=%s status=%s project=%q", d.To, d.Status, d.ProjectName)
	return nil
}
