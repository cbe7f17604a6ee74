package notify

import (
	"context"
	"log"

	"github.com/resend/resend-go/v2"
)

type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type ResendNotifier struct {
	emails emailSender
	from   string
}

func NewResendNotifier(apiKey, from string) *ResendNotifier {
	client := resend.NewClient(apiKey)
	return &ResendNotifier{emails: client.Emails, from: from}
}

func (n *ResendNotifier) SendDecision(ctx context.Context, d Decision) error {
	msg, ok := Render(d)
	if !ok {
		return nil
	}
	resp, err := n.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{d.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return err
	}
	log.Printf("[notify] email sent to %s: %s", d.To, resp.Id)
	return nil
}

// New picks Resend when a key is configured.
func New(apiKey, from string) Notifier {
	if apiKey == "" {
		return LogNotifier{}
	}
	return NewResendNotifier(apiKey, from)
}
