package hrisclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/linskybing/hris-cloud/pkg/pipeline"
)

var (
	ErrUnknownApplicant     = errors.New("applicant is not on this board")
	ErrConfirmationRequired = errors.New("this action needs confirmation")
	ErrCancelled            = errors.New("action cancelled")
	// ErrUseVerify is returned by Move for the verify action, which needs
	// the employee form and goes through Verify.
	ErrUseVerify = errors.New("use Verify to hire an applicant")
)

// Confirmer asks the user to confirm a destructive transition. A nil
// transition means the applicant is about to be deleted.
type Confirmer interface {
	Confirm(ctx context.Context, a Applicant, t *pipeline.Transition) (bool, error)
}

type ConfirmFunc func(ctx context.Context, a Applicant, t *pipeline.Transition) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, a Applicant, t *pipeline.Transition) (bool, error) {
	return f(ctx, a, t)
}

// AlwaysConfirm approves every prompt. Meant for scripts.
var AlwaysConfirm = ConfirmFunc(func(context.Context, Applicant, *pipeline.Transition) (bool, error) {
	return true, nil
})

// Board holds one project's applicants as last fetched from the server.
// Mutations go to the server first and the board refetches afterwards; it
// never edits its own copy in place.
type Board struct {
	client    *Client
	projectID string

	mu          sync.RWMutex
	applicants  []Applicant
	refreshedAt time.Time
	// seq numbers fetches as they start so an older response never
	// replaces a newer one. applied is the ticket of the installed list.
	seq     uint64
	applied uint64
}

func NewBoard(client *Client, projectID string) *Board {
	return &Board{client: client, projectID: projectID}
}

func (b *Board) ProjectID() string { return b.projectID }

// Refresh refetches the project's applicants. On error the current
// collection is kept.
func (b *Board) Refresh(ctx context.Context) error {
	seq := b.begin()
	list, err := b.client.ListApplicants(ctx, b.projectID, "")
	if err != nil {
		return err
	}
	b.apply(seq, list)
	return nil
}

// Replace installs a list fetched by the caller. It counts as started now.
func (b *Board) Replace(list []Applicant) {
	b.apply(b.begin(), list)
}

// begin hands out the ticket of a fetch about to start.
func (b *Board) begin() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	return b.seq
}

// settle drops every fetch started before a mutation the server accepted,
// whether or not the refetch that follows succeeds.
func (b *Board) settle() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.applied = b.seq
}

func (b *Board) apply(seq uint64, list []Applicant) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if seq < b.applied {
		return
	}
	b.applied = seq
	b.applicants = append([]Applicant(nil), list...)
	b.refreshedAt = time.Now()
}

// Snapshot returns a copy of the collection.
func (b *Board) Snapshot() []Applicant {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Applicant(nil), b.applicants...)
}

func (b *Board) RefreshedAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.refreshedAt
}

func (b *Board) Get(id string) (Applicant, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, a := range b.applicants {
		if a.ID == id {
			return a, true
		}
	}
	return Applicant{}, false
}

// View applies a named pipeline view to the current collection.
func (b *Board) View(name string) ([]Applicant, error) {
	out, ok := pipeline.ByName(name, b.Snapshot())
	if !ok {
		return nil, fmt.Errorf("unknown view %q", name)
	}
	return out, nil
}

func (b *Board) PriorityInbox() []Applicant { return pipeline.PriorityInbox(b.Snapshot()) }
func (b *Board) CVInbox() []Applicant       { return pipeline.CVInbox(b.Snapshot()) }
func (b *Board) Interview() []Applicant     { return pipeline.Interview(b.Snapshot()) }
func (b *Board) Verification() []Applicant  { return pipeline.Verification(b.Snapshot()) }
func (b *Board) Hired() []Applicant         { return pipeline.Hired(b.Snapshot()) }
func (b *Board) Counts() pipeline.Counts    { return pipeline.Count(b.Snapshot()) }

// Allowed lists the controls to render for an applicant. It is empty for
// hired and rejected applicants.
func (b *Board) Allowed(id string) []pipeline.Transition {
	a, ok := b.Get(id)
	if !ok {
		return nil
	}
	return pipeline.Allowed(a.Status)
}

// Move applies action to an applicant: it checks the transition against
// the table, asks for confirmation where the row requires it, issues one
// status update and refetches.
func (b *Board) Move(ctx context.Context, id string, action pipeline.Action, confirm Confirmer) error {
	a, ok := b.Get(id)
	if !ok {
		return ErrUnknownApplicant
	}
	t, err := pipeline.Lookup(a.Status, action)
	if err != nil {
		return err
	}
	if t.Action == pipeline.ActionVerify {
		return ErrUseVerify
	}
	if t.RequiresConfirmation {
		if err := ask(ctx, confirm, a, &t); err != nil {
			return err
		}
	}
	if _, err := b.client.UpdateApplicantStatus(ctx, id, t.To); err != nil {
		return err
	}
	b.settle()
	return b.Refresh(ctx)
}

// Verify hires an approved applicant. The form is checked before any
// request is made.
func (b *Board) Verify(ctx context.Context, id string, form pipeline.VerifyForm) (*HireResult, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	a, ok := b.Get(id)
	if !ok {
		return nil, ErrUnknownApplicant
	}
	if _, err := pipeline.Lookup(a.Status, pipeline.ActionVerify); err != nil {
		return nil, err
	}
	res, err := b.client.VerifyApplicant(ctx, id, form)
	if err != nil {
		return nil, err
	}
	b.settle()
	return res, b.Refresh(ctx)
}

// Delete removes an applicant after confirmation.
func (b *Board) Delete(ctx context.Context, id string, confirm Confirmer) error {
	a, ok := b.Get(id)
	if !ok {
		return ErrUnknownApplicant
	}
	if err := ask(ctx, confirm, a, nil); err != nil {
		return err
	}
	if err := b.client.DeleteApplicant(ctx, id); err != nil {
		return err
	}
	b.settle()
	return b.Refresh(ctx)
}

// Watch keeps the board current from sub until the returned stop func is
// called. onError, if set, receives subscription errors. Poller and
// SocketSubscriber number each fetch before it starts; lists from other
// subscribers are ordered by arrival.
func (b *Board) Watch(ctx context.Context, sub Subscriber, onError func(error)) (stop func()) {
	cb := func(ticket uint64, list []Applicant, err error) {
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		b.apply(ticket, list)
	}
	if ts, ok := sub.(ticketedSubscriber); ok {
		return ts.subscribe(ctx, b.projectID, b.begin, cb)
	}
	return sub.SubscribeToApplicants(ctx, b.projectID, func(list []Applicant, err error) {
		var ticket uint64
		if err == nil {
			ticket = b.begin()
		}
		cb(ticket, list, err)
	})
}

func ask(ctx context.Context, confirm Confirmer, a Applicant, t *pipeline.Transition) error {
	if confirm == nil {
		return ErrConfirmationRequired
	}
	ok, err := confirm.Confirm(ctx, a, t)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}
