package hrisclient

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory applicant list behind the staff endpoints the
// board uses.
type fakeAPI struct {
	mu         sync.Mutex
	applicants []Applicant
	lists      int
	patches    []string
	verifies   int
	deletes    int
	failPatch  string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/applicants":
		f.lists++
		writeJSON(w, http.StatusOK, f.applicants)
	case r.Method == http.MethodPatch:
		var body struct {
			Status pipeline.Status `json:"status"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.patches = append(f.patches, string(body.Status))
		if f.failPatch != "" {
			writeJSON(w, http.StatusConflict, map[string]string{"error": f.failPatch})
			return
		}
		id := r.URL.Path[len("/applicants/"):]
		for i := range f.applicants {
			if f.applicants[i].ID == id {
				f.applicants[i].Status = body.Status
				writeJSON(w, http.StatusOK, f.applicants[i])
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Applicant not found"})
	case r.Method == http.MethodPost:
		f.verifies++
		f.applicants[0].Status = pipeline.StatusHired
		writeJSON(w, http.StatusOK, HireResult{Status: "success", Message: "Candidate verified and hired", EmployeeID: "e1"})
	case r.Method == http.MethodDelete:
		f.deletes++
		f.applicants = f.applicants[1:]
		w.WriteHeader(http.StatusNoContent)
	}
}

func intPtr(v int) *int { return &v }

func newBoard(t *testing.T, api *fakeAPI) *Board {
	t.Helper()
	b := NewBoard(newTestClient(t, api), "p1")
	require.NoError(t, b.Refresh(context.Background()))
	return b
}

func confirmWith(answer bool, seen *[]*pipeline.Transition) Confirmer {
	return ConfirmFunc(func(_ context.Context, _ Applicant, t *pipeline.Transition) (bool, error) {
		*seen = append(*seen, t)
		return answer, nil
	})
}

func TestBoardViews(t *testing.T) {
	api := &fakeAPI{applicants: []Applicant{
		{ID: "a1", Status: pipeline.StatusProcessing, AIScore: intPtr(91)},
		{ID: "a2", Status: pipeline.StatusProcessing, AIScore: intPtr(40)},
		{ID: "a3", Status: pipeline.StatusInterviewPending, AIScore: intPtr(75)},
		{ID: "a4", Status: pipeline.StatusInterviewApproved},
		{ID: "a5", Status: pipeline.StatusHired},
	}}
	b := newBoard(t, api)

	assert.Len(t, b.Snapshot(), 5)
	assert.Equal(t, "a1", b.PriorityInbox()[0].ID)
	assert.Len(t, b.PriorityInbox(), 1)
	assert.Len(t, b.CVInbox(), 3)
	assert.Len(t, b.Interview(), 1)
	assert.Len(t, b.Verification(), 1)
	assert.Len(t, b.Hired(), 1)

	v, err := b.View(pipeline.ViewInbox)
	require.NoError(t, err)
	assert.Len(t, v, 3)
	_, err = b.View("archived")
	assert.Error(t, err)

	assert.Empty(t, b.Allowed("a5"))
	assert.Len(t, b.Allowed("a1"), 2)
	assert.Equal(t, 5, b.Counts().Total)
	assert.False(t, b.RefreshedAt().IsZero())
}

func TestBoardMoveRefetches(t *testing.T) {
	api := &fakeAPI{applicants: []Applicant{{ID: "a1", Status: pipeline.StatusProcessing}}}
	b := newBoard(t, api)

	var seen []*pipeline.Transition
	require.NoError(t, b.Move(context.Background(), "a1", pipeline.ActionMoveToInterview, confirmWith(true, &seen)))
	assert.Empty(t, seen, "move to interview needs no confirmation")
	assert.Equal(t, []string{"interview_pending"}, api.patches)
	assert.Equal(t, 2, api.lists)

	a, _ := b.Get("a1")
	assert.Equal(t, pipeline.StatusInterviewPending, a.Status)
}

func TestBoardMoveConfirmation(t *testing.T) {
	api := &fakeAPI{applicants: []Applicant{{ID: "a1", Status: pipeline.StatusInterviewPending}}}
	b := newBoard(t, api)
	ctx := context.Background()

	var seen []*pipeline.Transition
	err := b.Move(ctx, "a1", pipeline.ActionApprove, confirmWith(false, &seen))
	assert.ErrorIs(t, err, ErrCancelled)
	require.Len(t, seen, 1)
	assert.Equal(t, "Approve", seen[0].Label)

	assert.ErrorIs(t, b.Move(ctx, "a1", pipeline.ActionReject, nil), ErrConfirmationRequired)
	assert.Empty(t, api.patches)

	require.NoError(t, b.Move(ctx, "a1", pipeline.ActionReject, confirmWith(true, &seen)))
	assert.Equal(t, []string{"rejected"}, api.patches)
}

func TestBoardTerminalGuard(t *testing.T) {
	api := &fakeAPI{applicants: []Applicant{
		{ID: "a1", Status: pipeline.StatusHired},
		{ID: "a2", Status: pipeline.StatusProcessing},
	}}
	b := newBoard(t, api)
	ctx := context.Background()

	err := b.Move(ctx, "a1", pipeline.ActionReject, AlwaysConfirm)
	assert.ErrorIs(t, err, pipeline.ErrTerminalState)

	err = b.Move(ctx, "a2", pipeline.ActionApprove, AlwaysConfirm)
	assert.ErrorIs(t, err, pipeline.ErrIllegalTransition)

	assert.ErrorIs(t, b.Move(ctx, "zz", pipeline.ActionReject, AlwaysConfirm), ErrUnknownApplicant)
	assert.Empty(t, api.patches)
	assert.Equal(t, 1, api.lists)
}

func TestBoardFailedMoveKeepsCollection(t *testing.T) {
	api := &fakeAPI{
		applicants: []Applicant{{ID: "a1", Status: pipeline.StatusProcessing}},
		failPatch:  "Status changed by someone else, refresh and retry",
	}
	b := newBoard(t, api)
	before := b.Snapshot()

	err := b.Move(context.Background(), "a1", pipeline.ActionMoveToInterview, nil)
	require.Error(t, err)
	assert.Equal(t, "Status changed by someone else, refresh and retry", err.Error())
	assert.Equal(t, before, b.Snapshot())
	assert.Equal(t, 1, api.lists, "no refetch after a failed mutation")
	assert.Len(t, api.patches, 1, "no retry")
}

func TestBoardVerify(t *testing.T) {
	api := &fakeAPI{applicants: []Applicant{{ID: "a1", Status: pipeline.StatusInterviewApproved}}}
	b := newBoard(t, api)
	ctx := context.Background()

	_, err := b.Verify(ctx, "a1", pipeline.VerifyForm{Role: "Engineer", JoinDate: "2026-11-01"})
	assert.ErrorIs(t, err, pipeline.ErrDepartmentRequired)
	_, err = b.Verify(ctx, "a1", pipeline.VerifyForm{Department: "Eng", Role: "Engineer", JoinDate: "01/11/2026"})
	assert.ErrorIs(t, err, pipeline.ErrJoinDateFormat)
	assert.Zero(t, api.verifies)

	err = b.Move(ctx, "a1", pipeline.ActionVerify, AlwaysConfirm)
	assert.ErrorIs(t, err, ErrUseVerify)

	res, err := b.Verify(ctx, "a1", pipeline.VerifyForm{Department: "Eng", Role: "Engineer", JoinDate: "2026-11-01", LeaveRemaining: 12})
	require.NoError(t, err)
	assert.Equal(t, "e1", res.EmployeeID)
	assert.Len(t, b.Hired(), 1)
}

func TestBoardDelete(t *testing.T) {
	api := &fakeAPI{applicants: []Applicant{{ID: "a1", Status: pipeline.StatusRejected}}}
	b := newBoard(t, api)
	ctx := context.Background()

	var seen []*pipeline.Transition
	assert.ErrorIs(t, b.Delete(ctx, "a1", confirmWith(false, &seen)), ErrCancelled)
	require.Len(t, seen, 1)
	assert.Nil(t, seen[0])
	assert.Zero(t, api.deletes)

	require.NoError(t, b.Delete(ctx, "a1", AlwaysConfirm))
	assert.Equal(t, 1, api.deletes)
	assert.Empty(t, b.Snapshot())
}

func TestBoardStaleFetchIsDropped(t *testing.T) {
	b := NewBoard(nil, "p1")
	older := b.begin()
	b.apply(b.begin(), []Applicant{{ID: "new"}})
	b.apply(older, []Applicant{{ID: "old"}})

	snap := b.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "new", snap[0].ID)

	// a fetch started before an accepted mutation is dropped even when no
	// newer list has arrived yet
	inFlight := b.begin()
	b.settle()
	b.apply(inFlight, []Applicant{{ID: "stale"}})
	assert.Equal(t, "new", b.Snapshot()[0].ID)

	b.apply(b.begin(), []Applicant{{ID: "after"}})
	assert.Equal(t, "after", b.Snapshot()[0].ID)
}

func TestBoardPollStartedBeforeMoveIsDropped(t *testing.T) {
	api := &fakeAPI{applicants: []Applicant{{ID: "a1", Status: pipeline.StatusProcessing}}}
	held := make(chan struct{})
	served := make(chan struct{})
	release := make(chan struct{})
	var releaseOnce sync.Once
	var gets atomic.Int32

	// the second GET is the poller's first fetch; it captures the list
	// before the move and answers only after the move has refetched
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && gets.Add(1) == 2 {
			api.mu.Lock()
			stale := append([]Applicant(nil), api.applicants...)
			api.mu.Unlock()
			close(held)
			<-release
			writeJSON(w, http.StatusOK, stale)
			close(served)
			return
		}
		api.ServeHTTP(w, r)
	}))
	t.Cleanup(func() { releaseOnce.Do(func() { close(release) }) })

	ctx := context.Background()
	b := NewBoard(c, "p1")
	require.NoError(t, b.Refresh(ctx))

	stop := b.Watch(ctx, &Poller{Client: c, Interval: time.Hour}, nil)
	defer stop()

	select {
	case <-held:
	case <-time.After(2 * time.Second):
		t.Fatal("poll never started")
	}

	require.NoError(t, b.Move(ctx, "a1", pipeline.ActionMoveToInterview, nil))
	a, _ := b.Get("a1")
	require.Equal(t, pipeline.StatusInterviewPending, a.Status)

	releaseOnce.Do(func() { close(release) })
	select {
	case <-served:
	case <-time.After(2 * time.Second):
		t.Fatal("stale poll never answered")
	}

	assert.Never(t, func() bool {
		a, _ := b.Get("a1")
		return a.Status == pipeline.StatusProcessing
	}, 200*time.Millisecond, 10*time.Millisecond)
}

func TestBoardSettlesWhenRefetchFails(t *testing.T) {
	api := &fakeAPI{applicants: []Applicant{{ID: "a1", Status: pipeline.StatusProcessing}}}
	var gets atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && gets.Add(1) > 1 {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
			return
		}
		api.ServeHTTP(w, r)
	}))

	ctx := context.Background()
	b := NewBoard(c, "p1")
	require.NoError(t, b.Refresh(ctx))
	inFlight := b.begin()

	err := b.Move(ctx, "a1", pipeline.ActionMoveToInterview, nil)
	require.Error(t, err)
	assert.Equal(t, []string{"interview_pending"}, api.patches)

	b.apply(inFlight, []Applicant{{ID: "a1", Status: pipeline.StatusProcessing}, {ID: "ghost"}})
	_, ok := b.Get("ghost")
	assert.False(t, ok)
}
