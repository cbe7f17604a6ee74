package scoring

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/domain/applicant"
	"github.com/linskybing/hris-cloud/internal/llm"
	"github.com/linskybing/hris-cloud/internal/repository"
	"gorm.io/gorm"
)

const (
	MinCVLength = 50

	ReasonTooShort = "CV content too short or empty."
	ReasonFailed   = "AI scoring failed due to error."

	queueSize  = 100
	pollBatch  = 10
	jobTimeout = 2 * time.Minute
)

type Scorer interface {
	Score(ctx context.Context, c llm.Candidate) (llm.Assessment, error)
}

// Worker scores new applicants in the background. Jobs arrive through
// Enqueue and through a poller that picks up unscored rows, so work lost on
// restart is resumed. Scoring never touches the pipeline status.
type Worker struct {
	applicants repository.ApplicantRepo
	projects   repository.ProjectRepo
	scorer     Scorer

	// OnScored runs after a score is stored.
	OnScored func(a applicant.Applicant)

	concurrency int
	interval    time.Duration
	queue       chan uuid.UUID

	mu       sync.Mutex
	inflight map[uuid.UUID]bool

	wg       sync.WaitGroup
	stopOnce sync.Once
	stop     chan struct{}
}

func NewWorker(repos *repository.Repos, scorer Scorer, concurrency int, interval time.Duration) *Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Worker{
		applicants:  repos.Applicant,
		projects:    repos.Project,
		scorer:      scorer,
		concurrency: concurrency,
		interval:    interval,
		queue:       make(chan uuid.UUID, queueSize),
		inflight:    make(map[uuid.UUID]bool),
		stop:        make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) {
	log.Printf("[scoring] starting %d workers", w.concurrency)
	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.process(ctx, i+1)
	}
	if w.interval > 0 {
		w.wg.Add(1)
		go w.poll(ctx)
	}
}

func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
	log.Println("[scoring] stopped")
}

// Enqueue never blocks; a full queue leaves the job to the poller.
func (w *Worker) Enqueue(id uuid.UUID) {
	w.mu.Lock()
	if w.inflight[id] {
		w.mu.Unlock()
		return
	}
	w.inflight[id] = true
	w.mu.Unlock()

	select {
	case w.queue <- id:
	default:
		w.done(id)
		log.Printf("[scoring] queue full, %s left for the poller", id)
	}
}

func (w *Worker) done(id uuid.UUID) {
	w.mu.Lock()
	delete(w.inflight, id)
	w.mu.Unlock()
}

func (w *Worker) process(ctx context.Context, n int) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case id := <-w.queue:
			if err := w.ScoreOne(ctx, id); err != nil {
				log.Printf("[scoring] worker %d: applicant %s: %v", n, id, err)
			}
			w.done(id)
		}
	}
}

func (w *Worker) poll(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case <-ticker.C:
			pending, err := w.applicants.ListUnscored(pollBatch)
			if err != nil {
				log.Printf("[scoring] failed to fetch unscored applicants: %v", err)
				continue
			}
			for _, a := range pending {
				w.Enqueue(a.ID)
			}
		}
	}
}

// ScoreOne scores a single applicant if it is still unscored.
func (w *Worker) ScoreOne(ctx context.Context, id uuid.UUID) error {
	a, err := w.applicants.GetApplicantByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if a.Scored() {
		return nil
	}

	result := w.assess(ctx, a)
	stored, err := w.applicants.SetScore(a.ID, result.Score, result.Reasoning)
	if err != nil {
		return err
	}
	if !stored {
		return nil
	}

	a.AIScore = &result.Score
	a.AIReasoning = &result.Reasoning
	log.Printf("[scoring] applicant %s scored %d", a.ID, result.Score)
	if w.OnScored != nil {
		w.OnScored(a)
	}
	return nil
}

func (w *Worker) assess(ctx context.Context, a applicant.Applicant) llm.Assessment {
	if len(a.CVText) < MinCVLength {
		return llm.Assessment{Score: 0, Reasoning: ReasonTooShort}
	}

	c := llm.Candidate{Name: a.Name, Email: a.Email, CVText: a.CVText}
	if p, err := w.projects.GetProjectByID(a.ProjectID); err == nil {
		c.Position = p.Name
		c.Requirements = p.Requirements
	}

	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()
	res, err := w.scorer.Score(ctx, c)
	if err != nil {
		log.Printf("[scoring] AI error for %s: %v", a.ID, err)
		return llm.Assessment{Score: 0, Reasoning: ReasonFailed}
	}
	return res
}
