package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/domain/applicant"
	"github.com/linskybing/hris-cloud/internal/domain/audit"
	"github.com/linskybing/hris-cloud/internal/domain/employee"
	"github.com/linskybing/hris-cloud/internal/notify"
	"github.com/linskybing/hris-cloud/internal/repository"
	"github.com/linskybing/hris-cloud/internal/storage"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"github.com/linskybing/hris-cloud/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const notifyTimeout = 30 * time.Second

// CVReader validates an uploaded CV and returns its text.
type CVReader interface {
	Read(fileName string, content []byte) (string, error)
}

type ScoreQueue interface {
	Enqueue(id uuid.UUID)
}

type ApplicantService struct {
	Repos    *repository.Repos
	Projects *ProjectService
	Reader   CVReader
	Store    storage.ObjectStore
	Notifier notify.Notifier
	Queue    ScoreQueue
	Watcher  *Watcher
}

func NewApplicantService(repos *repository.Repos, projects *ProjectService) *ApplicantService {
	return &ApplicantService{
		Repos:    repos,
		Projects: projects,
		Notifier: notify.LogNotifier{},
	}
}

// ApplyTarget identifies the posting of a public submission. APIKey wins
// when both are set.
type ApplyTarget struct {
	APIKey    string
	ProjectID string
}

// Apply accepts a public submission. A CV already submitted to the same
// project returns the existing applicant with created=false.
func (s *ApplicantService) Apply(ctx context.Context, target ApplyTarget, sub applicant.Submission) (*applicant.Applicant, bool, error) {
	projectID, err := s.resolveTarget(target)
	if err != nil {
		return nil, false, err
	}
	p, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrProjectNotFound
		}
		return nil, false, err
	}
	if !p.IsActive {
		return nil, false, ErrPositionClosed
	}

	hash := utils.HashContent(sub.Content)
	existing, err := s.Repos.Applicant.FindByProjectAndHash(projectID, hash)
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	text, err := s.Reader.Read(sub.FileName, sub.Content)
	if err != nil {
		return nil, false, err
	}

	status, err := pipeline.Next("", pipeline.ActionSubmit)
	if err != nil {
		return nil, false, err
	}
	a := &applicant.Applicant{
		ProjectID: projectID,
		Name:      strings.TrimSpace(sub.Name),
		Email:     strings.TrimSpace(sub.Email),
		CVText:    text,
		CVHash:    hash,
		Status:    status,
	}

	if s.Store != nil {
		key := fmt.Sprintf("cvs/%s/%s%s", projectID, hash, strings.ToLower(filepath.Ext(sub.FileName)))
		if err := s.Store.Put(ctx, key, sub.Content, contentType(sub.FileName)); err != nil {
			log.Printf("[apply] failed to store CV %s: %v", key, err)
		} else {
			a.CVObject = key
		}
	}

	if err := s.Repos.Applicant.CreateApplicant(a); err != nil {
		return nil, false, err
	}

	if s.Queue != nil {
		s.Queue.Enqueue(a.ID)
	}
	s.Watcher.Notify(projectID)
	return a, true, nil
}

func (s *ApplicantService) resolveTarget(t ApplyTarget) (uuid.UUID, error) {
	if t.APIKey != "" {
		return s.Projects.ResolveAPIKey(t.APIKey)
	}
	id, err := uuid.Parse(strings.TrimSpace(t.ProjectID))
	if err != nil {
		return uuid.Nil, ErrProjectNotFound
	}
	return id, nil
}

func contentType(fileName string) string {
	if strings.EqualFold(filepath.Ext(fileName), ".docx") {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/pdf"
}

func (s *ApplicantService) GetApplicant(id uuid.UUID) (*applicant.Applicant, error) {
	a, err := s.Repos.Applicant.GetApplicantByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListApplicants returns a project's applicants by descending score,
// optionally narrowed to a named view.
func (s *ApplicantService) ListApplicants(projectID uuid.UUID, view string) ([]applicant.Applicant, error) {
	list, err := s.Repos.Applicant.ListApplicantsByProject(projectID)
	if err != nil {
		return nil, err
	}
	out, ok := pipeline.ByName(view, list)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
	if out == nil {
		out = []applicant.Applicant{}
	}
	return out, nil
}

// ListAll returns every applicant across the owner's projects, newest first,
// with project_name filled in.
func (s *ApplicantService) ListAll(ownerID string) ([]applicant.Applicant, error) {
	projects, err := s.Repos.Project.ListProjectsByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(projects))
	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
		ids = append(ids, p.ID)
	}

	list, err := s.Repos.Applicant.ListApplicantsByProjects(ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].ProjectName = names[list[i].ProjectID]
	}
	return list, nil
}

func (s *ApplicantService) Summary(projectID uuid.UUID) (pipeline.Counts, error) {
	list, err := s.Repos.Applicant.ListApplicantsByProject(projectID)
	if err != nil {
		return pipeline.Counts{}, err
	}
	return pipeline.Count(list), nil
}

// Transition moves an applicant to the requested status when the pipeline
// table allows it. Hiring goes through Verify instead.
func (s *ApplicantService) Transition(c *gin.Context, id uuid.UUID, requested string) (*applicant.Applicant, error) {
	to, err := pipeline.ParseStatus(requested)
	if err != nil {
		return nil, err
	}
	a, err := s.GetApplicant(id)
	if err != nil {
		return nil, err
	}
	old := *a

	t, err := pipeline.Resolve(a.Status, to)
	if err != nil {
		return nil, err
	}
	if t.Action == pipeline.ActionVerify {
		return nil, ErrUseVerifyEndpoint
	}

	moved := old
	moved.Status = t.To
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Applicant.UpdateStatus(a.ID, a.Status, t.To); err != nil {
			if errors.Is(err, repository.ErrStatusChanged) {
				return ErrStatusConflict
			}
			return err
		}
		return utils.RecordAudit(c, r.Audit, string(t.Action), audit.ResourceApplicant, a.ID.String(), old, moved, t.Label)
	})
	if err != nil {
		return nil, err
	}
	a.Status = t.To

	s.sendDecision(*a)
	s.Watcher.Notify(a.ProjectID)
	return a, nil
}

func (s *ApplicantService) sendDecision(a applicant.Applicant) {
	if s.Notifier == nil {
		return
	}
	projectName := ""
	if p, err := s.Repos.Project.GetProjectByID(a.ProjectID); err == nil {
		projectName = p.Name
	}
	d := notify.Decision{To: a.Email, CandidateName: a.Name, ProjectName: projectName, Status: a.Status}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.Notifier.SendDecision(ctx, d); err != nil {
			log.Printf("[notify] failed to email %s: %v", d.To, err)
		}
	}()
}

// Verify hires an interview-approved applicant: it creates the employee
// record and sets the status to hired in one transaction.
func (s *ApplicantService) Verify(c *gin.Context, id uuid.UUID, form pipeline.VerifyForm) (*employee.Employee, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	joinDate, err := form.ParsedJoinDate()
	if err != nil {
		return nil, err
	}

	var hired employee.Employee
	var a applicant.Applicant
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		found, err := r.Applicant.GetApplicantByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicantNotFound
			}
			return err
		}
		a = found

		t, err := pipeline.Lookup(a.Status, pipeline.ActionVerify)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNotInterviewApproved, err)
		}

		p, err := r.Project.GetProjectByID(a.ProjectID)
		if err != nil {
			return err
		}
		if _, err := r.Employee.FindByEmail(p.OrgID, a.Email); err == nil {
			return ErrDuplicateEmployee
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		applicantID := a.ID
		hired = employee.Employee{
			OrgID:          p.OrgID,
			ApplicantID:    &applicantID,
			Name:           a.Name,
			Email:          a.Email,
			Role:           strings.TrimSpace(form.Role),
			Department:     strings.TrimSpace(form.Department),
			LeaveRemaining: form.LeaveRemaining,
			Status:         employee.StatusActive,
			JoinDate:       datatypes.Date(joinDate),
		}
		if err := r.Employee.CreateEmployee(&hired); err != nil {
			return err
		}

		if err := r.Applicant.UpdateStatus(a.ID, a.Status, t.To); err != nil {
			if errors.Is(err, repository.ErrStatusChanged) {
				return ErrStatusConflict
			}
			return err
		}
		return utils.RecordAudit(c, r.Audit, string(t.Action), audit.ResourceApplicant, a.ID.String(), a, hired, "Candidate verified and hired")
	})
	if err != nil {
		return nil, err
	}

	s.Watcher.Notify(a.ProjectID)
	return &hired, nil
}

func (s *ApplicantService) DeleteApplicant(c *gin.Context, id uuid.UUID) error {
	a, err := s.GetApplicant(id)
	if err != nil {
		return err
	}
	if err := s.Repos.Applicant.DeleteApplicant(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete", audit.ResourceApplicant, id.String(), a, nil, "Applicant archived", s.Repos.Audit)
	s.Watcher.Notify(a.ProjectID)
	return nil
}
