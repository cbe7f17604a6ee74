package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/cvtext"
	"github.com/linskybing/hris-cloud/internal/domain/audit"
	"github.com/linskybing/hris-cloud/internal/domain/policy"
	"github.com/linskybing/hris-cloud/internal/llm"
	"github.com/linskybing/hris-cloud/internal/repository"
	"github.com/linskybing/hris-cloud/internal/storage"
	"github.com/linskybing/hris-cloud/pkg/utils"
)

const (
	PolicyPrefix  = "policies/"
	MaxPolicySize = 20 * 1024 * 1024

	DefaultPolicyLogLimit = 50

	NoPolicyAnswer    = "Sorry, company policy documents are not available yet. Please contact HR."
	NoPolicyReasoning = "No policy documents found in storage."
	PolicyErrorAnswer = "The assistant ran into a problem while processing your question. Please try again later or contact HR."
)

type Answerer interface {
	Answer(ctx context.Context, policyText, employeeContext, question string) (llm.PolicyAnswer, error)
}

type PolicyService struct {
	Repos    *repository.Repos
	Store    storage.ObjectStore
	Answerer Answerer
	// Employees scopes the optional employee context to the caller.
	Employees *EmployeeService
	// ExtractPDF defaults to cvtext.ExtractPDF.
	ExtractPDF func([]byte) (string, error)
}

func NewPolicyService(repos *repository.Repos, store storage.ObjectStore, answerer Answerer) *PolicyService {
	return &PolicyService{
		Repos:      repos,
		Store:      store,
		Answerer:   answerer,
		Employees:  NewEmployeeService(repos),
		ExtractPDF: cvtext.ExtractPDF,
	}
}

// ValidPolicyName rejects names that could escape the policy folder.
func ValidPolicyName(name string) bool {
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return false
	}
	return true
}

func (s *PolicyService) Upload(c *gin.Context, name string, content []byte) (*policy.Document, error) {
	if !ValidPolicyName(name) {
		return nil, ErrInvalidFileName
	}
	if !strings.EqualFold(path.Ext(name), ".pdf") {
		return nil, ErrOnlyPDF
	}
	if format, err := cvtext.ValidateFile(name, content, MaxPolicySize); err != nil {
		return nil, err
	} else if format != cvtext.FormatPDF {
		return nil, ErrOnlyPDF
	}

	if err := s.Store.Put(c.Request.Context(), PolicyPrefix+name, content, cvtext.MIMEPDF); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	doc := &policy.Document{Name: name, Size: int64(len(content))}
	utils.LogAuditWithConsole(c, "upload", audit.ResourcePolicy, name, nil, doc, "", s.Repos.Audit)
	return doc, nil
}

func (s *PolicyService) ListFiles(ctx context.Context) ([]policy.Document, error) {
	objs, err := s.Store.List(ctx, PolicyPrefix)
	if err != nil {
		return nil, err
	}
	docs := make([]policy.Document, 0, len(objs))
	for _, o := range objs {
		name := strings.TrimPrefix(o.Key, PolicyPrefix)
		if !strings.EqualFold(path.Ext(name), ".pdf") {
			continue
		}
		docs = append(docs, policy.Document{Name: name, Size: o.Size, UpdatedAt: o.LastModified})
	}
	return docs, nil
}

func (s *PolicyService) DeleteFile(c *gin.Context, name string) error {
	if !ValidPolicyName(name) {
		return ErrInvalidFileName
	}
	if err := s.Store.Delete(c.Request.Context(), PolicyPrefix+name); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return ErrPolicyNotFound
		}
		return err
	}
	utils.LogAuditWithConsole(c, "delete", audit.ResourcePolicy, name, nil, nil, "", s.Repos.Audit)
	return nil
}

// policyText concatenates the text of every readable policy PDF.
func (s *PolicyService) policyText(ctx context.Context) string {
	docs, err := s.ListFiles(ctx)
	if err != nil {
		log.Printf("[policy] list documents: %v", err)
		return ""
	}
	extract := s.ExtractPDF
	if extract == nil {
		extract = cvtext.ExtractPDF
	}

	var b strings.Builder
	for _, d := range docs {
		data, err := s.Store.Get(ctx, PolicyPrefix+d.Name)
		if err != nil {
			log.Printf("[policy] read %s: %v", d.Name, err)
			continue
		}
		text, err := extract(data)
		if err != nil {
			log.Printf("[policy] extract %s: %v", d.Name, err)
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// Chat answers an employee question from the stored policy documents and
// logs the exchange. employeeID must belong to one of the caller's
// organizations. AI failures produce a fixed apology, not an error.
func (s *PolicyService) Chat(ctx context.Context, userID, query string, employeeID *uuid.UUID) (policy.Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return policy.Answer{}, ErrQueryRequired
	}

	employeeContext := ""
	if employeeID != nil {
		e, err := s.Employees.GetEmployee(userID, *employeeID)
		if err != nil {
			return policy.Answer{}, err
		}
		employeeContext = fmt.Sprintf("Name: %s\nDepartment: %s\nRole: %s\nLeave remaining: %d days",
			e.Name, e.Department, e.Role, e.LeaveRemaining)
	}

	text := s.policyText(ctx)
	if text == "" {
		return policy.Answer{Answer: NoPolicyAnswer, Reasoning: NoPolicyReasoning}, nil
	}

	if s.Answerer == nil {
		return policy.Answer{Answer: PolicyErrorAnswer, Reasoning: llm.ErrDisabled.Error()}, nil
	}
	res, err := s.Answerer.Answer(ctx, text, employeeContext, query)
	if err != nil {
		log.Printf("[policy] AI error: %v", err)
		return policy.Answer{Answer: PolicyErrorAnswer, Reasoning: err.Error()}, nil
	}

	entry := &policy.Log{
		UserID:     userID,
		EmployeeID: employeeID,
		Query:      query,
		Answer:     res.Answer,
		Reasoning:  res.Reasoning,
	}
	if err := s.Repos.Policy.CreateLog(entry); err != nil {
		log.Printf("[policy] failed to store log: %v", err)
	}
	return policy.Answer{Answer: res.Answer, Reasoning: res.Reasoning}, nil
}

func (s *PolicyService) ListLogs(limit int) ([]policy.Log, error) {
	if limit <= 0 {
		limit = DefaultPolicyLogLimit
	}
	return s.Repos.Policy.ListLogs(limit)
}
