package application

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/domain/audit"
	"github.com/linskybing/hris-cloud/internal/domain/project"
	"github.com/linskybing/hris-cloud/internal/repository"
	"github.com/linskybing/hris-cloud/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// APIKeyPrefix starts every issued project key.
const APIKeyPrefix = "hris_"

type ProjectService struct {
	Repos *repository.Repos
	Orgs  *OrganizationService
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
		Orgs:  NewOrganizationService(repos),
	}
}

func (s *ProjectService) GetProject(id uuid.UUID) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if o, err := s.Repos.Organization.GetOrganizationByID(p.OrgID); err == nil {
		p.OrgName = o.Name
	}
	return &p, nil
}

// ListProjects lists the owner's projects in orgID, or in their default
// organization when orgID is nil.
func (s *ProjectService) ListProjects(ownerID string, orgID *uuid.UUID) ([]project.Project, error) {
	o, err := s.Orgs.Scope(ownerID, orgID)
	if err != nil {
		return nil, err
	}

	projects, err := s.Repos.Project.ListProjectsByOrg(o.ID)
	if err != nil {
		return nil, err
	}
	out := projects[:0]
	for _, p := range projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ProjectService) CreateProject(c *gin.Context, ownerID string, input project.CreateProjectDTO) (*project.Project, error) {
	o, err := s.Orgs.Scope(ownerID, input.OrgID)
	if err != nil {
		return nil, err
	}

	p := &project.Project{
		OrgID:      o.ID,
		OwnerID:    ownerID,
		Name:       input.Name,
		TemplateID: input.TemplateID,
		IsActive:   true,
	}
	if err := s.Repos.Project.CreateProject(p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", audit.ResourceProject, p.ID.String(), nil, p, "", s.Repos.Audit)
	return p, nil
}

// UpdateProject applies the non-nil fields. org_id never changes and closing
// a posting leaves its applicants untouched.
func (s *ProjectService) UpdateProject(c *gin.Context, id uuid.UUID, input project.UpdateProjectDTO) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	oldProject := p

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Requirements != nil {
		p.Requirements = *input.Requirements
	}
	if input.Benefits != nil {
		p.Benefits = *input.Benefits
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	if err := s.Repos.Project.UpdateProject(&p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", audit.ResourceProject, p.ID.String(), oldProject, p, "", s.Repos.Audit)
	return &p, nil
}

// DeleteProject archives the project and its applicants together.
func (s *ProjectService) DeleteProject(c *gin.Context, id uuid.UUID) error {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Applicant.DeleteApplicantsByProject(id); err != nil {
			return err
		}
		return r.Project.DeleteProject(id)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", audit.ResourceProject, id.String(), p, nil, "Project archived", s.Repos.Audit)
	return nil
}

// CreateAPIKey issues a new key and returns its plaintext, which is not
// recoverable afterwards.
func (s *ProjectService) CreateAPIKey(c *gin.Context, projectID uuid.UUID, ownerID string) (*project.APIKey, string, error) {
	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrProjectNotFound
		}
		return nil, "", err
	}

	prefix, secret, err := newKeyParts()
	if err != nil {
		return nil, "", err
	}
	plain := APIKeyPrefix + prefix + "_" + secret
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	k := &project.APIKey{
		ProjectID: projectID,
		OwnerID:   ownerID,
		Prefix:    prefix,
		KeyHash:   string(hash),
	}
	if err := s.Repos.Project.CreateAPIKey(k); err != nil {
		return nil, "", err
	}

	utils.LogAuditWithConsole(c, "create", audit.ResourceAPIKey, k.ID.String(), nil, k, "", s.Repos.Audit)
	return k, plain, nil
}

// ResolveAPIKey returns the project a key was issued for.
func (s *ProjectService) ResolveAPIKey(raw string) (uuid.UUID, error) {
	prefix, ok := keyPrefix(raw)
	if !ok {
		return uuid.Nil, ErrInvalidAPIKey
	}
	k, err := s.Repos.Project.GetAPIKeyByPrefix(prefix)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrInvalidAPIKey
		}
		return uuid.Nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(k.KeyHash), []byte(raw)) != nil {
		return uuid.Nil, ErrInvalidAPIKey
	}
	return k.ProjectID, nil
}

func newKeyParts() (prefix, secret string, err error) {
	p := make([]byte, 4)
	if _, err = rand.Read(p); err != nil {
		return "", "", err
	}
	sec := make([]byte, 24)
	if _, err = rand.Read(sec); err != nil {
		return "", "", err
	}
	return hex.EncodeToString(p), base64.RawURLEncoding.EncodeToString(sec), nil
}

func keyPrefix(raw string) (string, bool) {
	if !strings.HasPrefix(raw, APIKeyPrefix) {
		return "", false
	}
	parts := strings.SplitN(strings.TrimPrefix(raw, APIKeyPrefix), "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return parts[0], true
}
