package application

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/domain/audit"
	"github.com/linskybing/hris-cloud/internal/domain/organization"
	"github.com/linskybing/hris-cloud/internal/repository"
	"github.com/linskybing/hris-cloud/pkg/utils"
	"gorm.io/gorm"
)

type OrganizationService struct {
	Repos *repository.Repos
}

func NewOrganizationService(repos *repository.Repos) *OrganizationService {
	return &OrganizationService{
		Repos: repos,
	}
}

func (s *OrganizationService) CreateOrganization(c *gin.Context, ownerID string, input organization.CreateOrganizationDTO) (*organization.Organization, error) {
	o := &organization.Organization{
		Name:    input.Name,
		OwnerID: ownerID,
	}
	if err := s.Repos.Organization.CreateOrganization(o); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", audit.ResourceOrganization, o.ID.String(), nil, o, "", s.Repos.Audit)
	return o, nil
}

func (s *OrganizationService) ListOrganizations(ownerID string) ([]organization.Organization, error) {
	return s.Repos.Organization.ListOrganizationsByOwner(ownerID)
}

// Resolve returns the owner's organization, creating the default one on
// first use. One HR owner maps to one organization.
func (s *OrganizationService) Resolve(ownerID string) (organization.Organization, error) {
	o, err := s.Repos.Organization.GetFirstByOwner(ownerID)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return organization.Organization{}, err
	}

	o = organization.Organization{Name: organization.DefaultName, OwnerID: ownerID}
	if err := s.Repos.Organization.CreateOrganization(&o); err != nil {
		return organization.Organization{}, fmt.Errorf("failed to initialize organization: %w", err)
	}
	return o, nil
}

// Scope picks the organization a request works in: orgID when given and
// owned by the caller, otherwise the caller's default organization.
func (s *OrganizationService) Scope(ownerID string, orgID *uuid.UUID) (organization.Organization, error) {
	if orgID != nil {
		return s.Owned(ownerID, *orgID)
	}
	return s.Resolve(ownerID)
}

// Owned loads orgID and checks it belongs to ownerID.
func (s *OrganizationService) Owned(ownerID string, orgID uuid.UUID) (organization.Organization, error) {
	o, err := s.Repos.Organization.GetOrganizationByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return o, ErrOrganizationNotFound
		}
		return o, err
	}
	if o.OwnerID != ownerID {
		return o, ErrForbidden
	}
	return o, nil
}
