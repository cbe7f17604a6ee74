package application

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/domain/audit"
	"github.com/linskybing/hris-cloud/internal/domain/employee"
	"github.com/linskybing/hris-cloud/internal/repository"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"github.com/linskybing/hris-cloud/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EmployeeService manages the rosters of the caller's organizations. Like
// projects, a request works in its org_id or the caller's default
// organization, so hires made through a project show up in that project's
// organization.
type EmployeeService struct {
	Repos *repository.Repos
	Orgs  *OrganizationService
}

func NewEmployeeService(repos *repository.Repos) *EmployeeService {
	return &EmployeeService{
		Repos: repos,
		Orgs:  NewOrganizationService(repos),
	}
}

func (s *EmployeeService) ListEmployees(ownerID string, orgID *uuid.UUID) ([]employee.Employee, error) {
	o, err := s.Orgs.Scope(ownerID, orgID)
	if err != nil {
		return nil, err
	}
	return s.Repos.Employee.ListEmployeesByOrg(o.ID)
}

// GetEmployee hides employees of other organizations as not found.
func (s *EmployeeService) GetEmployee(ownerID string, id uuid.UUID) (*employee.Employee, error) {
	e, err := s.Repos.Employee.GetEmployeeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	if _, err := s.Orgs.Owned(ownerID, e.OrgID); err != nil {
		if errors.Is(err, ErrForbidden) || errors.Is(err, ErrOrganizationNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *EmployeeService) CreateEmployee(c *gin.Context, ownerID string, input employee.CreateEmployeeDTO) (*employee.Employee, error) {
	o, err := s.Orgs.Scope(ownerID, input.OrgID)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	if _, err := s.Repos.Employee.FindByEmail(o.ID, email); err == nil {
		return nil, ErrDuplicateEmployee
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	joinDate := time.Now()
	if input.JoinDate != "" {
		joinDate, err = time.Parse(pipeline.JoinDateLayout, input.JoinDate)
		if err != nil {
			return nil, ErrInvalidJoinDate
		}
	}
	leave := employee.DefaultLeaveDays
	if input.LeaveRemaining != nil {
		leave = *input.LeaveRemaining
	}

	e := &employee.Employee{
		OrgID:          o.ID,
		Name:           strings.TrimSpace(input.Name),
		Email:          email,
		Role:           input.Role,
		Department:     input.Department,
		LeaveRemaining: leave,
		Status:         employee.StatusActive,
		JoinDate:       datatypes.Date(joinDate),
	}
	if err := s.Repos.Employee.CreateEmployee(e); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", audit.ResourceEmployee, e.ID.String(), nil, e, "", s.Repos.Audit)
	return e, nil
}

func (s *EmployeeService) UpdateEmployee(c *gin.Context, ownerID string, id uuid.UUID, input employee.UpdateEmployeeDTO) (*employee.Employee, error) {
	e, err := s.GetEmployee(ownerID, id)
	if err != nil {
		return nil, err
	}
	old := *e

	if input.Name != nil {
		e.Name = *input.Name
	}
	if input.Role != nil {
		e.Role = *input.Role
	}
	if input.Department != nil {
		e.Department = *input.Department
	}
	if input.LeaveRemaining != nil {
		e.LeaveRemaining = *input.LeaveRemaining
	}
	if input.Status != nil {
		e.Status = *input.Status
	}

	if err := s.Repos.Employee.UpdateEmployee(e); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", audit.ResourceEmployee, e.ID.String(), old, e, "", s.Repos.Audit)
	return e, nil
}

func (s *EmployeeService) DeleteEmployee(c *gin.Context, ownerID string, id uuid.UUID) error {
	e, err := s.GetEmployee(ownerID, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Employee.DeleteEmployee(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete", audit.ResourceEmployee, id.String(), e, nil, "Employee archived", s.Repos.Audit)
	return nil
}
