package handlers

import (
	"github.com/linskybing/hris-cloud/internal/application"
)

type Handlers struct {
	Audit        *AuditHandler
	Organization *OrganizationHandler
	Project      *ProjectHandler
	Applicant    *ApplicantHandler
	Employee     *EmployeeHandler
	Policy       *PolicyHandler
	Stream       *StreamHandler
}

func New(svc *application.Services) *Handlers {
	h := &Handlers{
		Audit:        NewAuditHandler(svc.Audit),
		Organization: NewOrganizationHandler(svc.Organization),
		Project:      NewProjectHandler(svc.Project),
		Applicant:    NewApplicantHandler(svc.Applicant),
		Employee:     NewEmployeeHandler(svc.Employee),
		Policy:       NewPolicyHandler(svc.Policy),
		Stream:       NewStreamHandler(svc.Applicant, svc.Watcher),
	}
	return h
}
