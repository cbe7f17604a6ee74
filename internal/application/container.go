package application

import (
	"github.com/linskybing/hris-cloud/internal/repository"
	"github.com/linskybing/hris-cloud/internal/storage"
)

type Services struct {
	Audit        *AuditService
	Organization *OrganizationService
	Project      *ProjectService
	Applicant    *ApplicantService
	Employee     *EmployeeService
	Policy       *PolicyService
	Watcher      *Watcher
}

// New wires the services. Reader, Notifier and Queue on Applicant, and
// Answerer on Policy, are set by the caller.
func New(repos *repository.Repos, store storage.ObjectStore) *Services {
	projects := NewProjectService(repos)
	watcher := NewWatcher()

	applicants := NewApplicantService(repos, projects)
	applicants.Store = store
	applicants.Watcher = watcher

	return &Services{
		Audit:        NewAuditService(repos),
		Organization: projects.Orgs,
		Project:      projects,
		Applicant:    applicants,
		Employee:     NewEmployeeService(repos),
		Policy:       NewPolicyService(repos, store, nil),
		Watcher:      watcher,
	}
}
