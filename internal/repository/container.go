package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Organization OrganizationRepo
	Project      ProjectRepo
	Applicant    ApplicantRepo
	Employee     EmployeeRepo
	Policy       PolicyRepo
	Audit        AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Organization: NewOrganizationRepo(db),
		Project:      NewProjectRepo(db),
		Applicant:    NewApplicantRepo(db),
		Employee:     NewEmployeeRepo(db),
		Policy:       NewPolicyRepo(db),
		Audit:        NewAuditRepo(db),
		db:           db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Organization: r.Organization.WithTx(tx),
		Project:      r.Project.WithTx(tx),
		Applicant:    r.Applicant.WithTx(tx),
		Employee:     r.Employee.WithTx(tx),
		Policy:       r.Policy.WithTx(tx),
		Audit:        r.Audit.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside a transaction. Repos built without a database
// (unit tests with mocks) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
