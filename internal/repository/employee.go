package repository

import (
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/domain/employee"
	"gorm.io/gorm"
)

type EmployeeRepo interface {
	CreateEmployee(e *employee.Employee) error
	GetEmployeeByID(id uuid.UUID) (employee.Employee, error)
	FindByEmail(orgID uuid.UUID, email string) (employee.Employee, error)
	ListEmployeesByOrg(orgID uuid.UUID) ([]employee.Employee, error)
	UpdateEmployee(e *employee.Employee) error
	DeleteEmployee(id uuid.UUID) error
	WithTx(tx *gorm.DB) EmployeeRepo
}

type DBEmployeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) *DBEmployeeRepo {
	return &DBEmployeeRepo{
		db: db,
	}
}

func (r *DBEmployeeRepo) CreateEmployee(e *employee.Employee) error {
	return r.db.Create(e).Error
}

func (r *DBEmployeeRepo) GetEmployeeByID(id uuid.UUID) (employee.Employee, error) {
	var e employee.Employee
	err := r.db.Where("id = ?", id).First(&e).Error
	return e, err
}

func (r *DBEmployeeRepo) FindByEmail(orgID uuid.UUID, email string) (employee.Employee, error) {
	var e employee.Employee
	err := r.db.Where("org_id = ? AND LOWER(email) = LOWER(?)", orgID, email).First(&e).Error
	return e, err
}

func (r *DBEmployeeRepo) ListEmployeesByOrg(orgID uuid.UUID) ([]employee.Employee, error) {
	var list []employee.Employee
	if err := r.db.Where("org_id = ?", orgID).Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *DBEmployeeRepo) UpdateEmployee(e *employee.Employee) error {
	return r.db.Save(e).Error
}

func (r *DBEmployeeRepo) DeleteEmployee(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&employee.Employee{}).Error
}

func (r *DBEmployeeRepo) WithTx(tx *gorm.DB) EmployeeRepo {
	if tx == nil {
		return r
	}
	return &DBEmployeeRepo{
		db: tx,
	}
}
