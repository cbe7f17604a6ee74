package repository

import (
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/domain/organization"
	"gorm.io/gorm"
)

type OrganizationRepo interface {
	CreateOrganization(o *organization.Organization) error
	GetOrganizationByID(id uuid.UUID) (organization.Organization, error)
	GetFirstByOwner(ownerID string) (organization.Organization, error)
	ListOrganizationsByOwner(ownerID string) ([]organization.Organization, error)
	WithTx(tx *gorm.DB) OrganizationRepo
}

type DBOrganizationRepo struct {
	db *gorm.DB
}

func NewOrganizationRepo(db *gorm.DB) *DBOrganizationRepo {
	return &DBOrganizationRepo{
		db: db,
	}
}

func (r *DBOrganizationRepo) CreateOrganization(o *organization.Organization) error {
	return r.db.Create(o).Error
}

func (r *DBOrganizationRepo) GetOrganizationByID(id uuid.UUID) (organization.Organization, error) {
	var org organization.Organization
	err := r.db.Where("id = ?", id).First(&org).Error
	return org, err
}

func (r *DBOrganizationRepo) GetFirstByOwner(ownerID string) (organization.Organization, error) {
	var org organization.Organization
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC").First(&org).Error
	return org, err
}

func (r *DBOrganizationRepo) ListOrganizationsByOwner(ownerID string) ([]organization.Organization, error) {
	var orgs []organization.Organization
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *DBOrganizationRepo) WithTx(tx *gorm.DB) OrganizationRepo {
	if tx == nil {
		return r
	}
	return &DBOrganizationRepo{
		db: tx,
	}
}
