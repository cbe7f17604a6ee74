package repository

import (
	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	CreateProject(p *project.Project) error
	GetProjectByID(id uuid.UUID) (project.Project, error)
	GetOwnerIDByProjectID(id uuid.UUID) (string, error)
	ListProjectsByOrg(orgID uuid.UUID) ([]project.Project, error)
	ListProjectsByOwner(ownerID string) ([]project.Project, error)
	UpdateProject(p *project.Project) error
	DeleteProject(id uuid.UUID) error
	CreateAPIKey(k *project.APIKey) error
	GetAPIKeyByPrefix(prefix string) (project.APIKey, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetProjectByID(id uuid.UUID) (project.Project, error) {
	var p project.Project
	err := r.db.Where("id = ?", id).First(&p).Error
	return p, err
}

func (r *DBProjectRepo) GetOwnerIDByProjectID(id uuid.UUID) (string, error) {
	var p project.Project
	err := r.db.Select("owner_id").Where("id = ?", id).First(&p).Error
	if err != nil {
		return "", err
	}
	return p.OwnerID, nil
}

func (r *DBProjectRepo) ListProjectsByOrg(orgID uuid.UUID) ([]project.Project, error) {
	var projects []project.Project
	if err := r.db.Where("org_id = ?", orgID).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *DBProjectRepo) ListProjectsByOwner(ownerID string) ([]project.Project, error) {
	var projects []project.Project
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProject never writes org_id; the column is create-only.
func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&project.Project{}).Error
}

func (r *DBProjectRepo) CreateAPIKey(k *project.APIKey) error {
	return r.db.Create(k).Error
}

func (r *DBProjectRepo) GetAPIKeyByPrefix(prefix string) (project.APIKey, error) {
	var k project.APIKey
	err := r.db.Where("prefix = ?", prefix).First(&k).Error
	return k, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
