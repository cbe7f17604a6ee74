package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/linskybing/hris-cloud/internal/domain/applicant"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"gorm.io/gorm"
)

// ErrStatusChanged means the row was no longer in the expected state when
// the update ran.
var ErrStatusChanged = errors.New("applicant status changed concurrently")

type ApplicantRepo interface {
	CreateApplicant(a *applicant.Applicant) error
	GetApplicantByID(id uuid.UUID) (applicant.Applicant, error)
	FindByProjectAndHash(projectID uuid.UUID, hash string) (applicant.Applicant, error)
	ListApplicantsByProject(projectID uuid.UUID) ([]applicant.Applicant, error)
	ListApplicantsByProjects(projectIDs []uuid.UUID) ([]applicant.Applicant, error)
	ListUnscored(limit int) ([]applicant.Applicant, error)
	UpdateStatus(id uuid.UUID, from, to pipeline.Status) error
	SetScore(id uuid.UUID, score int, reasoning string) (bool, error)
	DeleteApplicant(id uuid.UUID) error
	DeleteApplicantsByProject(projectID uuid.UUID) error
	StatusDistribution() (map[string]int64, error)
	RewriteStatus(from string, to pipeline.Status) (int64, error)
	WithTx(tx *gorm.DB) ApplicantRepo
}

type DBApplicantRepo struct {
	db *gorm.DB
}

func NewApplicantRepo(db *gorm.DB) *DBApplicantRepo {
	return &DBApplicantRepo{
		db: db,
	}
}

func (r *DBApplicantRepo) CreateApplicant(a *applicant.Applicant) error {
	return r.db.Create(a).Error
}

func (r *DBApplicantRepo) GetApplicantByID(id uuid.UUID) (applicant.Applicant, error) {
	var a applicant.Applicant
	err := r.db.Where("id = ?", id).First(&a).Error
	return a, err
}

func (r *DBApplicantRepo) FindByProjectAndHash(projectID uuid.UUID, hash string) (applicant.Applicant, error) {
	var a applicant.Applicant
	err := r.db.Where("project_id = ? AND cv_hash = ?", projectID, hash).First(&a).Error
	return a, err
}

func (r *DBApplicantRepo) ListApplicantsByProject(projectID uuid.UUID) ([]applicant.Applicant, error) {
	var list []applicant.Applicant
	err := r.db.Where("project_id = ?", projectID).
		Order("ai_score DESC NULLS LAST").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *DBApplicantRepo) ListApplicantsByProjects(projectIDs []uuid.UUID) ([]applicant.Applicant, error) {
	if len(projectIDs) == 0 {
		return []applicant.Applicant{}, nil
	}
	var list []applicant.Applicant
	err := r.db.Where("project_id IN ?", projectIDs).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *DBApplicantRepo) ListUnscored(limit int) ([]applicant.Applicant, error) {
	var list []applicant.Applicant
	q := r.db.Where("status = ? AND ai_score IS NULL", pipeline.StatusProcessing).Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateStatus is a compare-and-set on the status column.
func (r *DBApplicantRepo) UpdateStatus(id uuid.UUID, from, to pipeline.Status) error {
	res := r.db.Model(&applicant.Applicant{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

// SetScore writes the AI result once. It reports false when the applicant
// was already scored or is gone.
func (r *DBApplicantRepo) SetScore(id uuid.UUID, score int, reasoning string) (bool, error) {
	res := r.db.Model(&applicant.Applicant{}).
		Where("id = ? AND ai_score IS NULL", id).
		Updates(map[string]interface{}{
			"ai_score":     score,
			"ai_reasoning": reasoning,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *DBApplicantRepo) DeleteApplicant(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&applicant.Applicant{}).Error
}

func (r *DBApplicantRepo) DeleteApplicantsByProject(projectID uuid.UUID) error {
	return r.db.Where("project_id = ?", projectID).Delete(&applicant.Applicant{}).Error
}

func (r *DBApplicantRepo) StatusDistribution() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Model(&applicant.Applicant{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *DBApplicantRepo) RewriteStatus(from string, to pipeline.Status) (int64, error) {
	res := r.db.Model(&applicant.Applicant{}).
		Where("status = ?", from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *DBApplicantRepo) WithTx(tx *gorm.DB) ApplicantRepo {
	if tx == nil {
		return r
	}
	return &DBApplicantRepo{
		db: tx,
	}
}
