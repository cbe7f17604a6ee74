package repository

import (
	"github.com/linskybing/hris-cloud/internal/domain/policy"
	"gorm.io/gorm"
)

type PolicyRepo interface {
	CreateLog(l *policy.Log) error
	ListLogs(limit int) ([]policy.Log, error)
	WithTx(tx *gorm.DB) PolicyRepo
}

type DBPolicyRepo struct {
	db *gorm.DB
}

func NewPolicyRepo(db *gorm.DB) *DBPolicyRepo {
	return &DBPolicyRepo{
		db: db,
	}
}

func (r *DBPolicyRepo) CreateLog(l *policy.Log) error {
	return r.db.Create(l).Error
}

func (r *DBPolicyRepo) ListLogs(limit int) ([]policy.Log, error) {
	var logs []policy.Log
	q := r.db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *DBPolicyRepo) WithTx(tx *gorm.DB) PolicyRepo {
	if tx == nil {
		return r
	}
	return &DBPolicyRepo{
		db: tx,
	}
}
