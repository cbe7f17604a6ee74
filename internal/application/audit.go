package application

import (
	"github.com/linskybing/hris-cloud/internal/domain/audit"
	"github.com/linskybing/hris-cloud/internal/repository"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 1000
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

// QueryAuditLogs returns the changes made by ownerID, newest first. With
// resource_type=applicant and a resource_id it is that applicant's
// pipeline history.
func (s *AuditService) QueryAuditLogs(ownerID string, params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	params.UserID = &ownerID
	switch {
	case params.Limit <= 0:
		params.Limit = defaultAuditLimit
	case params.Limit > maxAuditLimit:
		params.Limit = maxAuditLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	return s.Repos.Audit.GetAuditLogs(params)
}

func (s *AuditService) CleanupOldLogs(days int) error {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}
