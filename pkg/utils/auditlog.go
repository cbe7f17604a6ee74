package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/hris-cloud/internal/domain/audit"
	"github.com/linskybing/hris-cloud/internal/repository"
)

// AuditActor captures who is making the request. Call it on the request
// goroutine; gin contexts are recycled once the handler returns.
func AuditActor(c *gin.Context) audit.Actor {
	if c == nil {
		return audit.Actor{}
	}
	userID, _ := GetUserIDFromContext(c)
	a := audit.Actor{UserID: userID}
	if c.Request != nil {
		a.IPAddress = c.ClientIP()
		a.UserAgent = c.GetHeader("User-Agent")
	}
	return a
}

// NewAuditLog builds one audit row. before and after are stored as JSON
// snapshots; resourceID is the bare identifier of the resource.
func NewAuditLog(actor audit.Actor, action, resourceType, resourceID string, before, after any, description string) *audit.AuditLog {
	return &audit.AuditLog{
		UserID:       actor.UserID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      snapshot(before),
		NewData:      snapshot(after),
		IPAddress:    actor.IPAddress,
		UserAgent:    actor.UserAgent,
		Description:  description,
	}
}

func snapshot(v any) []byte {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[audit] failed to marshal snapshot: %v", err)
		return nil
	}
	return b
}

// RecordAudit writes the row through repo before returning. Pipeline moves
// call it with the transaction's repo so the row commits or rolls back with
// the status change it describes.
func RecordAudit(c *gin.Context, repo repository.AuditRepo, action, resourceType, resourceID string, before, after any, description string) error {
	return repo.CreateAuditLog(NewAuditLog(AuditActor(c), action, resourceType, resourceID, before, after, description))
}

// LogAuditWithConsole writes the row in the background. Failures are only
// logged; the change itself has already been committed.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	entry := NewAuditLog(AuditActor(c), action, resourceType, resourceID, oldData, newData, msg)

	go func() {
		if err := repo.CreateAuditLog(entry); err != nil {
			log.Printf("[audit] failed to record %s %s/%s: %v", entry.Action, entry.ResourceType, entry.ResourceID, err)
		}
	}()
}
