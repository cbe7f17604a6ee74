package cron

import (
	"context"
	"log"
	"time"
)

// AuditCleaner deletes audit rows older than the retention window.
type AuditCleaner interface {
	CleanupOldLogs(days int) error
}

// CleanupInterval is how often the retention sweep runs after start-up.
var CleanupInterval = 24 * time.Hour

// StartCleanupTask sweeps old audit logs immediately and then once per
// CleanupInterval until ctx is done. The returned channel closes on exit.
func StartCleanupTask(ctx context.Context, auditService AuditCleaner, retentionDays int) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Printf("[cron] starting background cleanup task (retention: %d days)", retentionDays)

		// Run immediately on startup
		if err := auditService.CleanupOldLogs(retentionDays); err != nil {
			log.Printf("[cron] failed to cleanup old audit logs: %v", err)
		}

		ticker := time.NewTicker(CleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("[cron] cleanup task stopped")
				return
			case <-ticker.C:
				log.Println("[cron] running scheduled audit log cleanup...")
				if err := auditService.CleanupOldLogs(retentionDays); err != nil {
					log.Printf("[cron] failed to cleanup old audit logs: %v", err)
				} else {
					log.Println("[cron] audit log cleanup completed successfully")
				}
			}
		}
	}()
	return done
}
