package database

import (
	"github.com/apex/log"

	"store-console/internal/models"
)

// RecordAudit writes one audit entry. Auditing is best-effort: a failure is
// logged and never propagated to the user action that triggered it.
func RecordAudit(actor, entity, entityID, action, details, requestID string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		Actor:     actor,
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		Details:   details,
		RequestID: requestID,
	}
	if err := DB.Create(&record).Error; err != nil {
		log.WithError(err).WithFields(log.Fields{
			"entity": entity,
			"action": action,
		}).Warn("failed to write audit entry")
	}
}

// RecentAuditLogs returns the newest entries, capped at limit.
func RecentAuditLogs(limit int) []models.AuditLog {
	var logs []models.AuditLog
	if DB == nil {
		return logs
	}
	DB.Order("created_at desc, id desc").Limit(limit).Find(&logs)
	return logs
}
