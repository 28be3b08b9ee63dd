package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"subtrack/internal/logger"
	"subtrack/internal/models"
)

type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer backed by the audit_logs table.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log stores one mutation. Failures are logged and swallowed so that a
// broken audit table never fails the request that triggered it.
func (s *auditService) Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	log := logger.Named("audit").With(
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
	)

	entry := models.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
	}
	if len(changes) > 0 {
		data, err := json.Marshal(changes)
		if err != nil {
			log.Warnw("audit changes are not serialisable", "error", err)
			data = []byte("{}")
		}
		entry.Changes = string(data)
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Errorw("failed to write audit entry", "error", err)
	}
}
