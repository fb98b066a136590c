package services

import (
	"context"

	"breaktrack/internal/models"

	"gorm.io/gorm"
)

const auditPageSize = 200

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

func (s *AuditService) Recent(ctx context.Context) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at desc, id desc").
		Limit(auditPageSize).
		Find(&logs).Error
	return logs, err
}
