package database

import (
	"fmt"

	"breaktrack/internal/models"

	"gorm.io/gorm"
)

// CreateAuditLog appends an audit row through tx, so it commits or rolls back with the
// change it describes.
func CreateAuditLog(tx *gorm.DB, userID uint, entity string, entityID uint, action, details string) error {
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := tx.Create(&record).Error; err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}
