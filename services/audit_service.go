package services

import (
	"student-award-api/models"

	"gorm.io/gorm"
)

// AppendApprovalLog writes one audit entry. Entries are append-only; nothing
// in this codebase updates or deletes approval_logs rows.
func AppendApprovalLog(tx *gorm.DB, entry *models.ApprovalLog) error {
	if entry.CreateAt.IsZero() {
		entry.CreateAt = timeNow()
	}
	return tx.Create(entry).Error
}

// ListApprovalLogs returns the audit trail for an application, newest entry
// first. The auto-increment log_id orders entries written within the same
// millisecond.
func ListApprovalLogs(db *gorm.DB, applicationID int) ([]models.ApprovalLog, error) {
	var logs []models.ApprovalLog
	err := db.Preload("Actor").Preload("Actor.PersonnelProfile").
		Where("application_id = ?", applicationID).
		Order("log_id DESC").
		Find(&logs).Error
	return logs, err
}
