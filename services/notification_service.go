package services

import (
	"fmt"
	"log"

	"student-award-api/config"
	"student-award-api/models"

	"gorm.io/gorm"
)

var statusNotificationLabels = map[models.Status]string{
	models.StatusSubmitted:            "submitted",
	models.StatusDeptReview:           "under department review",
	models.StatusFacultyReview:        "under faculty review",
	models.StatusStudentAffairsReview: "under student affairs review",
	models.StatusCommitteeReview:      "under committee review",
	models.StatusChairmanReview:       "awaiting chairman endorsement",
	models.StatusPresidentReview:      "awaiting president approval",
	models.StatusApproved:             "approved",
	models.StatusRejected:             "rejected",
}

// NotifyStatusChange records an in-app notification for the submitting
// student and sends a best-effort email. Delivery failures are logged and
// never fail the workflow operation that triggered them.
func NotifyStatusChange(db *gorm.DB, app *models.Application, from, to models.Status) {
	label, ok := statusNotificationLabels[to]
	if !ok {
		label = string(to)
	}

	kind := "info"
	switch to {
	case models.StatusApproved:
		kind = "success"
	case models.StatusRejected:
		kind = "error"
	}

	appID := uint(app.ApplicationID)
	notification := models.Notification{
		UserID:               uint(app.StudentID),
		Title:                "Application status updated",
		Message:              fmt.Sprintf("Application %s is now %s", app.ApplicationNumber, label),
		Type:                 kind,
		RelatedApplicationID: &appID,
		CreateAt:             timeNow(),
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("Warning: failed to store notification for application %d: %v", app.ApplicationID, err)
	}

	var student models.User
	if err := db.Where("user_id = ? AND delete_at IS NULL", app.StudentID).First(&student).Error; err != nil {
		return
	}

	subject := fmt.Sprintf("[Student Award] Application %s: %s", app.ApplicationNumber, label)
	body := fmt.Sprintf(
		"<p>Your outstanding-student award application <b>%s</b> moved from <b>%s</b> to <b>%s</b>.</p>",
		app.ApplicationNumber, from, to,
	)
	if err := config.SendMail([]string{student.Email}, subject, body); err != nil {
		log.Printf("Warning: failed to send status email for application %d: %v", app.ApplicationID, err)
	}
}
