package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"student-award-api/config"
	"student-award-api/models"
	"student-award-api/services"
	"student-award-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetApplications returns the application list with filters and pagination.
// Students only ever see their own applications; reviewers and admins see
// every row and narrow by status from the client side.
func GetApplications(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var applications []models.Application
	query := config.DB.Preload("Student").
		Preload("Student.StudentProfile").
		Preload("AwardType").
		Preload("Period").
		Preload("Campus").
		Where("applications.delete_at IS NULL")

	if len(principal.ReviewerRoles()) == 0 && !principal.IsSystemAdmin() {
		query = query.Where("student_id = ?", principal.UserID)
	}

	// Apply filters from query params
	if status := c.Query("status"); status != "" {
		if !models.Status(status).IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		query = query.Where("current_status = ?", status)
	}
	if awardTypeID := c.Query("award_type_id"); awardTypeID != "" {
		query = query.Where("award_type_id = ?", awardTypeID)
	}
	if periodID := c.Query("period_id"); periodID != "" {
		query = query.Where("period_id = ?", periodID)
	}
	if campusID := c.Query("campus_id"); campusID != "" {
		query = query.Where("campus_id = ?", campusID)
	}

	var total int64
	if err := query.Model(&models.Application{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	page, limit := utils.ParsePagination(c)
	if err := query.Order("create_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// GetApplication returns a single application with its nested award type,
// period, campus, votes, audit trail and attachments.
func GetApplication(c *gin.Context) {
	id, ok := applicationIDParam(c)
	if !ok {
		return
	}
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var application models.Application
	query := config.DB.Preload("Student").
		Preload("Student.StudentProfile").
		Preload("Student.StudentProfile.Department").
		Preload("Student.StudentProfile.Department.Faculty").
		Preload("AwardType").
		Preload("Period").
		Preload("Campus").
		Preload("Votes").
		Preload("Votes.Committee").
		Preload("Votes.Committee.PersonnelProfile").
		Preload("Attachments", "delete_at IS NULL").
		Where("application_id = ? AND delete_at IS NULL", id)

	if len(principal.ReviewerRoles()) == 0 && !principal.IsSystemAdmin() {
		query = query.Where("student_id = ?", principal.UserID)
	}

	if err := query.First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	logs, err := services.ListApprovalLogs(config.DB, application.ApplicationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch approval history"})
		return
	}
	application.Logs = logs

	c.JSON(http.StatusOK, gin.H{
		"application": application,
	})
}

// CreateApplication creates a new application for the calling student, as a
// draft by default or submitted directly when the payload says so.
func CreateApplication(c *gin.Context) {
	type CreateApplicationRequest struct {
		AwardTypeID   int     `json:"award_type_id" binding:"required"`
		PeriodID      int     `json:"period_id" binding:"required"`
		CampusID      int     `json:"campus_id" binding:"required"`
		ProjectName   *string `json:"project_name"`
		Description   *string `json:"description"`
		Achievements  *string `json:"achievements"`
		ActivityHours *int    `json:"activity_hours"`
		Submit        bool    `json:"submit"`
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	var awardType models.AwardType
	if err := config.DB.Where("award_type_id = ? AND is_active = 1 AND delete_at IS NULL", req.AwardTypeID).
		First(&awardType).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid award type"})
		return
	}

	var period models.AcademicPeriod
	if err := config.DB.Where("period_id = ? AND is_active = 1 AND delete_at IS NULL", req.PeriodID).
		First(&period).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid academic period"})
		return
	}

	now := time.Now()
	application := models.Application{
		ApplicationNumber: generateApplicationNumber(period.AcademicYear),
		StudentID:         userID.(int),
		AwardTypeID:       req.AwardTypeID,
		PeriodID:          req.PeriodID,
		CampusID:          req.CampusID,
		ProjectName:       req.ProjectName,
		Description:       req.Description,
		Achievements:      req.Achievements,
		ActivityHours:     req.ActivityHours,
		CurrentStatus:     models.StatusDraft,
		CreateAt:          &now,
		UpdateAt:          &now,
	}

	if err := config.DB.Create(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}

	if req.Submit {
		if err := services.SubmitApplication(config.DB, userID.(int), &application); err != nil {
			respondWorkflowError(c, err)
			return
		}
	}

	// Load relations
	config.DB.Preload("Student").Preload("AwardType").Preload("Period").
		Preload("Campus").First(&application, application.ApplicationID)

	c.JSON(http.StatusCreated, gin.H{
		"application": application,
	})
}

// UpdateApplication updates the free-text fields of the caller's own draft.
// Once submitted, applications change only through workflow operations.
func UpdateApplication(c *gin.Context) {
	id, ok := applicationIDParam(c)
	if !ok {
		return
	}

	type UpdateApplicationRequest struct {
		ProjectName   *string `json:"project_name"`
		Description   *string `json:"description"`
		Achievements  *string `json:"achievements"`
		ActivityHours *int    `json:"activity_hours"`
		AwardTypeID   *int    `json:"award_type_id"`
		PeriodID      *int    `json:"period_id"`
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	var application models.Application
	if err := config.DB.Where("application_id = ? AND student_id = ? AND delete_at IS NULL", id, userID).
		First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if application.CurrentStatus != models.StatusDraft {
		c.JSON(http.StatusConflict, gin.H{"error": "Only draft applications can be edited"})
		return
	}

	updates := map[string]interface{}{"update_at": time.Now()}
	if req.ProjectName != nil {
		updates["project_name"] = utils.SanitizeInput(*req.ProjectName)
	}
	if req.Description != nil {
		updates["description"] = utils.SanitizeInput(*req.Description)
	}
	if req.Achievements != nil {
		updates["achievements"] = utils.SanitizeInput(*req.Achievements)
	}
	if req.ActivityHours != nil {
		updates["activity_hours"] = *req.ActivityHours
	}
	if req.AwardTypeID != nil {
		updates["award_type_id"] = *req.AwardTypeID
	}
	if req.PeriodID != nil {
		updates["period_id"] = *req.PeriodID
	}

	if err := config.DB.Model(&application).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}

	config.DB.Preload("AwardType").Preload("Period").Preload("Campus").
		First(&application, application.ApplicationID)

	c.JSON(http.StatusOK, gin.H{
		"application": application,
	})
}

// DeleteApplication soft-deletes the caller's own draft.
func DeleteApplication(c *gin.Context) {
	id, ok := applicationIDParam(c)
	if !ok {
		return
	}
	userID, _ := c.Get("userID")

	var application models.Application
	if err := config.DB.Where("application_id = ? AND student_id = ? AND delete_at IS NULL", id, userID).
		First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if application.CurrentStatus != models.StatusDraft {
		c.JSON(http.StatusConflict, gin.H{"error": "Only draft applications can be deleted"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&application).
		Updates(map[string]interface{}{"delete_at": now, "update_at": now}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitApplication moves the caller's draft into the review chain.
func SubmitApplication(c *gin.Context) {
	id, ok := applicationIDParam(c)
	if !ok {
		return
	}
	userID, _ := c.Get("userID")

	app, err := findApplication(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if err := services.SubmitApplication(config.DB, userID.(int), app); err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"new_status": app.CurrentStatus,
	})
}

// GetApprovalHistory returns the audit trail, newest entry first.
func GetApprovalHistory(c *gin.Context) {
	id, ok := applicationIDParam(c)
	if !ok {
		return
	}

	if _, err := findApplication(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	logs, err := services.ListApprovalLogs(config.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch approval history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":  logs,
		"total": len(logs),
	})
}

// generateApplicationNumber builds a human-readable reference with an opaque
// suffix, e.g. AWD-2569-1a2b3c4d.
func generateApplicationNumber(academicYear int) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("AWD-%d-%s", academicYear, suffix)
}
