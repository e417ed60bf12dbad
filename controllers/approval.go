package controllers

import (
	"net/http"
	"strings"

	"student-award-api/config"
	"student-award-api/models"
	"student-award-api/services"
	"student-award-api/utils"

	"github.com/gin-gonic/gin"
)

// ApproveApplication handles a reviewer's approve/reject decision on the
// application's current stage. The optional to_status override is validated
// against the legal transition table, never trusted.
func ApproveApplication(c *gin.Context) {
	id, ok := applicationIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Action   string  `json:"action" binding:"required"`
		Comment  *string `json:"comment"`
		ToStatus *string `json:"to_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	action := strings.ToLower(strings.TrimSpace(req.Action))
	if action != "approve" && action != "reject" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action must be either 'approve' or 'reject'"})
		return
	}
	decision := services.DecisionApprove
	if action == "reject" {
		decision = services.DecisionReject
	}

	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	app, err := findApplication(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if !services.CanReviewApplication(principal, app.CurrentStatus, services.ScopeOf(app)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not permitted"})
		return
	}

	var toOverride *models.Status
	if req.ToStatus != nil {
		status := models.Status(strings.TrimSpace(*req.ToStatus))
		toOverride = &status
	}

	var comment *string
	if req.Comment != nil {
		trimmed := utils.SanitizeInput(*req.Comment)
		if trimmed != "" {
			comment = &trimmed
		}
	}

	newStatus, err := services.AdvanceApplication(config.DB, principal, app, decision, comment, toOverride)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"new_status": newStatus,
	})
}
