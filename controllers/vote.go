package controllers

import (
	"net/http"

	"student-award-api/config"
	"student-award-api/models"
	"student-award-api/services"
	"student-award-api/utils"

	"github.com/gin-gonic/gin"
)

// SubmitVote records or replaces the calling committee member's vote on an
// application at committee_review.
func SubmitVote(c *gin.Context) {
	id, ok := applicationIDParam(c)
	if !ok {
		return
	}

	var req struct {
		IsAgree *bool   `json:"is_agree" binding:"required"`
		Comment *string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
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

	// Voting requires the committee_member role with matching campus scope.
	if !principal.HasRole(models.RoleCommitteeMember) && !principal.IsSystemAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not permitted"})
		return
	}
	if !services.CanReviewApplication(principal, app.CurrentStatus, services.ScopeOf(app)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not permitted"})
		return
	}

	var comment *string
	if req.Comment != nil {
		trimmed := utils.SanitizeInput(*req.Comment)
		if trimmed != "" {
			comment = &trimmed
		}
	}

	vote, err := services.CastVote(config.DB, principal, app, *req.IsAgree, comment)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vote": vote,
	})
}

// GetVotingSummary returns the live tally for an application.
func GetVotingSummary(c *gin.Context) {
	id, ok := applicationIDParam(c)
	if !ok {
		return
	}

	app, err := findApplication(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	summary, err := services.GetVotingSummary(config.DB, app)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute voting summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CloseVoting lets the committee chairman finalize the committee stage,
// routing the application to chairman_review on a pass or rejected on a
// fail.
func CloseVoting(c *gin.Context) {
	id, ok := applicationIDParam(c)
	if !ok {
		return
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

	// Only the chairman (with matching campus scope) closes voting; the gate
	// for the committee stage allows committee members, so check the role
	// explicitly here.
	if !principal.IsSystemAdmin() {
		if !principal.HasRole(models.RoleCommitteeChairman) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not permitted"})
			return
		}
		if !chairmanScopeMatches(principal, services.ScopeOf(app)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not permitted"})
			return
		}
	}

	passed, err := services.CloseVoting(config.DB, principal, app)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"passed":     passed,
		"new_status": app.CurrentStatus,
	})
}

// chairmanScopeMatches applies the campus predicate to the chairman's
// assignments.
func chairmanScopeMatches(p *services.Principal, scope services.ApplicationScope) bool {
	for _, assignment := range p.Roles {
		if assignment.Role != models.RoleCommitteeChairman {
			continue
		}
		if assignment.CampusID == nil || *assignment.CampusID == scope.CampusID {
			return true
		}
	}
	return false
}
