package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"student-award-api/config"
	"student-award-api/models"
	"student-award-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// applicationIDParam parses the :id route parameter.
func applicationIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return 0, false
	}
	return id, true
}

// findApplication loads an application with the relations the scope checks
// need (student profile and its department).
func findApplication(id int) (*models.Application, error) {
	var app models.Application
	err := config.DB.Preload("Student").
		Preload("Student.StudentProfile").
		Preload("Student.StudentProfile.Department").
		Where("application_id = ? AND delete_at IS NULL", id).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// currentPrincipal resolves the authenticated caller's role assignments.
func currentPrincipal(c *gin.Context) (*services.Principal, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}

	principal, err := services.ResolvePrincipal(config.DB, userID.(int))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return nil, false
	}
	return principal, true
}

// respondWorkflowError maps workflow errors onto the HTTP surface. Forbidden
// answers never say why. Illegal transitions are caller defects, so they are
// also logged server-side.
func respondWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not permitted"})
	case errors.Is(err, services.ErrIllegalTransition):
		log.Printf("Warning: illegal transition attempt on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStaleState),
		errors.Is(err, services.ErrVotingClosed),
		errors.Is(err, services.ErrVotingInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNoVotes):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}
