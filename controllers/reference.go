package controllers

import (
	"net/http"

	"student-award-api/config"
	"student-award-api/models"

	"github.com/gin-gonic/gin"
)

// Reference data lookups. The workflow consumes these as read-only scope
// inputs; administrators manage them through the admin endpoints.

func GetCampuses(c *gin.Context) {
	var campuses []models.Campus
	if err := config.DB.Where("delete_at IS NULL").Order("campus_name").Find(&campuses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campuses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"campuses": campuses})
}

func GetFaculties(c *gin.Context) {
	query := config.DB.Preload("Campus").Where("delete_at IS NULL")
	if campusID := c.Query("campus_id"); campusID != "" {
		query = query.Where("campus_id = ?", campusID)
	}

	var faculties []models.Faculty
	if err := query.Order("faculty_name").Find(&faculties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch faculties"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"faculties": faculties})
}

func GetDepartments(c *gin.Context) {
	query := config.DB.Preload("Faculty").Where("delete_at IS NULL")
	if facultyID := c.Query("faculty_id"); facultyID != "" {
		query = query.Where("faculty_id = ?", facultyID)
	}

	var departments []models.Department
	if err := query.Order("dept_name").Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch departments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"departments": departments})
}

func GetAwardTypes(c *gin.Context) {
	var awardTypes []models.AwardType
	if err := config.DB.Where("is_active = 1 AND delete_at IS NULL").
		Order("type_code").Find(&awardTypes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch award types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"award_types": awardTypes})
}

func GetAcademicPeriods(c *gin.Context) {
	var periods []models.AcademicPeriod
	if err := config.DB.Preload("Campus").Where("delete_at IS NULL").
		Order("academic_year DESC, semester DESC").Find(&periods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch academic periods"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"academic_periods": periods})
}
