package controllers

import (
	"net/http"

	"student-award-api/config"
	"student-award-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetStatistics returns application counts grouped by status and by award
// type for the dashboard charts.
func GetStatistics(c *gin.Context) {
	type statusCount struct {
		CurrentStatus models.Status `gorm:"column:current_status"`
		Count         int64         `gorm:"column:count"`
	}
	type awardCount struct {
		TypeCode string `gorm:"column:type_code"`
		Count    int64  `gorm:"column:count"`
	}

	query := config.DB.Model(&models.Application{}).Where("applications.delete_at IS NULL")
	if periodID := c.Query("period_id"); periodID != "" {
		query = query.Where("period_id = ?", periodID)
	}
	if campusID := c.Query("campus_id"); campusID != "" {
		query = query.Where("applications.campus_id = ?", campusID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	var byStatus []statusCount
	if err := query.Session(&gorm.Session{}).
		Select("current_status, COUNT(*) AS count").
		Group("current_status").
		Scan(&byStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	var byAward []awardCount
	if err := query.Session(&gorm.Session{}).
		Joins("JOIN award_types ON award_types.award_type_id = applications.award_type_id").
		Select("award_types.type_code, COUNT(*) AS count").
		Group("award_types.type_code").
		Scan(&byAward).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	statusStats := make(map[models.Status]int64, len(byStatus))
	for _, row := range byStatus {
		statusStats[row.CurrentStatus] = row.Count
	}
	awardStats := make(map[string]int64, len(byAward))
	for _, row := range byAward {
		awardStats[row.TypeCode] = row.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"total":         total,
		"by_status":     statusStats,
		"by_award_type": awardStats,
	})
}
