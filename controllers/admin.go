package controllers

import (
	"net/http"
	"strconv"
	"time"

	"student-award-api/config"
	"student-award-api/models"

	"github.com/gin-gonic/gin"
)

// Role assignment administration. Assignments are created and deleted here;
// the workflow only ever reads them.

func GetUserRoles(c *gin.Context) {
	query := config.DB.Preload("Campus").Preload("Faculty").Preload("Department")
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var assignments []models.UserRole
	if err := query.Order("user_role_id").Find(&assignments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch role assignments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_roles": assignments,
		"total":      len(assignments),
	})
}

func CreateUserRole(c *gin.Context) {
	var req struct {
		UserID       int            `json:"user_id" binding:"required"`
		Role         models.AppRole `json:"role" binding:"required"`
		CampusID     *int           `json:"campus_id"`
		FacultyID    *int           `json:"faculty_id"`
		DepartmentID *int           `json:"department_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.Role.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}
	// system_admin is always unscoped; department heads are always
	// department-scoped. Reject configurations the gate would never honor.
	if req.Role == models.RoleSystemAdmin &&
		(req.CampusID != nil || req.FacultyID != nil || req.DepartmentID != nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "system_admin assignments must be unscoped"})
		return
	}
	if req.Role == models.RoleDepartmentHead && req.DepartmentID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department_head assignments require a department"})
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", req.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()
	assignment := models.UserRole{
		UserID:       req.UserID,
		Role:         req.Role,
		CampusID:     req.CampusID,
		FacultyID:    req.FacultyID,
		DepartmentID: req.DepartmentID,
		CreateAt:     &now,
		UpdateAt:     &now,
	}
	if err := config.DB.Create(&assignment).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Role assignment already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_role": assignment})
}

func DeleteUserRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role assignment ID"})
		return
	}

	res := config.DB.Delete(&models.UserRole{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete role assignment"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role assignment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Award type and academic period administration.

func CreateAwardType(c *gin.Context) {
	var req struct {
		TypeCode    string  `json:"type_code" binding:"required"`
		TypeName    string  `json:"type_name" binding:"required"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	awardType := models.AwardType{
		TypeCode:    req.TypeCode,
		TypeName:    req.TypeName,
		Description: req.Description,
		IsActive:    true,
		CreateAt:    &now,
		UpdateAt:    &now,
	}
	if err := config.DB.Create(&awardType).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Award type code already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"award_type": awardType})
}

func UpdateAwardType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid award type ID"})
		return
	}

	var req struct {
		TypeName    *string `json:"type_name"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var awardType models.AwardType
	if err := config.DB.Where("award_type_id = ? AND delete_at IS NULL", id).First(&awardType).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Award type not found"})
		return
	}

	updates := map[string]interface{}{"update_at": time.Now()}
	if req.TypeName != nil {
		updates["type_name"] = *req.TypeName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := config.DB.Model(&awardType).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update award type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"award_type": awardType})
}

// DeleteAwardType soft-deletes an award type. Existing applications keep
// their reference; the type just stops being offered.
func DeleteAwardType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid award type ID"})
		return
	}

	now := time.Now()
	res := config.DB.Model(&models.AwardType{}).
		Where("award_type_id = ? AND delete_at IS NULL", id).
		Updates(map[string]interface{}{"delete_at": now, "is_active": false, "update_at": now})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete award type"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Award type not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func CreateAcademicPeriod(c *gin.Context) {
	var req struct {
		AcademicYear int        `json:"academic_year" binding:"required"`
		Semester     int        `json:"semester" binding:"required"`
		StartDate    *time.Time `json:"start_date"`
		EndDate      *time.Time `json:"end_date"`
		CampusID     *int       `json:"campus_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	period := models.AcademicPeriod{
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsActive:     true,
		CampusID:     req.CampusID,
		CreateAt:     &now,
		UpdateAt:     &now,
	}
	if err := config.DB.Create(&period).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create academic period"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"academic_period": period})
}

func UpdateAcademicPeriod(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period ID"})
		return
	}

	var req struct {
		StartDate *time.Time `json:"start_date"`
		EndDate   *time.Time `json:"end_date"`
		IsActive  *bool      `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var period models.AcademicPeriod
	if err := config.DB.Where("period_id = ? AND delete_at IS NULL", id).First(&period).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Academic period not found"})
		return
	}

	updates := map[string]interface{}{"update_at": time.Now()}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := config.DB.Model(&period).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update academic period"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"academic_period": period})
}

// DeleteAcademicPeriod soft-deletes a period that is no longer offered.
func DeleteAcademicPeriod(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period ID"})
		return
	}

	now := time.Now()
	res := config.DB.Model(&models.AcademicPeriod{}).
		Where("period_id = ? AND delete_at IS NULL", id).
		Updates(map[string]interface{}{"delete_at": now, "is_active": false, "update_at": now})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete academic period"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Academic period not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
