package models

import (
	"time"
)

type User struct {
	UserID   int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email    string     `gorm:"column:email;unique" json:"email"`
	Password string     `gorm:"column:password" json:"-"`
	BaseRole string     `gorm:"column:base_role" json:"base_role"` // student|staff|admin
	IsActive bool       `gorm:"column:is_active" json:"is_active"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	StudentProfile   *StudentProfile   `gorm:"foreignKey:UserID" json:"student_profile,omitempty"`
	PersonnelProfile *PersonnelProfile `gorm:"foreignKey:UserID" json:"personnel_profile,omitempty"`
}

// StudentProfile carries the organizational placement every scope check
// derives from: department, and transitively faculty and campus.
type StudentProfile struct {
	ProfileID    int      `gorm:"primaryKey;column:profile_id" json:"profile_id"`
	UserID       int      `gorm:"column:user_id" json:"user_id"`
	StudentCode  *string  `gorm:"column:student_code" json:"student_code,omitempty"`
	FirstName    string   `gorm:"column:first_name" json:"first_name"`
	LastName     string   `gorm:"column:last_name" json:"last_name"`
	DepartmentID *int     `gorm:"column:department_id" json:"department_id,omitempty"`
	Gpax         *float64 `gorm:"column:gpax" json:"gpax,omitempty"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

type PersonnelProfile struct {
	ProfileID    int    `gorm:"primaryKey;column:profile_id" json:"profile_id"`
	UserID       int    `gorm:"column:user_id" json:"user_id"`
	FirstName    string `gorm:"column:first_name" json:"first_name"`
	LastName     string `gorm:"column:last_name" json:"last_name"`
	Position     string `gorm:"column:position" json:"position"`
	DepartmentID *int   `gorm:"column:department_id" json:"department_id,omitempty"`
	FacultyID    *int   `gorm:"column:faculty_id" json:"faculty_id,omitempty"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Faculty    *Faculty    `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}

func (PersonnelProfile) TableName() string {
	return "personnel_profiles"
}
