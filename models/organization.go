package models

import "time"

// Campus, Faculty and Department are read-only reference data from the
// workflow's point of view. Administrators manage them; the approval gate
// only consumes the ids.
type Campus struct {
	CampusID   int        `gorm:"primaryKey;column:campus_id" json:"campus_id"`
	CampusCode string     `gorm:"column:campus_code;unique" json:"campus_code"`
	CampusName string     `gorm:"column:campus_name" json:"campus_name"`
	CreateAt   *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt   *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt   *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

type Faculty struct {
	FacultyID   int        `gorm:"primaryKey;column:faculty_id" json:"faculty_id"`
	FacultyCode string     `gorm:"column:faculty_code;unique" json:"faculty_code"`
	FacultyName string     `gorm:"column:faculty_name" json:"faculty_name"`
	CampusID    int        `gorm:"column:campus_id" json:"campus_id"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Campus *Campus `gorm:"foreignKey:CampusID" json:"campus,omitempty"`
}

type Department struct {
	DepartmentID int        `gorm:"primaryKey;column:department_id" json:"department_id"`
	DeptCode     string     `gorm:"column:dept_code;unique" json:"dept_code"`
	DeptName     string     `gorm:"column:dept_name" json:"dept_name"`
	FacultyID    int        `gorm:"column:faculty_id" json:"faculty_id"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Faculty *Faculty `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
}

// TableName overrides
func (Campus) TableName() string {
	return "campuses"
}

func (Faculty) TableName() string {
	return "faculties"
}

func (Department) TableName() string {
	return "departments"
}
