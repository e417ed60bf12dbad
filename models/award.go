package models

import "time"

// AwardType is one award category students can be nominated for
// (extracurricular, creativity, good conduct, ...).
type AwardType struct {
	AwardTypeID int        `gorm:"primaryKey;column:award_type_id" json:"award_type_id"`
	TypeCode    string     `gorm:"column:type_code;unique" json:"type_code"`
	TypeName    string     `gorm:"column:type_name" json:"type_name"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	IsActive    bool       `gorm:"column:is_active" json:"is_active"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// AcademicPeriod is the year/semester window an application belongs to.
type AcademicPeriod struct {
	PeriodID     int        `gorm:"primaryKey;column:period_id" json:"period_id"`
	AcademicYear int        `gorm:"column:academic_year" json:"academic_year"`
	Semester     int        `gorm:"column:semester" json:"semester"`
	StartDate    *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate      *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	IsActive     bool       `gorm:"column:is_active" json:"is_active"`
	CampusID     *int       `gorm:"column:campus_id" json:"campus_id,omitempty"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Campus *Campus `gorm:"foreignKey:CampusID" json:"campus,omitempty"`
}

// TableName overrides
func (AwardType) TableName() string {
	return "award_types"
}

func (AcademicPeriod) TableName() string {
	return "academic_periods"
}
