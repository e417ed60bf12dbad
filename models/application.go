package models

import "time"

// Status is the closed set of application workflow states. Transitions are
// performed only by the workflow services, never by direct field edits.
type Status string

const (
	StatusDraft                Status = "draft"
	StatusSubmitted            Status = "submitted"
	StatusDeptReview           Status = "dept_review"
	StatusFacultyReview        Status = "faculty_review"
	StatusStudentAffairsReview Status = "student_affairs_review"
	StatusCommitteeReview      Status = "committee_review"
	StatusChairmanReview       Status = "chairman_review"
	StatusPresidentReview      Status = "president_review"
	StatusApproved             Status = "approved"
	StatusRejected             Status = "rejected"
)

// IsValid reports whether s is one of the defined statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusDeptReview, StatusFacultyReview,
		StatusStudentAffairsReview, StatusCommitteeReview, StatusChairmanReview,
		StatusPresidentReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted from s.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// IsReviewable reports whether some reviewer is responsible for acting on s.
// Draft and the two terminal statuses are reviewable by no one.
func (s Status) IsReviewable() bool {
	return s.IsValid() && s != StatusDraft && !s.IsTerminal()
}

// Application is the unit of work flowing through the approval chain.
// Faculty and department placement derive from the student's profile;
// only campus_id is denormalized onto the row.
type Application struct {
	ApplicationID     int        `gorm:"primaryKey;column:application_id" json:"application_id"`
	ApplicationNumber string     `gorm:"column:application_number;unique" json:"application_number"`
	StudentID         int        `gorm:"column:student_id" json:"student_id"`
	AwardTypeID       int        `gorm:"column:award_type_id" json:"award_type_id"`
	PeriodID          int        `gorm:"column:period_id" json:"period_id"`
	CampusID          int        `gorm:"column:campus_id" json:"campus_id"`
	ProjectName       *string    `gorm:"column:project_name" json:"project_name,omitempty"`
	Description       *string    `gorm:"column:description" json:"description,omitempty"`
	Achievements      *string    `gorm:"column:achievements" json:"achievements,omitempty"`
	ActivityHours     *int       `gorm:"column:activity_hours" json:"activity_hours,omitempty"`
	CurrentStatus     Status     `gorm:"column:current_status" json:"current_status"`
	VotingClosedAt    *time.Time `gorm:"column:voting_closed_at" json:"voting_closed_at,omitempty"`
	SubmittedAt       *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	CreateAt          *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt          *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt          *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Student     *User                   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	AwardType   *AwardType              `gorm:"foreignKey:AwardTypeID" json:"award_type,omitempty"`
	Period      *AcademicPeriod         `gorm:"foreignKey:PeriodID" json:"period,omitempty"`
	Campus      *Campus                 `gorm:"foreignKey:CampusID" json:"campus,omitempty"`
	Votes       []CommitteeVote         `gorm:"foreignKey:ApplicationID" json:"votes,omitempty"`
	Logs        []ApprovalLog           `gorm:"foreignKey:ApplicationID" json:"logs,omitempty"`
	Attachments []ApplicationAttachment `gorm:"foreignKey:ApplicationID" json:"attachments,omitempty"`
}

// ApplicationAttachment is file metadata only; upload and storage are
// handled by an external collaborator.
type ApplicationAttachment struct {
	AttachmentID  int        `gorm:"primaryKey;column:attachment_id" json:"attachment_id"`
	ApplicationID int        `gorm:"column:application_id" json:"application_id"`
	FileName      string     `gorm:"column:file_name" json:"file_name"`
	FilePath      string     `gorm:"column:file_path" json:"file_path"`
	FileType      *string    `gorm:"column:file_type" json:"file_type,omitempty"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (Application) TableName() string {
	return "applications"
}

func (ApplicationAttachment) TableName() string {
	return "application_attachments"
}
