package models

import "time"

// ActionType is the audit vocabulary for approval log entries. The return
// action is recorded when present in historical data but no status
// transition produces it; see DESIGN.md.
type ActionType string

const (
	ActionSubmit  ActionType = "submit"
	ActionApprove ActionType = "approve"
	ActionReject  ActionType = "reject"
	ActionVote    ActionType = "vote"
	ActionReturn  ActionType = "return"
)

// IsValid reports whether a is one of the defined action types.
func (a ActionType) IsValid() bool {
	switch a {
	case ActionSubmit, ActionApprove, ActionReject, ActionVote, ActionReturn:
		return true
	}
	return false
}

// ApprovalLog is an append-only audit record. Rows are never updated or
// deleted; the auto-incremented log_id totally orders entries within an
// application even when two land in the same millisecond.
type ApprovalLog struct {
	LogID         int        `gorm:"primaryKey;column:log_id" json:"log_id"`
	ApplicationID int        `gorm:"column:application_id" json:"application_id"`
	ActorID       int        `gorm:"column:actor_id" json:"actor_id"`
	ActionType    ActionType `gorm:"column:action_type" json:"action_type"`
	FromStatus    *Status    `gorm:"column:from_status" json:"from_status,omitempty"`
	ToStatus      *Status    `gorm:"column:to_status" json:"to_status,omitempty"`
	Comment       *string    `gorm:"column:comment" json:"comment,omitempty"`
	CreateAt      time.Time  `gorm:"column:create_at" json:"created_at"`

	Actor *User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}

// TableName override
func (ApprovalLog) TableName() string {
	return "approval_logs"
}
