package models

import "time"

// CommitteeVote is one member's position on one application while it sits at
// committee_review. At most one row per (application, committee) pair; a
// re-vote updates the row in place. Once voting closes the rows are a frozen
// historical record.
type CommitteeVote struct {
	VoteID        int        `gorm:"primaryKey;column:vote_id" json:"vote_id"`
	ApplicationID int        `gorm:"column:application_id;uniqueIndex:uniq_application_committee" json:"application_id"`
	CommitteeID   int        `gorm:"column:committee_id;uniqueIndex:uniq_application_committee" json:"committee_id"`
	IsAgree       bool       `gorm:"column:is_agree" json:"is_agree"`
	Comment       *string    `gorm:"column:comment" json:"comment,omitempty"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`

	Committee *User `gorm:"foreignKey:CommitteeID" json:"committee,omitempty"`
}

// VotingSummary is derived from the vote rows at read time, never authored
// independently. Passed requires strictly more than half of cast votes
// agreeing; a tie does not pass.
type VotingSummary struct {
	ApplicationID  int        `json:"application_id"`
	TotalVoters    int        `json:"total_voters"`
	AgreeCount     int        `json:"agree_count"`
	DisagreeCount  int        `json:"disagree_count"`
	VotePercentage int        `json:"vote_percentage"`
	IsPassed       bool       `json:"is_passed"`
	VotingClosedAt *time.Time `json:"voting_closed_at,omitempty"`
}

// TableName override
func (CommitteeVote) TableName() string {
	return "committee_votes"
}
