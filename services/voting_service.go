package services

import (
	"fmt"
	"math"
	"time"

	"student-award-api/models"

	"gorm.io/gorm"
)

// votingState is what the vote and close paths need to know about the
// application row while holding its lock.
type votingState struct {
	CurrentStatus  models.Status `gorm:"column:current_status"`
	VotingClosedAt *time.Time    `gorm:"column:voting_closed_at"`
}

// lockApplication reads the application's workflow columns under a row lock
// so that concurrent votes and a close are serialized.
func lockApplication(tx *gorm.DB, applicationID int) (*votingState, error) {
	var state votingState
	res := tx.Raw(
		"SELECT current_status, voting_closed_at FROM applications WHERE application_id = ? AND delete_at IS NULL FOR UPDATE",
		applicationID,
	).Scan(&state)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &state, nil
}

// ComputeVotingSummary derives the live tally from the vote rows. Passing
// requires strictly more than half of cast votes agreeing; with 2-2 the
// percentage is 50 and the vote fails.
func ComputeVotingSummary(applicationID int, votes []models.CommitteeVote, closedAt *time.Time) models.VotingSummary {
	summary := models.VotingSummary{
		ApplicationID:  applicationID,
		TotalVoters:    len(votes),
		VotingClosedAt: closedAt,
	}
	for _, vote := range votes {
		if vote.IsAgree {
			summary.AgreeCount++
		} else {
			summary.DisagreeCount++
		}
	}
	if summary.TotalVoters > 0 {
		summary.VotePercentage = int(math.Round(float64(summary.AgreeCount) / float64(summary.TotalVoters) * 100))
	}
	summary.IsPassed = summary.VotePercentage > 50
	return summary
}

// CastVote upserts the voter's position on an application at
// committee_review. A re-vote replaces the stored row; there is no
// already-voted error. Votes arriving after the chairman closed the stage
// get ErrVotingClosed. One audit entry per cast records the direction
// without changing status.
func CastVote(db *gorm.DB, voter *Principal, app *models.Application, isAgree bool, comment *string) (*models.CommitteeVote, error) {
	var vote models.CommitteeVote
	err := db.Transaction(func(tx *gorm.DB) error {
		return castVoteTx(tx, voter.UserID, app.ApplicationID, isAgree, comment, &vote)
	})
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func castVoteTx(tx *gorm.DB, voterID, applicationID int, isAgree bool, comment *string, out *models.CommitteeVote) error {
	state, err := lockApplication(tx, applicationID)
	if err != nil {
		return err
	}
	if state.VotingClosedAt != nil {
		return ErrVotingClosed
	}
	if state.CurrentStatus != models.StatusCommitteeReview {
		return ErrStaleState
	}

	now := timeNow()
	res := tx.Exec(
		"INSERT INTO committee_votes (application_id, committee_id, is_agree, comment, create_at, update_at)"+
			" VALUES (?, ?, ?, ?, ?, ?)"+
			" ON DUPLICATE KEY UPDATE is_agree = VALUES(is_agree), comment = VALUES(comment), update_at = VALUES(update_at)",
		applicationID, voterID, isAgree, comment, now, now,
	)
	if res.Error != nil {
		return res.Error
	}

	direction := "agree"
	if !isAgree {
		direction = "disagree"
	}
	voteComment := fmt.Sprintf("committee vote: %s", direction)
	status := state.CurrentStatus
	if err := AppendApprovalLog(tx, &models.ApprovalLog{
		ApplicationID: applicationID,
		ActorID:       voterID,
		ActionType:    models.ActionVote,
		FromStatus:    &status,
		ToStatus:      &status,
		Comment:       &voteComment,
		CreateAt:      now,
	}); err != nil {
		return err
	}

	return tx.Where("application_id = ? AND committee_id = ?", applicationID, voterID).
		First(out).Error
}

// GetVotingSummary derives the summary for an application at read time.
func GetVotingSummary(db *gorm.DB, app *models.Application) (models.VotingSummary, error) {
	var votes []models.CommitteeVote
	if err := db.Where("application_id = ?", app.ApplicationID).Find(&votes).Error; err != nil {
		return models.VotingSummary{}, err
	}
	return ComputeVotingSummary(app.ApplicationID, votes, app.VotingClosedAt), nil
}

// CloseVoting finalizes the committee stage: it freezes the vote set by
// stamping voting_closed_at and atomically routes the application to
// chairman_review on a passing tally or rejected otherwise. This is the only
// path by which committee_review advances. Closing with zero votes is
// refused. Returns whether the vote passed.
func CloseVoting(db *gorm.DB, closer *Principal, app *models.Application) (bool, error) {
	var passed bool
	var next models.Status
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		passed, next, err = closeVotingTx(tx, closer.UserID, app.ApplicationID)
		return err
	})
	if err != nil {
		return false, err
	}

	from := app.CurrentStatus
	app.CurrentStatus = next
	now := timeNow()
	app.VotingClosedAt = &now
	NotifyStatusChange(db, app, from, next)
	return passed, nil
}

func closeVotingTx(tx *gorm.DB, closerID, applicationID int) (bool, models.Status, error) {
	state, err := lockApplication(tx, applicationID)
	if err != nil {
		return false, "", err
	}
	if state.VotingClosedAt != nil {
		return false, "", ErrVotingClosed
	}
	if state.CurrentStatus != models.StatusCommitteeReview {
		return false, "", ErrStaleState
	}

	var votes []models.CommitteeVote
	if err := tx.Where("application_id = ?", applicationID).Find(&votes).Error; err != nil {
		return false, "", err
	}
	if len(votes) == 0 {
		return false, "", ErrNoVotes
	}

	summary := ComputeVotingSummary(applicationID, votes, nil)
	decision := DecisionReject
	action := models.ActionReject
	if summary.IsPassed {
		decision = DecisionApprove
		action = models.ActionApprove
	}
	next, err := NextStatus(models.StatusCommitteeReview, decision)
	if err != nil {
		return false, "", err
	}

	now := timeNow()
	res := tx.Exec(
		"UPDATE applications SET current_status = ?, voting_closed_at = ?, update_at = ? WHERE application_id = ? AND current_status = ? AND voting_closed_at IS NULL",
		next, now, now, applicationID, models.StatusCommitteeReview,
	)
	if res.Error != nil {
		return false, "", res.Error
	}
	if res.RowsAffected == 0 {
		return false, "", ErrStaleState
	}

	from := models.StatusCommitteeReview
	comment := fmt.Sprintf("voting closed: %d/%d agreed (%d%%)",
		summary.AgreeCount, summary.TotalVoters, summary.VotePercentage)
	if err := AppendApprovalLog(tx, &models.ApprovalLog{
		ApplicationID: applicationID,
		ActorID:       closerID,
		ActionType:    action,
		FromStatus:    &from,
		ToStatus:      &next,
		Comment:       &comment,
		CreateAt:      now,
	}); err != nil {
		return false, "", err
	}

	return summary.IsPassed, next, nil
}
