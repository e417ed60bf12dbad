package services

import (
	"time"

	"student-award-api/models"

	"gorm.io/gorm"
)

// timeNow is swapped out by tests.
var timeNow = time.Now

// AdvanceApplication applies a reviewer's approve/reject decision and
// appends the matching audit entry in one transaction. toOverride, when
// non-nil, is validated against the legal transition table instead of being
// trusted. The transition is a compare-and-set on current_status: when two
// reviewers race, the loser gets ErrStaleState and must refetch.
//
// The committee_review stage is excluded here; it advances only through
// CloseVoting.
func AdvanceApplication(db *gorm.DB, actor *Principal, app *models.Application, decision Decision, comment *string, toOverride *models.Status) (models.Status, error) {
	from := app.CurrentStatus
	if from == models.StatusCommitteeReview {
		return "", ErrVotingInProgress
	}

	var next models.Status
	var err error
	if toOverride != nil {
		decision, err = ValidateTransition(from, *toOverride)
		if err != nil {
			return "", err
		}
		next = *toOverride
	} else {
		next, err = NextStatus(from, decision)
		if err != nil {
			return "", err
		}
	}

	action := models.ActionApprove
	if decision == DecisionReject {
		action = models.ActionReject
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return advanceTx(tx, actor.UserID, app.ApplicationID, from, next, action, comment)
	})
	if err != nil {
		return "", err
	}

	app.CurrentStatus = next
	NotifyStatusChange(db, app, from, next)
	return next, nil
}

// advanceTx performs the compare-and-set status update plus the audit
// append. Callers supply the surrounding transaction.
func advanceTx(tx *gorm.DB, actorID, applicationID int, from, next models.Status, action models.ActionType, comment *string) error {
	now := timeNow()
	res := tx.Exec(
		"UPDATE applications SET current_status = ?, update_at = ? WHERE application_id = ? AND current_status = ? AND delete_at IS NULL",
		next, now, applicationID, from,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleState
	}

	return AppendApprovalLog(tx, &models.ApprovalLog{
		ApplicationID: applicationID,
		ActorID:       actorID,
		ActionType:    action,
		FromStatus:    &from,
		ToStatus:      &next,
		Comment:       comment,
		CreateAt:      now,
	})
}

// SubmitApplication moves a student's own draft to submitted and records the
// submit audit entry.
func SubmitApplication(db *gorm.DB, studentID int, app *models.Application) error {
	if app.CurrentStatus != models.StatusDraft {
		return ErrIllegalTransition
	}
	if app.StudentID != studentID {
		return ErrForbidden
	}

	from := models.StatusDraft
	next := models.StatusSubmitted
	err := db.Transaction(func(tx *gorm.DB) error {
		now := timeNow()
		res := tx.Exec(
			"UPDATE applications SET current_status = ?, submitted_at = ?, update_at = ? WHERE application_id = ? AND current_status = ? AND delete_at IS NULL",
			next, now, now, app.ApplicationID, from,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleState
		}

		return AppendApprovalLog(tx, &models.ApprovalLog{
			ApplicationID: app.ApplicationID,
			ActorID:       studentID,
			ActionType:    models.ActionSubmit,
			FromStatus:    &from,
			ToStatus:      &next,
			CreateAt:      now,
		})
	})
	if err != nil {
		return err
	}

	app.CurrentStatus = next
	return nil
}
