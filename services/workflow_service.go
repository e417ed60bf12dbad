package services

import (
	"student-award-api/models"
)

// Decision is a reviewer's verdict on an application at its current stage.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// approveFlow is the fixed linear successor table. Rejection from any
// reviewable status lands on rejected; there is no return-for-revision
// transition in the chain.
var approveFlow = map[models.Status]models.Status{
	models.StatusSubmitted:            models.StatusDeptReview,
	models.StatusDeptReview:           models.StatusFacultyReview,
	models.StatusFacultyReview:        models.StatusStudentAffairsReview,
	models.StatusStudentAffairsReview: models.StatusCommitteeReview,
	models.StatusCommitteeReview:      models.StatusChairmanReview,
	models.StatusChairmanReview:       models.StatusPresidentReview,
	models.StatusPresidentReview:      models.StatusApproved,
}

// stageReviewers maps each reviewable status to the roles allowed to act on
// it. faculty_review is the only stage with an alternate reviewer; the dean
// and associate dean are interchangeable there. committee_review lists the
// committee member for vote casting only; the stage itself advances through
// CloseVoting, never through a single reviewer's approval.
var stageReviewers = map[models.Status][]models.AppRole{
	models.StatusSubmitted:            {models.RoleDepartmentHead},
	models.StatusDeptReview:           {models.RoleDepartmentHead},
	models.StatusFacultyReview:        {models.RoleDean, models.RoleAssociateDean},
	models.StatusStudentAffairsReview: {models.RoleStudentAffairs},
	models.StatusCommitteeReview:      {models.RoleCommitteeMember},
	models.StatusChairmanReview:       {models.RoleCommitteeChairman},
	models.StatusPresidentReview:      {models.RolePresident},
}

// NextStatus computes the deterministic successor for a decision. Calling it
// from draft or a terminal status is a caller defect; the authorization gate
// is expected to have excluded those before the state machine is reached.
func NextStatus(current models.Status, decision Decision) (models.Status, error) {
	if !current.IsReviewable() {
		return "", ErrIllegalTransition
	}

	switch decision {
	case DecisionApprove:
		next, ok := approveFlow[current]
		if !ok {
			return "", ErrIllegalTransition
		}
		return next, nil
	case DecisionReject:
		return models.StatusRejected, nil
	}

	return "", ErrIllegalTransition
}

// ValidateTransition checks an explicit to_status override against the legal
// transition table: it must be either the approve successor of current or
// rejected.
func ValidateTransition(current, next models.Status) (Decision, error) {
	if !current.IsReviewable() || !next.IsValid() {
		return "", ErrIllegalTransition
	}
	if next == models.StatusRejected {
		return DecisionReject, nil
	}
	if successor, ok := approveFlow[current]; ok && successor == next {
		return DecisionApprove, nil
	}
	return "", ErrIllegalTransition
}

// ReviewerRolesFor returns the roles permitted to act on a status. Empty for
// draft and terminal statuses.
func ReviewerRolesFor(status models.Status) []models.AppRole {
	return stageReviewers[status]
}

// ReplayStatus folds an application's approval log, oldest entry first, and
// returns the status the recorded transitions arrive at. The history view
// uses it to reconstruct the narrative; workflow decisions never do.
func ReplayStatus(logs []models.ApprovalLog) models.Status {
	status := models.StatusDraft
	for _, entry := range logs {
		if entry.ToStatus != nil {
			status = *entry.ToStatus
		}
	}
	return status
}
