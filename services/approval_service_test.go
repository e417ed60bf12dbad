package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"student-award-api/models"
)

func TestAdvanceApplicationGuards(t *testing.T) {
	actor := principalWith(models.UserRole{Role: models.RoleDean, FacultyID: intPtr(10)})

	t.Run("committee stage advances only through close", func(t *testing.T) {
		app := &models.Application{ApplicationID: 7, CurrentStatus: models.StatusCommitteeReview}
		_, err := AdvanceApplication(nil, actor, app, DecisionApprove, nil, nil)
		if !errors.Is(err, ErrVotingInProgress) {
			t.Fatalf("got %v, want ErrVotingInProgress", err)
		}
	})

	t.Run("draft cannot be approved", func(t *testing.T) {
		app := &models.Application{ApplicationID: 7, CurrentStatus: models.StatusDraft}
		_, err := AdvanceApplication(nil, actor, app, DecisionApprove, nil, nil)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("got %v, want ErrIllegalTransition", err)
		}
	})

	t.Run("override cannot skip a stage", func(t *testing.T) {
		app := &models.Application{ApplicationID: 7, CurrentStatus: models.StatusDeptReview}
		override := models.StatusPresidentReview
		_, err := AdvanceApplication(nil, actor, app, DecisionApprove, nil, &override)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("got %v, want ErrIllegalTransition", err)
		}
	})
}

func TestAdvanceTxAppliesCompareAndSet(t *testing.T) {
	now := time.Date(2026, 1, 20, 14, 0, 0, 0, time.UTC)
	withFixedClock(t, now)

	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE applications SET current_status = \?, update_at = \? WHERE application_id = \? AND current_status = \?`),
			args:    []driver.Value{"faculty_review", now, int64(7), "dept_review"},
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `approval_logs`"),
			args:    []driver.Value{int64(7), int64(5), "approve", "dept_review", "faculty_review", nil, now},
			result:  scriptedResult{lastInsertID: 3, rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	err := advanceTx(db, 5, 7, models.StatusDeptReview, models.StatusFacultyReview, models.ActionApprove, nil)
	if err != nil {
		t.Fatalf("advanceTx returned error: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestAdvanceTxLosesRace(t *testing.T) {
	now := time.Date(2026, 1, 20, 14, 0, 0, 0, time.UTC)
	withFixedClock(t, now)

	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE applications SET current_status = \?, update_at = \?`),
			args:    []driver.Value{"rejected", now, int64(7), "dept_review"},
			result:  scriptedResult{rowsAffected: 0},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	err := advanceTx(db, 5, 7, models.StatusDeptReview, models.StatusRejected, models.ActionReject, nil)
	if !errors.Is(err, ErrStaleState) {
		t.Fatalf("got %v, want ErrStaleState", err)
	}
	// The loser must not append an audit entry.
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestSubmitApplicationGuards(t *testing.T) {
	t.Run("only drafts submit", func(t *testing.T) {
		app := &models.Application{ApplicationID: 7, StudentID: 3, CurrentStatus: models.StatusSubmitted}
		if err := SubmitApplication(nil, 3, app); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("got %v, want ErrIllegalTransition", err)
		}
	})

	t.Run("only the owner submits", func(t *testing.T) {
		app := &models.Application{ApplicationID: 7, StudentID: 3, CurrentStatus: models.StatusDraft}
		if err := SubmitApplication(nil, 4, app); !errors.Is(err, ErrForbidden) {
			t.Fatalf("got %v, want ErrForbidden", err)
		}
	})
}

// TestFullApprovalLifecycle walks one application from draft to approved
// through every stage, checking the reviewer gate at each step and the
// audit trail at the end.
func TestFullApprovalLifecycle(t *testing.T) {
	scope := ApplicationScope{CampusID: 1, FacultyID: intPtr(10), DepartmentID: intPtr(100)}

	deptHead := principalWith(models.UserRole{Role: models.RoleDepartmentHead, DepartmentID: intPtr(100)})
	associateDean := principalWith(models.UserRole{Role: models.RoleAssociateDean, FacultyID: intPtr(10)})
	studentAffairs := principalWith(models.UserRole{Role: models.RoleStudentAffairs})
	chairman := principalWith(models.UserRole{Role: models.RoleCommitteeChairman, CampusID: intPtr(1)})
	president := principalWith(models.UserRole{Role: models.RolePresident})

	reviewers := map[models.Status]*Principal{
		models.StatusSubmitted:            deptHead,
		models.StatusDeptReview:           deptHead,
		models.StatusFacultyReview:        associateDean,
		models.StatusStudentAffairsReview: studentAffairs,
		models.StatusChairmanReview:       chairman,
		models.StatusPresidentReview:      president,
	}

	var logs []models.ApprovalLog
	record := func(action models.ActionType, from, to models.Status) {
		logs = append(logs, models.ApprovalLog{
			LogID:         len(logs) + 1,
			ApplicationID: 7,
			ActionType:    action,
			FromStatus:    &from,
			ToStatus:      &to,
		})
	}

	status := models.StatusDraft
	record(models.ActionSubmit, status, models.StatusSubmitted)
	status = models.StatusSubmitted

	for status != models.StatusApproved {
		if status == models.StatusCommitteeReview {
			// Three members vote, two in favor, then the chairman closes.
			for i := 0; i < 3; i++ {
				record(models.ActionVote, status, status)
			}
			votes := []models.CommitteeVote{{IsAgree: true}, {IsAgree: true}, {IsAgree: false}}
			summary := ComputeVotingSummary(7, votes, nil)
			if !summary.IsPassed {
				t.Fatalf("2 of 3 in favor must pass, got %+v", summary)
			}
			next, err := NextStatus(status, DecisionApprove)
			if err != nil {
				t.Fatalf("NextStatus(%s) error: %v", status, err)
			}
			record(models.ActionApprove, status, next)
			status = next
			continue
		}

		reviewer, ok := reviewers[status]
		if !ok {
			t.Fatalf("no reviewer configured for %s", status)
		}
		if !CanReviewApplication(reviewer, status, scope) {
			t.Fatalf("reviewer for %s denied", status)
		}
		// The department head has no business past the department stages.
		if status != models.StatusSubmitted && status != models.StatusDeptReview &&
			CanReviewApplication(deptHead, status, scope) {
			t.Fatalf("department head allowed at %s", status)
		}

		next, err := NextStatus(status, DecisionApprove)
		if err != nil {
			t.Fatalf("NextStatus(%s) error: %v", status, err)
		}
		record(models.ActionApprove, status, next)
		status = next
	}

	if got := ReplayStatus(logs); got != models.StatusApproved {
		t.Errorf("replayed status = %s, want approved", got)
	}
	if len(logs) != 11 {
		t.Errorf("audit entries = %d, want 11 (8 transitions plus 3 votes)", len(logs))
	}

	// A rejection anywhere along the chain would have ended the walk.
	if next, err := NextStatus(models.StatusPresidentReview, DecisionReject); err != nil || next != models.StatusRejected {
		t.Errorf("reject from president_review = (%s, %v), want rejected", next, err)
	}
}
