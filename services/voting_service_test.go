package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"student-award-api/models"
)

func TestComputeVotingSummaryMajority(t *testing.T) {
	agree := models.CommitteeVote{IsAgree: true}
	disagree := models.CommitteeVote{IsAgree: false}

	tests := []struct {
		name       string
		votes      []models.CommitteeVote
		percentage int
		passed     bool
	}{
		{"3 agree 2 disagree", []models.CommitteeVote{agree, agree, agree, disagree, disagree}, 60, true},
		{"tie fails", []models.CommitteeVote{agree, agree, disagree, disagree}, 50, false},
		{"unanimous", []models.CommitteeVote{agree, agree, agree}, 100, true},
		{"single disagree", []models.CommitteeVote{disagree}, 0, false},
		{"2 of 3", []models.CommitteeVote{agree, agree, disagree}, 67, true},
		{"1 of 3", []models.CommitteeVote{agree, disagree, disagree}, 33, false},
		{"no votes", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ComputeVotingSummary(7, tt.votes, nil)
			if summary.VotePercentage != tt.percentage {
				t.Errorf("VotePercentage = %d, want %d", summary.VotePercentage, tt.percentage)
			}
			if summary.IsPassed != tt.passed {
				t.Errorf("IsPassed = %v, want %v", summary.IsPassed, tt.passed)
			}
			if summary.TotalVoters != len(tt.votes) {
				t.Errorf("TotalVoters = %d, want %d", summary.TotalVoters, len(tt.votes))
			}
			if summary.AgreeCount+summary.DisagreeCount != summary.TotalVoters {
				t.Error("agree + disagree must equal total")
			}
		})
	}
}

func TestCastVoteUpsertsAndLogs(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	withFixedClock(t, now)

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT current_status, voting_closed_at FROM applications`),
			args:    []driver.Value{int64(7)},
			columns: []string{"current_status", "voting_closed_at"},
			rows:    [][]driver.Value{{"committee_review", nil}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO committee_votes .* ON DUPLICATE KEY UPDATE`),
			args:    []driver.Value{int64(7), int64(42), true, nil, now, now},
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `approval_logs`"),
			args:    []driver.Value{int64(7), int64(42), "vote", "committee_review", "committee_review", "committee vote: agree", now},
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `committee_votes`.*LIMIT"),
			args:    []driver.Value{int64(7), int64(42), int64(1)},
			columns: []string{"vote_id", "application_id", "committee_id", "is_agree", "comment"},
			rows:    [][]driver.Value{{int64(1), int64(7), int64(42), true, nil}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	var vote models.CommitteeVote
	if err := castVoteTx(db, 42, 7, true, nil, &vote); err != nil {
		t.Fatalf("castVoteTx returned error: %v", err)
	}
	if vote.VoteID != 1 || !vote.IsAgree {
		t.Errorf("stored vote = %+v, want vote_id 1 agree", vote)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestCastVoteRejectedAfterClose(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	withFixedClock(t, now)
	closedAt := now.Add(-time.Hour)

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT current_status, voting_closed_at FROM applications`),
			args:    []driver.Value{int64(7)},
			columns: []string{"current_status", "voting_closed_at"},
			rows:    [][]driver.Value{{"committee_review", closedAt}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	var vote models.CommitteeVote
	err := castVoteTx(db, 42, 7, false, nil, &vote)
	if !errors.Is(err, ErrVotingClosed) {
		t.Fatalf("got %v, want ErrVotingClosed", err)
	}
	// No insert and no summary change happened after close.
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestCastVoteOutsideCommitteeStage(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT current_status, voting_closed_at FROM applications`),
			args:    []driver.Value{int64(7)},
			columns: []string{"current_status", "voting_closed_at"},
			rows:    [][]driver.Value{{"chairman_review", nil}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	var vote models.CommitteeVote
	if err := castVoteTx(db, 42, 7, true, nil, &vote); !errors.Is(err, ErrStaleState) {
		t.Fatalf("got %v, want ErrStaleState", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestCloseVotingRoutesByMajority(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	voteRows := func(agrees, disagrees int) [][]driver.Value {
		var rows [][]driver.Value
		id := int64(1)
		for i := 0; i < agrees; i++ {
			rows = append(rows, []driver.Value{id, int64(7), id + 100, true})
			id++
		}
		for i := 0; i < disagrees; i++ {
			rows = append(rows, []driver.Value{id, int64(7), id + 100, false})
			id++
		}
		return rows
	}

	tests := []struct {
		name       string
		agrees     int
		disagrees  int
		wantPassed bool
		wantNext   models.Status
		wantAction string
		comment    string
	}{
		{"majority passes", 2, 1, true, models.StatusChairmanReview, "approve", "voting closed: 2/3 agreed (67%)"},
		{"minority fails", 1, 2, false, models.StatusRejected, "reject", "voting closed: 1/3 agreed (33%)"},
		{"tie fails", 1, 1, false, models.StatusRejected, "reject", "voting closed: 1/2 agreed (50%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFixedClock(t, now)

			steps := []*queryStep{
				{
					kind:    kindQuery,
					pattern: regexp.MustCompile(`SELECT current_status, voting_closed_at FROM applications`),
					args:    []driver.Value{int64(7)},
					columns: []string{"current_status", "voting_closed_at"},
					rows:    [][]driver.Value{{"committee_review", nil}},
				},
				{
					kind:    kindQuery,
					pattern: regexp.MustCompile("SELECT .* FROM `committee_votes`"),
					args:    []driver.Value{int64(7)},
					columns: []string{"vote_id", "application_id", "committee_id", "is_agree"},
					rows:    voteRows(tt.agrees, tt.disagrees),
				},
				{
					kind:    kindExec,
					pattern: regexp.MustCompile(`UPDATE applications SET current_status = \?, voting_closed_at = \?`),
					args:    []driver.Value{string(tt.wantNext), now, now, int64(7), "committee_review"},
					result:  scriptedResult{rowsAffected: 1},
				},
				{
					kind:    kindExec,
					pattern: regexp.MustCompile("INSERT INTO `approval_logs`"),
					args:    []driver.Value{int64(7), int64(99), tt.wantAction, "committee_review", string(tt.wantNext), tt.comment, now},
					result:  scriptedResult{lastInsertID: 5, rowsAffected: 1},
				},
			}

			db, state, cleanup := newScriptedGormDB(t, steps)
			defer cleanup()

			passed, next, err := closeVotingTx(db, 99, 7)
			if err != nil {
				t.Fatalf("closeVotingTx returned error: %v", err)
			}
			if passed != tt.wantPassed {
				t.Errorf("passed = %v, want %v", passed, tt.wantPassed)
			}
			if next != tt.wantNext {
				t.Errorf("next = %s, want %s", next, tt.wantNext)
			}
			if err := state.verifyComplete(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestCloseVotingRequiresVotes(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT current_status, voting_closed_at FROM applications`),
			args:    []driver.Value{int64(7)},
			columns: []string{"current_status", "voting_closed_at"},
			rows:    [][]driver.Value{{"committee_review", nil}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `committee_votes`"),
			args:    []driver.Value{int64(7)},
			columns: []string{"vote_id", "application_id", "committee_id", "is_agree"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	if _, _, err := closeVotingTx(db, 99, 7); !errors.Is(err, ErrNoVotes) {
		t.Fatalf("got %v, want ErrNoVotes", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestCloseVotingAlreadyClosed(t *testing.T) {
	closedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT current_status, voting_closed_at FROM applications`),
			args:    []driver.Value{int64(7)},
			columns: []string{"current_status", "voting_closed_at"},
			rows:    [][]driver.Value{{"committee_review", closedAt}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	if _, _, err := closeVotingTx(db, 99, 7); !errors.Is(err, ErrVotingClosed) {
		t.Fatalf("got %v, want ErrVotingClosed", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}
