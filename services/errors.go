package services

import "errors"

// Workflow errors. Controllers map these onto HTTP statuses: forbidden
// checks answer 403 without detail, illegal transitions 400, conflicts with
// current resource state 409.
var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrForbidden         = errors.New("not permitted")
	ErrStaleState        = errors.New("application state changed, refetch and retry")
	ErrVotingClosed      = errors.New("voting already closed")
	ErrVotingInProgress  = errors.New("committee voting in progress, close voting to proceed")
	ErrNoVotes           = errors.New("cannot close voting without any votes")
)
