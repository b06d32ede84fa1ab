package domain

import "errors"

// Validation failures are returned as sentinel errors so the delivery layer can
// map each one to a stable HTTP status and message. Store-level failures are
// wrapped with fmt.Errorf and reach the caller as generic internal errors.
var (
	// Not-found.
	ErrUserNotFound     = errors.New("user does not exist")
	ErrMentorNotFound   = errors.New("mentor does not exist")
	ErrMenteeNotFound   = errors.New("mentee does not exist")
	ErrOrgRepNotFound   = errors.New("organization representative does not exist")
	ErrRelationNotFound = errors.New("mentorship relation does not exist")

	// Conflicts.
	ErrNotMentorOrOrgRep      = errors.New("user must be either the mentor or the organization representative")
	ErrNotMenteeOrOrgRep      = errors.New("user must be either the mentee or the organization representative")
	ErrSameAsOrgRep           = errors.New("mentor or mentee id cannot be the organization representative's id")
	ErrSameParty              = errors.New("mentor id cannot be the same as mentee id")
	ErrMentorNotAvailable     = errors.New("mentor is not available to mentor")
	ErrMenteeNotAvailable     = errors.New("mentee is not available to be mentored")
	ErrMentorAlreadyInRelation = errors.New("mentor is already in a mentorship relation")
	ErrMenteeAlreadyInRelation = errors.New("mentee is already in a mentorship relation")
	ErrUserAlreadyInRelation   = errors.New("user is already involved in a mentorship relation")
	ErrRelationNotAccepted    = errors.New("mentorship relation is not in an accepted state")
	ErrRelationNotPending     = errors.New("mentorship relation is not in a pending state")
	ErrSelfAccept             = errors.New("cannot accept a mentorship request sent by yourself")
	ErrUninvolved             = errors.New("cannot accept a mentorship relation you are not involved in")
	ErrAlreadyRequested       = errors.New("mentorship relation has already been requested")
	ErrMentorAlreadyAccepted  = errors.New("mentor side of the relation has already been accepted")
	ErrMenteeAlreadyAccepted  = errors.New("mentee side of the relation has already been accepted")

	// Malformed input.
	ErrInvalidEndDate  = errors.New("end date is invalid")
	ErrEndDateInPast   = errors.New("end date is before the present time")
	ErrMissingMentorID = errors.New("mentor id field is missing")
)
