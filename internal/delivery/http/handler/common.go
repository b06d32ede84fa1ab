package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/progmatch/mentorship-backend/internal/domain"
)

// ErrorResponse is the error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the success body for workflow operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// bindingError turns gin binding failures into a stable message, surfacing the
// first missing field when the validator reports one.
func bindingError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return ErrorResponse{Error: verrs[0].Field() + " field is invalid or missing"}
	}
	return ErrorResponse{Error: "invalid request body"}
}

// statusForWorkflowError maps domain sentinel errors onto the HTTP statuses the
// workflow contract promises. Unknown errors are treated as infrastructure
// failures.
func statusForWorkflowError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMentorNotFound),
		errors.Is(err, domain.ErrMenteeNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRelationNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrRelationNotPending),
		errors.Is(err, domain.ErrSelfAccept),
		errors.Is(err, domain.ErrUninvolved),
		errors.Is(err, domain.ErrUserAlreadyInRelation):
		return http.StatusForbidden

	case errors.Is(err, domain.ErrNotMentorOrOrgRep),
		errors.Is(err, domain.ErrNotMenteeOrOrgRep),
		errors.Is(err, domain.ErrSameAsOrgRep),
		errors.Is(err, domain.ErrSameParty),
		errors.Is(err, domain.ErrOrgRepNotFound),
		errors.Is(err, domain.ErrInvalidEndDate),
		errors.Is(err, domain.ErrEndDateInPast),
		errors.Is(err, domain.ErrMentorNotAvailable),
		errors.Is(err, domain.ErrMenteeNotAvailable),
		errors.Is(err, domain.ErrMentorAlreadyInRelation),
		errors.Is(err, domain.ErrMenteeAlreadyInRelation),
		errors.Is(err, domain.ErrRelationNotAccepted),
		errors.Is(err, domain.ErrMissingMentorID),
		errors.Is(err, domain.ErrAlreadyRequested),
		errors.Is(err, domain.ErrMentorAlreadyAccepted),
		errors.Is(err, domain.ErrMenteeAlreadyAccepted):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// workflowError writes the mapped status; infrastructure details never leak to
// the client.
func workflowError(err error) (int, ErrorResponse) {
	status := statusForWorkflowError(err)
	if status == http.StatusInternalServerError {
		return status, ErrorResponse{Error: "internal server error"}
	}
	return status, ErrorResponse{Error: err.Error()}
}
