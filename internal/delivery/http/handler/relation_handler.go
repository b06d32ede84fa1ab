package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/progmatch/mentorship-backend/internal/domain"
	"github.com/progmatch/mentorship-backend/internal/usecase/relation"
)

type RelationHandler struct {
	relationUseCase *relation.RelationUseCase
}

func NewRelationHandler(relationUseCase *relation.RelationUseCase) *RelationHandler {
	return &RelationHandler{relationUseCase: relationUseCase}
}

// SendRelationRequest is the body of a send-request call. Exactly one of
// mentor_id/mentee_id must be present; relation_id marks a second-leg request.
type SendRelationRequest struct {
	OrgRepID   int64  `json:"org_rep_id" binding:"required"`
	MentorID   *int64 `json:"mentor_id"`
	MenteeID   *int64 `json:"mentee_id"`
	RelationID *int64 `json:"relation_id"`
	StartDate  int64  `json:"start_date" binding:"required"`
	EndDate    int64  `json:"end_date" binding:"required"`
	Notes      string `json:"notes" binding:"required"`
}

// AcceptRelationRequest is the body of an accept call.
type AcceptRelationRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// SendRequest handles POST /program_mentorship_relations/send_request
// @Summary Send a program mentorship relation request
// @Description Creates a relation's first leg, or attaches the second party to an existing accepted leg
// @Tags relations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SendRelationRequest true "Relation request"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /program_mentorship_relations/send_request [post]
func (h *RelationHandler) SendRequest(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req SendRelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}
	if req.MentorID == nil && req.MenteeID == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "mentor_id or mentee_id field is missing"})
		return
	}
	if req.MentorID != nil && req.MenteeID != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "mentor_id and mentee_id fields cannot both be present"})
		return
	}

	input := &relation.SendRequestInput{
		OrgRepID:   req.OrgRepID,
		MentorID:   req.MentorID,
		MenteeID:   req.MenteeID,
		RelationID: req.RelationID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Notes:      req.Notes,
	}

	if _, err := h.relationUseCase.SendRequest(c.Request.Context(), actorID, input); err != nil {
		status, body := workflowError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{
		Message: "program mentorship relation was sent successfully",
	})
}

// AcceptRequest handles PUT /program_mentorship_relations/:org_rep_id/accept/:request_id
// @Summary Accept a program mentorship relation request
// @Description First accept marks the leg accepted; the second flips the relation to accepted
// @Tags relations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param org_rep_id path int true "Organization representative ID"
// @Param request_id path int true "Relation request ID"
// @Param request body AcceptRelationRequest true "Accept request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /program_mentorship_relations/{org_rep_id}/accept/{request_id} [put]
func (h *RelationHandler) AcceptRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	orgRepID, err := strconv.ParseInt(c.Param("org_rep_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid org rep id"})
		return
	}
	requestID, err := strconv.ParseInt(c.Param("request_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
		return
	}

	var req AcceptRelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "notes field is missing"})
		return
	}

	if err := h.relationUseCase.AcceptRequest(c.Request.Context(), userID, orgRepID, requestID, req.Notes); err != nil {
		status, body := workflowError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: "mentorship relation was accepted successfully",
	})
}

// ListRelations handles GET /program_mentorship_relations
// @Summary List the current user's mentorship relations
// @Tags relations
// @Security BearerAuth
// @Produce json
// @Param state query string false "Filter by relation state" Enums(pending, accepted, rejected, cancelled, completed)
// @Success 200 {array} relation.RelationView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /program_mentorship_relations [get]
func (h *RelationHandler) ListRelations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var state *domain.RelationState
	if raw := c.Query("state"); raw != "" {
		parsed, ok := parseRelationState(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid state filter"})
			return
		}
		state = &parsed
	}

	views, err := h.relationUseCase.ListForUser(c.Request.Context(), userID, state)
	if err != nil {
		status, body := workflowError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetCurrentRelation handles GET /program_mentorship_relations/current
// @Summary Get the current user's accepted mentorship relation
// @Tags relations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.MentorshipRelation
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /program_mentorship_relations/current [get]
func (h *RelationHandler) GetCurrentRelation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	rel, err := h.relationUseCase.CurrentRelation(c.Request.Context(), userID)
	if err != nil {
		status, body := workflowError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, rel)
}

func parseRelationState(raw string) (domain.RelationState, bool) {
	switch state := domain.RelationState(raw); state {
	case domain.StatePending, domain.StateAccepted, domain.StateRejected,
		domain.StateCancelled, domain.StateCompleted:
		return state, true
	default:
		return "", false
	}
}

func currentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
