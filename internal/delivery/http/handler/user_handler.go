package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/progmatch/mentorship-backend/internal/usecase/user"
)

type UserHandler struct {
	userUseCase *user.UserUseCase
}

func NewUserHandler(userUseCase *user.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// GetCurrent handles GET /user
// @Summary Get the authenticated user's account
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user [get]
func (h *UserHandler) GetCurrent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	account, err := h.userUseCase.GetCurrent(c.Request.Context(), userID)
	if err != nil {
		status, body := workflowError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateAvailability handles PUT /user/availability
// @Summary Update the availability flags used by relation requests
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body user.UpdateAvailabilityRequest true "Availability flags"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user/availability [put]
func (h *UserHandler) UpdateAvailability(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req user.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	account, err := h.userUseCase.UpdateAvailability(c.Request.Context(), userID, &req)
	if err != nil {
		status, body := workflowError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, account)
}
