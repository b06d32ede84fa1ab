// Package user exposes the current user's account and the availability flags
// the matching workflow gates on.
package user

import (
	"context"

	"github.com/progmatch/mentorship-backend/internal/domain"
	"github.com/progmatch/mentorship-backend/internal/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// UpdateAvailabilityRequest carries the availability flags. Each field is
// optional; absent fields keep their stored value.
type UpdateAvailabilityRequest struct {
	AvailableToMentor *bool `json:"available_to_mentor"`
	NeedMentoring     *bool `json:"need_mentoring"`
}

// GetCurrent returns the authenticated user's account.
func (uc *UserUseCase) GetCurrent(ctx context.Context, userID int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateAvailability updates the flags that make a user eligible as a mentor
// or mentee in new relation requests. Existing relations are unaffected.
func (uc *UserUseCase) UpdateAvailability(ctx context.Context, userID int64, req *UpdateAvailabilityRequest) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.AvailableToMentor != nil {
		user.AvailableToMentor = *req.AvailableToMentor
	}
	if req.NeedMentoring != nil {
		user.NeedMentoring = *req.NeedMentoring
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
