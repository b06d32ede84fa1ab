package repository

import (
	"context"

	"github.com/progmatch/mentorship-backend/internal/domain"
)

type RelationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.MentorshipRelation, error)
	Create(ctx context.Context, relation *domain.MentorshipRelation) error
	Update(ctx context.Context, relation *domain.MentorshipRelation) error
	// ListByUser returns every relation the user participates in, on either
	// the mentor or the mentee side.
	ListByUser(ctx context.Context, userID int64) ([]*domain.MentorshipRelation, error)
}
