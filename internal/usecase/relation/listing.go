package relation

import (
	"context"
	"sort"

	"github.com/progmatch/mentorship-backend/internal/domain"
)

// RelationView is a listing item: the relation plus whether the current user
// made the last workflow action on it.
type RelationView struct {
	*domain.MentorshipRelation
	SentByMe bool `json:"sent_by_me"`
}

// ListForUser returns every relation the user is a party of, newest first.
// A non-nil state narrows the listing to that lifecycle state.
func (uc *RelationUseCase) ListForUser(ctx context.Context, userID int64, state *domain.RelationState) ([]*RelationView, error) {
	relations, err := uc.relationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*RelationView, 0, len(relations))
	for _, rel := range relations {
		if state != nil && rel.State != *state {
			continue
		}
		views = append(views, &RelationView{
			MentorshipRelation: rel,
			SentByMe:           rel.ActionUserID == userID,
		})
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].CreationDate > views[j].CreationDate
	})
	return views, nil
}

// CurrentRelation returns the user's accepted relation, or ErrRelationNotFound
// when they have none.
func (uc *RelationUseCase) CurrentRelation(ctx context.Context, userID int64) (*domain.MentorshipRelation, error) {
	relations, err := uc.relationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, rel := range relations {
		if rel.State == domain.StateAccepted {
			return rel, nil
		}
	}
	return nil, domain.ErrRelationNotFound
}
