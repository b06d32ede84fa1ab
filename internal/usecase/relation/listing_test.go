package relation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/progmatch/mentorship-backend/internal/domain"
)

func TestListForUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rel, err := f.uc.SendRequest(ctx, orgRepID, f.mentorInput())
	if err != nil {
		t.Fatalf("SendRequest: %v", err)
	}
	f.relations.relations[50] = &domain.MentorshipRelation{
		ID: 50, MentorID: ptr(2), MenteeID: ptr(9),
		State:        domain.StateCompleted,
		CreationDate: f.now.Add(-time.Hour).Unix(),
		ActionUserID: 9,
	}

	views, err := f.uc.ListForUser(ctx, 2, nil)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("views = %d, want 2", len(views))
	}
	// Newest first.
	if views[0].ID != rel.ID || views[1].ID != 50 {
		t.Errorf("order = [%d, %d], want [%d, 50]", views[0].ID, views[1].ID, rel.ID)
	}
	if views[0].SentByMe {
		t.Errorf("the org rep sent the pending request, not the mentor")
	}

	pending := domain.StatePending
	views, err = f.uc.ListForUser(ctx, 2, &pending)
	if err != nil {
		t.Fatalf("ListForUser filtered: %v", err)
	}
	if len(views) != 1 || views[0].ID != rel.ID {
		t.Errorf("filtered views = %+v, want only the pending relation", views)
	}

	views, err = f.uc.ListForUser(ctx, 99, nil)
	if err != nil {
		t.Fatalf("ListForUser for uninvolved user: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("views = %d, want none for an uninvolved user", len(views))
	}
}

func TestCurrentRelation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.CurrentRelation(ctx, 2)
	if !errors.Is(err, domain.ErrRelationNotFound) {
		t.Errorf("error = %v, want %v", err, domain.ErrRelationNotFound)
	}

	f.relations.relations[50] = &domain.MentorshipRelation{
		ID: 50, MentorID: ptr(2), MenteeID: ptr(9), State: domain.StateAccepted,
	}

	rel, err := f.uc.CurrentRelation(ctx, 2)
	if err != nil {
		t.Fatalf("CurrentRelation: %v", err)
	}
	if rel.ID != 50 {
		t.Errorf("ID = %d, want 50", rel.ID)
	}
}
