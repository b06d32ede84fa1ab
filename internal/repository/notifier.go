package repository

import (
	"context"

	"github.com/progmatch/mentorship-backend/internal/domain"
)

// Notifier hands workflow events to the out-of-process notification pipeline.
// Failures must not roll back the workflow that produced the event.
type Notifier interface {
	RelationRequested(ctx context.Context, event *domain.RelationRequestedEvent) error
	RelationAccepted(ctx context.Context, event *domain.RelationAcceptedEvent) error
}
