// Package redisnotify publishes workflow events to Redis channels consumed by
// the notification worker, which owns email rendering and delivery.
package redisnotify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/progmatch/mentorship-backend/internal/domain"
	"github.com/progmatch/mentorship-backend/internal/repository"
)

const (
	channelRequested = "mentorship.relation.requested"
	channelAccepted  = "mentorship.relation.accepted"
)

type notifier struct {
	client *redis.Client
}

func NewNotifier(client *redis.Client) repository.Notifier {
	return &notifier{client: client}
}

func (n *notifier) RelationRequested(ctx context.Context, event *domain.RelationRequestedEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	return n.publish(ctx, channelRequested, event)
}

func (n *notifier) RelationAccepted(ctx context.Context, event *domain.RelationAcceptedEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	return n.publish(ctx, channelAccepted, event)
}

func (n *notifier) publish(ctx context.Context, channel string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling %s event: %w", channel, err)
	}
	if err := n.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publishing to %s: %w", channel, err)
	}
	return nil
}
