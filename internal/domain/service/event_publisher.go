package service

import (
	"context"
)

// ModerationEvent describes a change made through the admin surface.
type ModerationEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventID    string            `json:"event_id"`
	Type       string            `json:"type"`
	ActorID    string            `json:"actor_id"`
	EntityType string            `json:"entity_type,omitempty"`
	EntityID   string            `json:"entity_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt string            `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishModerationEvent publishes an admin action for downstream consumers
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
