// Package constants contains values shared across layers.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Moderation event types published to the event bus.
const (
	EventReviewRemoved = "review.removed"
	EventCatalogSeeded = "catalog.seeded"
)
