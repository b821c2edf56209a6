package entity

import "time"

// Image is a picture attached to exactly one spot or landmark.
type Image struct {
	ID         int64
	EntityType EntityType
	EntityID   string
	URL        string
	IsPrimary  bool
	OrderIndex int // Position among the entity's non-primary images, ascending.
	CreatedAt  time.Time
}
