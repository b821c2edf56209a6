package entity

import "time"

// Review is a user's rating of a spot or landmark. It is owned by the user who wrote it.
type Review struct {
	ID         int64
	UserID     string
	UserName   string // Author display name, filled on reads when available.
	EntityType EntityType
	EntityID   string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
