// Package entity contains the core business objects of the project.
package entity

// EntityType identifies the kind of record an image or review is attached to.
type EntityType string

const (
	// EntityTypeSpot marks a spot (restaurant, cafe, shop, ...).
	EntityTypeSpot EntityType = "spot"
	// EntityTypeLandmark marks a landmark.
	EntityTypeLandmark EntityType = "landmark"
)

// String returns the string representation of the EntityType.
func (t EntityType) String() string {
	return string(t)
}

// IsValid checks if the EntityType is a valid value.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeSpot, EntityTypeLandmark:
		return true
	default:
		return false
	}
}
