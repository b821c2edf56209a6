package entity

import "time"

// Business is a listing submitted by a business owner and reviewed by admins.
type Business struct {
	ID           string
	Name         string
	Category     string
	Address      string
	ContactEmail string
	Phone        string
	OwnerID      *string
	Status       string
	CreatedAt    time.Time
}
