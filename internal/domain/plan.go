package domain

import "time"

// Plan is the container that owns one WBS tree of activities. In the shop
// this is a service order: the unit of work sold to a client.
type Plan struct {
	ID         int64
	Number     string
	ClientName string
	Status     string
	IssuedAt   *time.Time
	DueAt      *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
