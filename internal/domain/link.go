package domain

import "time"

// ExternalLink pairs an activity with an external purchase-order or
// service-order identifier. Purely associative: no ownership beyond being
// removed when the activity is removed.
type ExternalLink struct {
	ID               int64
	ActivityID       int64
	PurchaseOrderRef *string
	ServiceOrderRef  *string
	CreatedAt        time.Time
}
