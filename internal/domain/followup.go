package domain

import "time"

// FollowUp is a dated log entry owned by exactly one activity. It is
// destroyed together with its activity.
type FollowUp struct {
	ID          int64
	ActivityID  int64
	Date        time.Time
	Description string
	Responsible *string
	Status      Status
	CreatedAt   time.Time
}
